package types

import "testing"

func TestEmotionKeywordPolarity(t *testing.T) {
	if !EmotionHappy.IsPositive() || EmotionHappy.IsNegative() {
		t.Fatalf("행복 must be positive")
	}
	if !EmotionDepressed.IsNegative() || EmotionDepressed.IsPositive() {
		t.Fatalf("우울함 must be negative")
	}
	unknown := EmotionKeyword("알수없음")
	if unknown.IsPositive() || unknown.IsNegative() {
		t.Fatalf("unknown emotion must be neither polarity")
	}
}

func TestEmotionKeywordNeedsSupport(t *testing.T) {
	for _, e := range []EmotionKeyword{EmotionDepressed, EmotionSad, EmotionAnxious} {
		if !e.NeedsSupport() {
			t.Fatalf("%s must need support", e)
		}
	}
	if EmotionHappy.NeedsSupport() {
		t.Fatalf("행복 must not need support")
	}
}

func TestWishActivityKeywordCluster(t *testing.T) {
	got := ActivityReading.KeywordCluster()
	want := []string{"독서", "교육", "학습", "문화"}
	if len(got) != len(want) {
		t.Fatalf("cluster length: want=%d got=%d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cluster[%d]: want=%q got=%q", i, want[i], got[i])
		}
	}
}

func TestWishActivityUnknownFallsBackToDefaults(t *testing.T) {
	unknown := WishActivity("명상하기")
	cluster := unknown.KeywordCluster()
	if len(cluster) != 3 || cluster[0] != "활동" {
		t.Fatalf("default cluster: got=%v", cluster)
	}
	categories := unknown.RecommendedCategories()
	if len(categories) != 3 || categories[0] != "문화" {
		t.Fatalf("default categories: got=%v", categories)
	}
}

func TestRegionDisplayName(t *testing.T) {
	if got := RegionSeoul.DisplayName(); got != "서울시" {
		t.Fatalf("display name: want=%q got=%q", "서울시", got)
	}
	if !RegionSeoul.Valid() {
		t.Fatalf("SEOUL must be a valid region")
	}
	if Region("ATLANTIS").Valid() {
		t.Fatalf("unknown region must be invalid")
	}
}

func TestPersonalityTableComplete(t *testing.T) {
	all := []PersonalityType{
		PersonalityLogicalBlue, PersonalityEmotionalRed, PersonalityControlGray,
		PersonalityIndependentNavy, PersonalityAffectionateYellow, PersonalityIntrospectiveGreen,
	}
	for _, p := range all {
		if !p.Valid() {
			t.Fatalf("%s must be valid", p)
		}
		if p.FullName() == "" || p.Nickname() == "" {
			t.Fatalf("%s missing display names", p)
		}
		if len(p.ContentKeywords()) == 0 || len(p.ProfileKeywords()) == 0 || len(p.Categories()) == 0 {
			t.Fatalf("%s missing keyword sets", p)
		}
	}
	if PersonalityType("PURPLE").Valid() {
		t.Fatalf("unknown personality must be invalid")
	}
}
