package services

import (
	"context"
	"errors"
	"testing"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/types"
)

type fakeOpenAIClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeOpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func newTestEmotionService(t *testing.T, client OpenAIClient) EmotionAnalysisService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewEmotionAnalysisService(log, client)
}

func TestAnalyzeTextParsesLabeledResponse(t *testing.T) {
	fake := &fakeOpenAIClient{response: "PRIMARY_EMOTION: 부정\n" +
		"EMOTION_SCORE: 0.2\n" +
		"KEYWORDS: [스트레스, 피로, 휴식]\n" +
		"EMOTION_CATEGORY: 스트레스\n" +
		"RECOMMENDED_CATEGORIES: [상담, 여가]\n" +
		"ANALYSIS: 업무 부담으로 인한 스트레스 상태입니다.\n"}
	svc := newTestEmotionService(t, fake)

	profile := svc.AnalyzeText(context.Background(), "요즘 일 때문에 너무 힘들어")

	if profile.Polarity != types.PolarityNegative {
		t.Fatalf("polarity: want=%q got=%q", types.PolarityNegative, profile.Polarity)
	}
	if profile.Intensity != 0.2 {
		t.Fatalf("intensity: want=0.2 got=%v", profile.Intensity)
	}
	if len(profile.Keywords) != 3 || profile.Keywords[0] != "스트레스" {
		t.Fatalf("keywords: got=%v", profile.Keywords)
	}
	if profile.Category != "스트레스" {
		t.Fatalf("category: want=%q got=%q", "스트레스", profile.Category)
	}
	if len(profile.RecommendedCategories) != 2 || profile.RecommendedCategories[0] != "상담" {
		t.Fatalf("recommended categories: got=%v", profile.RecommendedCategories)
	}
	if profile.AnalysisText != "업무 부담으로 인한 스트레스 상태입니다." {
		t.Fatalf("analysis text: got=%q", profile.AnalysisText)
	}
	if fake.calls != 1 {
		t.Fatalf("generate calls: want=1 got=%d", fake.calls)
	}
}

func TestAnalyzeTextFallsBackOnClientError(t *testing.T) {
	fake := &fakeOpenAIClient{err: errors.New("upstream down")}
	svc := newTestEmotionService(t, fake)

	profile := svc.AnalyzeText(context.Background(), "아무 내용")

	if profile.Polarity != types.PolarityNeutral {
		t.Fatalf("polarity: want=%q got=%q", types.PolarityNeutral, profile.Polarity)
	}
	if profile.Intensity != 0.5 {
		t.Fatalf("intensity: want=0.5 got=%v", profile.Intensity)
	}
	if profile.Category != "평온" {
		t.Fatalf("category: want=%q got=%q", "평온", profile.Category)
	}
}

func TestAnalyzeTextFallsBackOnUnparseableResponse(t *testing.T) {
	fake := &fakeOpenAIClient{response: "죄송합니다, 분석할 수 없습니다."}
	svc := newTestEmotionService(t, fake)

	profile := svc.AnalyzeText(context.Background(), "아무 내용")

	if profile.Category != "평온" {
		t.Fatalf("category: want=%q got=%q", "평온", profile.Category)
	}
	if len(profile.Keywords) != 2 || profile.Keywords[0] != "일상" {
		t.Fatalf("keywords: got=%v", profile.Keywords)
	}
}

func TestAnalyzeTextMissingFieldsDegradeIndividually(t *testing.T) {
	// Only two of six fields present: the rest keep their defaults.
	fake := &fakeOpenAIClient{response: "PRIMARY_EMOTION: 긍정\nEMOTION_CATEGORY: 행복"}
	svc := newTestEmotionService(t, fake)

	profile := svc.AnalyzeText(context.Background(), "오늘 정말 좋았어")

	if profile.Polarity != types.PolarityPositive {
		t.Fatalf("polarity: want=%q got=%q", types.PolarityPositive, profile.Polarity)
	}
	if profile.Category != "행복" {
		t.Fatalf("category: want=%q got=%q", "행복", profile.Category)
	}
	if profile.Intensity != 0.5 {
		t.Fatalf("intensity default: want=0.5 got=%v", profile.Intensity)
	}
	if len(profile.RecommendedCategories) != 2 {
		t.Fatalf("recommended categories default: got=%v", profile.RecommendedCategories)
	}
}

func TestAnalyzeTextClampsIntensity(t *testing.T) {
	fake := &fakeOpenAIClient{response: "EMOTION_SCORE: 3.5"}
	svc := newTestEmotionService(t, fake)

	profile := svc.AnalyzeText(context.Background(), "x")
	if profile.Intensity != 1.0 {
		t.Fatalf("intensity clamp: want=1.0 got=%v", profile.Intensity)
	}
}

func TestAnalyzeButtonSelectionPositive(t *testing.T) {
	svc := newTestEmotionService(t, &fakeOpenAIClient{})

	profile := svc.AnalyzeButtonSelection(types.EmotionHappy, types.ActivityReading, nil)

	if profile.Polarity != types.PolarityPositive {
		t.Fatalf("polarity: want=%q got=%q", types.PolarityPositive, profile.Polarity)
	}
	if profile.Intensity != 0.8 {
		t.Fatalf("intensity: want=0.8 got=%v", profile.Intensity)
	}
	if profile.Category != "행복" {
		t.Fatalf("category: want=%q got=%q", "행복", profile.Category)
	}
	// emotion + activity + the four cluster keywords
	if len(profile.Keywords) != 6 {
		t.Fatalf("keyword count: want=6 got=%d (%v)", len(profile.Keywords), profile.Keywords)
	}
	if profile.Keywords[0] != "행복" || profile.Keywords[1] != "독서하기" {
		t.Fatalf("keyword order: got=%v", profile.Keywords)
	}
	// happiness is not a support emotion, so no counseling category
	for _, c := range profile.RecommendedCategories {
		if c == "상담" {
			t.Fatalf("unexpected counseling category: %v", profile.RecommendedCategories)
		}
	}
}

func TestAnalyzeButtonSelectionDistressAddsCounseling(t *testing.T) {
	svc := newTestEmotionService(t, &fakeOpenAIClient{})

	profile := svc.AnalyzeButtonSelection(types.EmotionDepressed, types.ActivityWalking, nil)

	if profile.Polarity != types.PolarityNegative {
		t.Fatalf("polarity: want=%q got=%q", types.PolarityNegative, profile.Polarity)
	}
	if profile.Intensity != 0.3 {
		t.Fatalf("intensity: want=0.3 got=%v", profile.Intensity)
	}
	if len(profile.RecommendedCategories) == 0 || profile.RecommendedCategories[0] != "상담" {
		t.Fatalf("counseling should lead categories: got=%v", profile.RecommendedCategories)
	}
}

func TestAnalyzeButtonSelectionTraitEnrichesProfile(t *testing.T) {
	svc := newTestEmotionService(t, &fakeOpenAIClient{})
	trait := types.PersonalityLogicalBlue

	profile := svc.AnalyzeButtonSelection(types.EmotionRelaxed, types.ActivityReading, &trait)

	foundKeyword := false
	for _, kw := range profile.Keywords {
		if kw == "논리" {
			foundKeyword = true
		}
	}
	if !foundKeyword {
		t.Fatalf("trait profile keywords missing: got=%v", profile.Keywords)
	}
	foundCategory := false
	for _, c := range profile.RecommendedCategories {
		if c == "과학" {
			foundCategory = true
		}
	}
	if !foundCategory {
		t.Fatalf("trait categories missing: got=%v", profile.RecommendedCategories)
	}
}

func TestAnalyzeButtonSelectionUnknownActivityUsesDefaults(t *testing.T) {
	svc := newTestEmotionService(t, &fakeOpenAIClient{})

	profile := svc.AnalyzeButtonSelection(types.EmotionCalmly, types.WishActivity("명상하기"), nil)

	if len(profile.Keywords) != 5 {
		t.Fatalf("keyword count: want=5 got=%d (%v)", len(profile.Keywords), profile.Keywords)
	}
	if profile.Keywords[2] != "활동" {
		t.Fatalf("default cluster: got=%v", profile.Keywords)
	}
	if len(profile.RecommendedCategories) != 3 || profile.RecommendedCategories[0] != "문화" {
		t.Fatalf("default categories: got=%v", profile.RecommendedCategories)
	}
}

func TestNeedsWelfareRecommendation(t *testing.T) {
	svc := newTestEmotionService(t, &fakeOpenAIClient{})

	cases := []struct {
		name    string
		profile *types.EmotionProfile
		want    bool
	}{
		{
			name:    "negative polarity always triggers",
			profile: &types.EmotionProfile{Polarity: types.PolarityNegative, Category: "행복"},
			want:    true,
		},
		{
			name:    "distress category triggers",
			profile: &types.EmotionProfile{Polarity: types.PolarityPositive, Category: "우울"},
			want:    true,
		},
		{
			name:    "trigger keyword substring triggers",
			profile: &types.EmotionProfile{Polarity: types.PolarityPositive, Category: "행복", Keywords: []string{"취업준비"}},
			want:    true,
		},
		{
			name:    "calm positive profile does not trigger",
			profile: &types.EmotionProfile{Polarity: types.PolarityPositive, Category: "행복", Keywords: []string{"날씨"}},
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.NeedsWelfareRecommendation(tc.profile); got != tc.want {
				t.Fatalf("want=%v got=%v", tc.want, got)
			}
		})
	}
}
