package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/team-modeni/modeni-backend/internal/logger"
	"github.com/team-modeni/modeni-backend/internal/types"
)

// EmotionAnalysisService turns raw user input into an EmotionProfile.
// Neither entry point ever fails: analysis errors collapse into the
// safe default profile instead of propagating.
type EmotionAnalysisService interface {
	AnalyzeText(ctx context.Context, text string) *types.EmotionProfile
	AnalyzeButtonSelection(emotion types.EmotionKeyword, activity types.WishActivity, trait *types.PersonalityType) *types.EmotionProfile
	NeedsWelfareRecommendation(profile *types.EmotionProfile) bool
}

// distressCategories is the fixed set of emotion categories that by
// themselves warrant running the welfare pipeline.
var distressCategories = map[string]bool{
	"우울":   true,
	"스트레스": true,
	"불안":   true,
	"분노":   true,
	"슬픔":   true,
}

// triggerKeywords is the vocabulary that routes a free-text entry into
// the recommendation pipeline via substring match.
var triggerKeywords = []string{
	"도움", "지원", "상담", "취업", "교육", "문화", "힘들어", "어려워",
	"독서", "책", "영어", "과학", "요리", "놀이", "가족", "예술", "역사",
	"배우고", "학습", "성장", "호기심", "창작", "소통", "만남", "체험",
	"즐거움", "재미", "흥미", "취미", "활동", "참여",
}

type emotionAnalysisService struct {
	log    *logger.Logger
	openai OpenAIClient
}

func NewEmotionAnalysisService(baseLog *logger.Logger, openai OpenAIClient) EmotionAnalysisService {
	serviceLog := baseLog.With("service", "EmotionAnalysisService")
	return &emotionAnalysisService{log: serviceLog, openai: openai}
}

// fallbackProfile is the full safe default used whenever text analysis
// cannot produce anything usable.
func fallbackProfile() *types.EmotionProfile {
	return &types.EmotionProfile{
		Polarity:              types.PolarityNeutral,
		Intensity:             0.5,
		Category:              "평온",
		Keywords:              []string{"일상", "생활"},
		RecommendedCategories: []string{"문화", "여가"},
		AnalysisText:          "감정 분석을 수행할 수 없습니다.",
	}
}

func clampIntensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (s *emotionAnalysisService) AnalyzeText(ctx context.Context, text string) *types.EmotionProfile {
	prompt := buildEmotionAnalysisPrompt(text)

	response, err := s.openai.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Error("Emotion analysis call failed, using fallback profile", "error", err)
		return fallbackProfile()
	}

	profile, ok := parseEmotionProfile(response)
	if !ok {
		s.log.Warn("Emotion analysis response unparseable, using fallback profile")
		return fallbackProfile()
	}
	return profile
}

func buildEmotionAnalysisPrompt(text string) string {
	return "다음 텍스트의 감정을 분석해주세요. 결과는 정확히 아래 형식으로 응답해주세요:\n\n" +
		"PRIMARY_EMOTION: [긍정/부정/중립]\n" +
		"EMOTION_SCORE: [0.0-1.0 사이의 숫자]\n" +
		"KEYWORDS: [키워드1, 키워드2, 키워드3]\n" +
		"EMOTION_CATEGORY: [행복/우울/스트레스/불안/평온/흥미/분노/슬픔/호기심/성장 중 하나]\n" +
		"RECOMMENDED_CATEGORIES: [문화, 교육, 상담, 취업, 의료, 운동, 여가, 독서, 영어, 과학, 요리, 놀이, 가족, 예술, 역사 중 관련된 것들]\n" +
		"ANALYSIS: [감정 분석 결과 설명]\n\n" +
		"분석할 텍스트: \"" + text + "\""
}

var analysisFieldPattern = regexp.MustCompile(`^([A-Z_]+):\s*(.*)$`)

// parseEmotionProfile reads the six labeled lines of the analysis
// response. Each missing field degrades to its own default; only a
// response with no recognizable field at all is reported unparseable.
func parseEmotionProfile(response string) (*types.EmotionProfile, bool) {
	fields := map[string]string{}
	current := ""
	for _, line := range strings.Split(response, "\n") {
		if m := analysisFieldPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			current = m[1]
			fields[current] = strings.TrimSpace(m[2])
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" {
			fields[current] = strings.TrimSpace(fields[current] + " " + strings.TrimSpace(line))
		}
	}
	if len(fields) == 0 {
		return nil, false
	}

	profile := fallbackProfile()

	switch {
	case strings.Contains(fields["PRIMARY_EMOTION"], "긍정"):
		profile.Polarity = types.PolarityPositive
	case strings.Contains(fields["PRIMARY_EMOTION"], "부정"):
		profile.Polarity = types.PolarityNegative
	}

	if raw := stripBrackets(fields["EMOTION_SCORE"]); raw != "" {
		if score, err := strconv.ParseFloat(raw, 64); err == nil {
			profile.Intensity = clampIntensity(score)
		}
	}

	if keywords := splitListField(fields["KEYWORDS"]); len(keywords) > 0 {
		profile.Keywords = keywords
	}

	if category := stripBrackets(fields["EMOTION_CATEGORY"]); category != "" {
		profile.Category = category
	}

	if categories := splitListField(fields["RECOMMENDED_CATEGORIES"]); len(categories) > 0 {
		profile.RecommendedCategories = categories
	}

	if analysis := fields["ANALYSIS"]; analysis != "" {
		profile.AnalysisText = analysis
	}

	return profile, true
}

func stripBrackets(v string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(v), "[]"))
}

func splitListField(v string) []string {
	var out []string
	for _, part := range strings.Split(stripBrackets(v), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// AnalyzeButtonSelection derives a profile from an explicit emotion and
// activity choice. Fully deterministic, no external call.
func (s *emotionAnalysisService) AnalyzeButtonSelection(emotion types.EmotionKeyword, activity types.WishActivity, trait *types.PersonalityType) *types.EmotionProfile {
	profile := &types.EmotionProfile{}

	switch {
	case emotion.IsPositive():
		profile.Polarity = types.PolarityPositive
		profile.Intensity = 0.8
		profile.Category = "행복"
	case emotion.IsNegative():
		profile.Polarity = types.PolarityNegative
		profile.Intensity = 0.3
		profile.Category = "스트레스"
	default:
		profile.Polarity = types.PolarityNeutral
		profile.Intensity = 0.5
		profile.Category = "평온"
	}

	keywords := []string{string(emotion)}
	if activity != "" {
		keywords = append(keywords, string(activity))
	}
	keywords = append(keywords, activity.KeywordCluster()...)
	if trait != nil {
		keywords = append(keywords, trait.ProfileKeywords()...)
	}
	profile.Keywords = keywords

	var categories []string
	if emotion.NeedsSupport() {
		categories = append(categories, "상담")
	}
	categories = append(categories, activity.RecommendedCategories()...)
	if trait != nil {
		categories = append(categories, trait.Categories()...)
	}
	profile.RecommendedCategories = categories

	profile.AnalysisText = buildButtonAnalysisText(emotion, activity)

	return profile
}

func buildButtonAnalysisText(emotion types.EmotionKeyword, activity types.WishActivity) string {
	var analysis strings.Builder

	if emotion.IsPositive() {
		analysis.WriteString("긍정적인 감정 상태로 보입니다. ")
	} else if emotion.IsNegative() {
		analysis.WriteString("부정적인 감정 상태로 보입니다. ")
	}

	fmt.Fprintf(&analysis, "희망 활동 '%s'을 통해 ", activity)

	switch activity {
	case types.ActivityReading:
		analysis.WriteString("지식과 문화를 향상시킬 수 있는 프로그램을 추천합니다.")
	case types.ActivityCooking:
		analysis.WriteString("창의적이고 실용적인 활동 프로그램을 추천합니다.")
	case types.ActivityDrawing, types.ActivityTakingPhotos:
		analysis.WriteString("예술적 표현과 창작 활동 프로그램을 추천합니다.")
	case types.ActivityExercising:
		analysis.WriteString("건강 증진과 활력 회복 프로그램을 추천합니다.")
	case types.ActivityWatchingMovie, types.ActivityGaming:
		analysis.WriteString("여가와 문화 활동 프로그램을 추천합니다.")
	default:
		analysis.WriteString("다양한 문화 활동 프로그램을 추천합니다.")
	}

	return analysis.String()
}

// NeedsWelfareRecommendation is the trigger policy for the free-text
// path. Button-based triggers bypass it: an explicit selection is
// sufficient intent.
func (s *emotionAnalysisService) NeedsWelfareRecommendation(profile *types.EmotionProfile) bool {
	if profile.Polarity == types.PolarityNegative {
		return true
	}
	if distressCategories[profile.Category] {
		return true
	}
	for _, keyword := range profile.Keywords {
		for _, trigger := range triggerKeywords {
			if strings.Contains(keyword, trigger) {
				return true
			}
		}
	}
	return false
}
