package types

// Polarity is the primary emotional direction of a profile.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// EmotionProfile is the structured summary of a user's momentary
// emotional/intent state. It lives for one recommendation request and
// is never persisted.
//
// Invariants: Keywords is never empty (the profiler always falls back
// to generic terms) and Intensity stays clamped to [0,1].
type EmotionProfile struct {
	Polarity              Polarity
	Intensity             float64
	Category              string
	Keywords              []string
	RecommendedCategories []string
	AnalysisText          string
}

func (p *EmotionProfile) HasKeyword(keyword string) bool {
	for _, k := range p.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

func (p *EmotionProfile) RecommendsCategory(category string) bool {
	for _, c := range p.RecommendedCategories {
		if c == category {
			return true
		}
	}
	return false
}
