package types

// EmotionKeyword is one of the fixed emotion buttons offered by the
// client. Values are the Korean display names the frontend submits.
type EmotionKeyword string

const (
	// positive
	EmotionHappy     EmotionKeyword = "행복"
	EmotionProud     EmotionKeyword = "뿌듯함"
	EmotionJoyful    EmotionKeyword = "즐거움"
	EmotionExcited   EmotionKeyword = "설렘"
	EmotionRelaxed   EmotionKeyword = "여유로움"
	EmotionEnergetic EmotionKeyword = "활기참"
	EmotionRelieved  EmotionKeyword = "안도감"
	EmotionCalmly    EmotionKeyword = "차분함"
	EmotionPleased   EmotionKeyword = "기특함"

	// negative
	EmotionDisappointed EmotionKeyword = "서운함"
	EmotionAnxious      EmotionKeyword = "불안함"
	EmotionAnnoyed      EmotionKeyword = "짜증남"
	EmotionImpatient    EmotionKeyword = "초조함"
	EmotionLetDown      EmotionKeyword = "실망"
	EmotionRegretful    EmotionKeyword = "후회"
	EmotionDepressed    EmotionKeyword = "우울함"
	EmotionSad          EmotionKeyword = "슬픔"
	EmotionDrained      EmotionKeyword = "지침"
	EmotionFrustrated   EmotionKeyword = "답답함"
)

var positiveEmotions = map[EmotionKeyword]bool{
	EmotionHappy: true, EmotionProud: true, EmotionJoyful: true,
	EmotionExcited: true, EmotionRelaxed: true, EmotionEnergetic: true,
	EmotionRelieved: true, EmotionCalmly: true, EmotionPleased: true,
}

var negativeEmotions = map[EmotionKeyword]bool{
	EmotionDisappointed: true, EmotionAnxious: true, EmotionAnnoyed: true,
	EmotionImpatient: true, EmotionLetDown: true, EmotionRegretful: true,
	EmotionDepressed: true, EmotionSad: true, EmotionDrained: true,
	EmotionFrustrated: true,
}

// needsSupportEmotions marks the buttons that always pull the
// counseling category into the recommended set.
var needsSupportEmotions = map[EmotionKeyword]bool{
	EmotionDepressed: true,
	EmotionSad:       true,
	EmotionAnxious:   true,
	EmotionKeyword("스트레스"): true,
}

func (e EmotionKeyword) IsPositive() bool { return positiveEmotions[e] }
func (e EmotionKeyword) IsNegative() bool { return negativeEmotions[e] }

func (e EmotionKeyword) NeedsSupport() bool { return needsSupportEmotions[e] }
