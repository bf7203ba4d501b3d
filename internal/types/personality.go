package types

// PersonalityType is the long-lived user personality archetype. It is
// optional everywhere: a nil *PersonalityType never fails a pipeline
// stage, it only shifts the scoring weight regime.
type PersonalityType string

const (
	PersonalityLogicalBlue        PersonalityType = "LOGICAL_BLUE"
	PersonalityEmotionalRed       PersonalityType = "EMOTIONAL_RED"
	PersonalityControlGray        PersonalityType = "CONTROL_GRAY"
	PersonalityIndependentNavy    PersonalityType = "INDEPENDENT_NAVY"
	PersonalityAffectionateYellow PersonalityType = "AFFECTIONATE_YELLOW"
	PersonalityIntrospectiveGreen PersonalityType = "INTROSPECTIVE_GREEN"
)

type personalityInfo struct {
	fullName    string
	nickname    string
	description string

	// contentKeywords drive the flat trait-affinity scoring bonus when
	// any of them appears in a program's title/description/tags.
	contentKeywords []string

	// profileKeywords and categories are appended to button-based
	// emotion profiles when the trait is known.
	profileKeywords []string
	categories      []string
}

var personalityTable = map[PersonalityType]personalityInfo{
	PersonalityLogicalBlue: {
		fullName:        "이성적 분석형",
		nickname:        "파랑이",
		description:     "감정보다는 논리 중심, 갈등을 해결하려 함",
		contentKeywords: []string{"교육", "과학", "분석", "학습", "연구", "탐구", "역사", "지식"},
		profileKeywords: []string{"분석", "논리", "교육", "과학", "문제해결", "학습"},
		categories:      []string{"교육", "과학", "역사"},
	},
	PersonalityEmotionalRed: {
		fullName:        "감정 공감형",
		nickname:        "빨강이",
		description:     "정 교류 중시, 상처에도 예민",
		contentKeywords: []string{"가족", "소통", "만남", "공감", "상담", "함께", "이야기", "나눔"},
		profileKeywords: []string{"공감", "소통", "가족", "상담", "감정표현", "만남"},
		categories:      []string{"상담", "가족", "소통"},
	},
	PersonalityControlGray: {
		fullName:        "통제 보호형",
		nickname:        "회색이",
		description:     "통제, 지도에 익숙하고 보호욕 강함",
		contentKeywords: []string{"리더", "지도", "교육", "관리", "멘토", "가이드", "봉사", "도움"},
		profileKeywords: []string{"지도", "교육", "리더십", "보호", "관리", "책임"},
		categories:      []string{"교육", "리더십", "관리"},
	},
	PersonalityIndependentNavy: {
		fullName:        "자율 독립형",
		nickname:        "남색이",
		description:     "자기 선택을 중요시하고 간섭을 싫어함",
		contentKeywords: []string{"개인", "자율", "독립", "선택", "취미", "자유", "혼자", "창작"},
		profileKeywords: []string{"자율", "독립", "개별", "자유", "선택", "취미"},
		categories:      []string{"취미", "개인활동", "자율학습"},
	},
	PersonalityAffectionateYellow: {
		fullName:        "애정 표현형",
		nickname:        "노랑이",
		description:     "자주 표현하고 스킨십/말로 사랑을 전달",
		contentKeywords: []string{"표현", "활동", "즐거움", "놀이", "체험", "소통", "참여", "함께"},
		profileKeywords: []string{"표현", "애정", "소통", "가족", "활동", "즐거움"},
		categories:      []string{"가족", "소통", "표현"},
	},
	PersonalityIntrospectiveGreen: {
		fullName:        "내면형",
		nickname:        "초록이",
		description:     "표현은 적지만 속은 깊음, 혼자 해결하려 함",
		contentKeywords: []string{"독서", "사색", "조용", "개인", "깊이", "성찰", "책", "글"},
		profileKeywords: []string{"내면", "독서", "사색", "개인", "깊이", "조용"},
		categories:      []string{"독서", "사색", "개인성장"},
	},
}

func (p PersonalityType) FullName() string    { return personalityTable[p].fullName }
func (p PersonalityType) Nickname() string    { return personalityTable[p].nickname }
func (p PersonalityType) Description() string { return personalityTable[p].description }

func (p PersonalityType) ContentKeywords() []string {
	return personalityTable[p].contentKeywords
}

func (p PersonalityType) ProfileKeywords() []string {
	return personalityTable[p].profileKeywords
}

func (p PersonalityType) Categories() []string {
	return personalityTable[p].categories
}

func (p PersonalityType) Valid() bool {
	_, ok := personalityTable[p]
	return ok
}
