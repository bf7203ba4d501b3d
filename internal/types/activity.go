package types

// WishActivity is one of the fixed desired-activity buttons. Unknown
// values still produce a usable profile through the default cluster.
type WishActivity string

const (
	ActivityWalking       WishActivity = "산책하기"
	ActivityCooking       WishActivity = "요리하기"
	ActivityCleaning      WishActivity = "청소하기"
	ActivityReading       WishActivity = "독서하기"
	ActivityDrawing       WishActivity = "그림그리기"
	ActivitySinging       WishActivity = "노래부르기"
	ActivityCafe          WishActivity = "카페가기"
	ActivityWritingDiary  WishActivity = "일기쓰기"
	ActivityExercising    WishActivity = "운동하기"
	ActivityTakingPhotos  WishActivity = "사진찍기"
	ActivityFlowerViewing WishActivity = "꽃구경"
	ActivitySleeping      WishActivity = "잠자기"
	ActivityWatchingMovie WishActivity = "영화보기"
	ActivityRestaurant    WishActivity = "맛집가기"
	ActivityShopping      WishActivity = "장보기"
	ActivityMusic         WishActivity = "음악듣기"
	ActivityGaming        WishActivity = "게임하기"
)

var defaultActivityCluster = []string{"활동", "여가", "문화"}

// activityKeywordClusters expands a chosen activity into the search
// keywords used for tag matching.
var activityKeywordClusters = map[WishActivity][]string{
	ActivityReading:       {"독서", "교육", "학습", "문화"},
	ActivityCooking:       {"요리", "창작", "가족", "활동"},
	ActivityDrawing:       {"예술", "창작", "문화", "표현"},
	ActivitySinging:       {"음악", "예술", "문화", "표현"},
	ActivityExercising:    {"운동", "건강", "활력", "활동"},
	ActivityWatchingMovie: {"문화", "여가", "감상", "체험"},
	ActivityCafe:          {"여가", "문화", "소통", "활동"},
	ActivityRestaurant:    {"여가", "문화", "소통", "활동"},
	ActivityWalking:       {"자연", "여가", "힐링", "활동"},
	ActivityFlowerViewing: {"자연", "여가", "힐링", "활동"},
	ActivityTakingPhotos:  {"예술", "창작", "문화", "기록"},
	ActivityGaming:        {"놀이", "즐거움", "활동", "여가"},
	ActivityMusic:         {"음악", "문화", "여가", "감상"},
}

var defaultActivityCategories = []string{"문화", "여가", "활동"}

// activityCategories maps a chosen activity onto the program categories
// used to bias candidate search.
var activityCategories = map[WishActivity][]string{
	ActivityReading:       {"문화", "교육", "독서"},
	ActivityCooking:       {"문화", "창작", "가족"},
	ActivityDrawing:       {"문화", "예술", "창작"},
	ActivityTakingPhotos:  {"문화", "예술", "창작"},
	ActivitySinging:       {"문화", "예술", "음악"},
	ActivityMusic:         {"문화", "예술", "음악"},
	ActivityExercising:    {"운동", "건강", "활동"},
	ActivityWatchingMovie: {"문화", "여가", "활동"},
	ActivityGaming:        {"문화", "여가", "활동"},
	ActivityWalking:       {"여가", "자연", "힐링"},
	ActivityFlowerViewing: {"여가", "자연", "힐링"},
}

func (a WishActivity) KeywordCluster() []string {
	if cluster, ok := activityKeywordClusters[a]; ok {
		return cluster
	}
	return defaultActivityCluster
}

func (a WishActivity) RecommendedCategories() []string {
	if cats, ok := activityCategories[a]; ok {
		return cats
	}
	return defaultActivityCategories
}
