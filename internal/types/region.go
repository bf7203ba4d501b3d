package types

// Region is the fixed set of supported target cities. Stored as its
// enum name; DisplayName carries the Korean city name shown to users.
type Region string

const (
	RegionSeoul     Region = "SEOUL"
	RegionBusan     Region = "BUSAN"
	RegionDaegu     Region = "DAEGU"
	RegionIncheon   Region = "INCHEON"
	RegionGwangju   Region = "GWANGJU"
	RegionDaejeon   Region = "DAEJEON"
	RegionUlsan     Region = "ULSAN"
	RegionSejong    Region = "SEJONG"
	RegionSuwon     Region = "SUWON"
	RegionSeongnam  Region = "SEONGNAM"
	RegionYongin    Region = "YONGIN"
	RegionAnyang    Region = "ANYANG"
	RegionAnsan     Region = "ANSAN"
	RegionGoyang    Region = "GOYANG"
	RegionHwaseong  Region = "HWASEONG"
	RegionBucheon   Region = "BUCHEON"
	RegionGimpo     Region = "GIMPO"
	RegionSiheung   Region = "SIHEUNG"
	RegionChuncheon Region = "CHUNCHEON"
	RegionWonju     Region = "WONJU"
	RegionGangneung Region = "GANGNEUNG"
	RegionCheongju  Region = "CHEONGJU"
	RegionCheonan   Region = "CHEONAN"
	RegionAsan      Region = "ASAN"
	RegionJeonju    Region = "JEONJU"
	RegionIksan     Region = "IKSAN"
	RegionGunsan    Region = "GUNSAN"
	RegionYeosu     Region = "YEOSU"
	RegionSuncheon  Region = "SUNCHEON"
	RegionMokpo     Region = "MOKPO"
	RegionPohang    Region = "POHANG"
	RegionGyeongju  Region = "GYEONGJU"
	RegionGimhae    Region = "GIMHAE"
	RegionChangwon  Region = "CHANGWON"
	RegionJinju     Region = "JINJU"
	RegionJeju      Region = "JEJU"
	RegionSeogwipo  Region = "SEOGWIPO"
)

var regionDisplayNames = map[Region]string{
	RegionSeoul:     "서울시",
	RegionBusan:     "부산시",
	RegionDaegu:     "대구시",
	RegionIncheon:   "인천시",
	RegionGwangju:   "광주시",
	RegionDaejeon:   "대전시",
	RegionUlsan:     "울산시",
	RegionSejong:    "세종시",
	RegionSuwon:     "수원시",
	RegionSeongnam:  "성남시",
	RegionYongin:    "용인시",
	RegionAnyang:    "안양시",
	RegionAnsan:     "안산시",
	RegionGoyang:    "고양시",
	RegionHwaseong:  "화성시",
	RegionBucheon:   "부천시",
	RegionGimpo:     "김포시",
	RegionSiheung:   "시흥시",
	RegionChuncheon: "춘천시",
	RegionWonju:     "원주시",
	RegionGangneung: "강릉시",
	RegionCheongju:  "청주시",
	RegionCheonan:   "천안시",
	RegionAsan:      "아산시",
	RegionJeonju:    "전주시",
	RegionIksan:     "익산시",
	RegionGunsan:    "군산시",
	RegionYeosu:     "여수시",
	RegionSuncheon:  "순천시",
	RegionMokpo:     "목포시",
	RegionPohang:    "포항시",
	RegionGyeongju:  "경주시",
	RegionGimhae:    "김해시",
	RegionChangwon:  "창원시",
	RegionJinju:     "진주시",
	RegionJeju:      "제주시",
	RegionSeogwipo:  "서귀포시",
}

func (r Region) DisplayName() string {
	if name, ok := regionDisplayNames[r]; ok {
		return name
	}
	return string(r)
}

func (r Region) Valid() bool {
	_, ok := regionDisplayNames[r]
	return ok
}
