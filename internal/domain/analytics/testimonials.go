package analytics

type Testimonial struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Review     string `json:"review"`
	Rating     int    `json:"rating"`
	WeightLoss string `json:"weight_loss"`
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:       "김○○",
			Age:        "30대",
			Review:     "설문만으로 추천하는 서비스와 달리, 실험 데이터 기반 추천이라 훨씬 믿음이 갔습니다.",
			Rating:     5,
			WeightLoss: "3.2kg (3개월)",
		},
		{
			Name:       "이○○",
			Age:        "40대",
			Review:     "20종 원료를 다 먹어볼 필요 없이, 나에게 맞는 TOP3와 체중감량 예측치를 받아보니 안심이 됐어요.",
			Rating:     5,
			WeightLoss: "2.8kg (2개월)",
		},
		{
			Name:       "박○○",
			Age:        "20대",
			Review:     "내 유전자와 맞춤 분석 결과라서, 꾸준히 먹을 자신이 생겼습니다.",
			Rating:     5,
			WeightLoss: "4.1kg (4개월)",
		},
	}
}
