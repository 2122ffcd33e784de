package genetics

type Report struct {
	UserInfo                 ReportUserInfo     `json:"user_info"`
	GeneticAnalysis          GeneticAnalysis    `json:"genetic_analysis"`
	IngredientTestResults    []IngredientScore  `json:"ingredient_test_results"`
	Top3Recommendations      []RankedSupplement `json:"top3_recommendations"`
	LifestyleRecommendations []string           `json:"lifestyle_recommendations"`
	ScientificBasis          ScientificBasis    `json:"scientific_basis"`
}

type ReportUserInfo struct {
	Name       string `json:"name"`
	TestDate   string `json:"test_date"`
	ReportDate string `json:"report_date"`
}

type GeneticAnalysis struct {
	MetabolismType       string   `json:"metabolism_type"`
	FatBurningEfficiency float64  `json:"fat_burning_efficiency"`
	CarbSensitivity      string   `json:"carb_sensitivity"`
	GeneticRiskFactors   []string `json:"genetic_risk_factors"`
}

type IngredientScore struct {
	Name            string  `json:"name"`
	Score           float64 `json:"score"`
	PredictedEffect string  `json:"predicted_effect"`
}

type RankedSupplement struct {
	Rank                int      `json:"rank"`
	Supplement          string   `json:"supplement"`
	Ingredients         []string `json:"ingredients"`
	PredictedWeightLoss string   `json:"predicted_weight_loss"`
	Confidence          int      `json:"confidence"`
	Reason              string   `json:"reason"`
}

type ScientificBasis struct {
	TestMethod             string `json:"test_method"`
	ReferenceStudies       int    `json:"reference_studies"`
	AIAnalysisAccuracy     string `json:"ai_analysis_accuracy"`
	FDAApprovedIngredients string `json:"fda_approved_ingredients"`
}

// SampleReport is the demonstration report shown on the landing page.
// It is the same for every caller.
func SampleReport() Report {
	return Report{
		UserInfo: ReportUserInfo{
			Name:       "김○○",
			TestDate:   "2024-08-15",
			ReportDate: "2024-08-22",
		},
		GeneticAnalysis: GeneticAnalysis{
			MetabolismType:       "중간형",
			FatBurningEfficiency: 7.2,
			CarbSensitivity:      "높음",
			GeneticRiskFactors: []string{
				"복부 비만 위험도: 중간",
				"당분 대사 능력: 보통",
				"지방 대사 능력: 우수",
			},
		},
		IngredientTestResults: []IngredientScore{
			{Name: "가르시니아 캄보지아", Score: 8.5, PredictedEffect: "높음"},
			{Name: "녹차 추출물", Score: 8.2, PredictedEffect: "높음"},
			{Name: "L-카르니틴", Score: 7.8, PredictedEffect: "중간-높음"},
			{Name: "공액리놀레산(CLA)", Score: 7.5, PredictedEffect: "중간-높음"},
			{Name: "키토산", Score: 6.9, PredictedEffect: "중간"},
			{Name: "화이트빈 추출물", Score: 6.7, PredictedEffect: "중간"},
			{Name: "크롬", Score: 6.4, PredictedEffect: "중간"},
			{Name: "히비스커스", Score: 6.1, PredictedEffect: "중간"},
			{Name: "콜레우스 포스콜리", Score: 5.8, PredictedEffect: "중간-낮음"},
			{Name: "라즈베리 케톤", Score: 5.5, PredictedEffect: "중간-낮음"},
		},
		Top3Recommendations: []RankedSupplement{
			{
				Rank:                1,
				Supplement:          "가르시니아 + 녹차 복합체",
				Ingredients:         []string{"가르시니아 캄보지아", "녹차 추출물", "비타민 B군"},
				PredictedWeightLoss: "2.3-3.1kg (3개월 기준)",
				Confidence:          89,
				Reason:              "귀하의 지방 대사 유전자 특성과 가장 높은 호환성을 보입니다.",
			},
			{
				Rank:                2,
				Supplement:          "L-카르니틴 프리미엄",
				Ingredients:         []string{"L-카르니틴", "공액리놀레산", "마그네슘"},
				PredictedWeightLoss: "2.0-2.7kg (3개월 기준)",
				Confidence:          84,
				Reason:              "운동 시 지방 연소 효과를 극대화할 수 있는 조합입니다.",
			},
			{
				Rank:                3,
				Supplement:          "멀티 다이어트 컴플렉스",
				Ingredients:         []string{"키토산", "화이트빈 추출물", "크롬"},
				PredictedWeightLoss: "1.8-2.4kg (3개월 기준)",
				Confidence:          78,
				Reason:              "탄수화물과 지방 흡수를 동시에 관리하는 균형 잡힌 조합입니다.",
			},
		},
		LifestyleRecommendations: []string{
			"하루 30분 이상의 유산소 운동 권장",
			"탄수화물 섭취량을 현재의 70% 수준으로 조절",
			"식사 30분 전 추천 보조제 복용",
			"충분한 수분 섭취 (하루 2L 이상)",
		},
		ScientificBasis: ScientificBasis{
			TestMethod:             "개인 유전자 정보 기반 생체모델 시험",
			ReferenceStudies:       127,
			AIAnalysisAccuracy:     "94.7%",
			FDAApprovedIngredients: "100%",
		},
	}
}
