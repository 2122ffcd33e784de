package subscriptions

type PlanPrice struct {
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Includes []string `json:"includes"`
}

type PricingInfo struct {
	MonthlySubscription PlanPrice `json:"monthly_subscription"`
	FirstMonthBonus     []string  `json:"first_month_bonus"`
}

func Pricing() PricingInfo {
	return PricingInfo{
		MonthlySubscription: PlanPrice{
			Price:    MonthlyFee,
			Currency: "KRW",
			Includes: []string{
				"유전자 검사 (첫 달)",
				"맞춤 보조제 조합 추천",
				"맞춤 보조제 매월 배송",
				"개인화된 리포트",
				"지속적인 모니터링",
			},
		},
		FirstMonthBonus: []string{
			"유전자 검사 키트",
			"상세 분석 리포트",
			"개인 맞춤 상담",
		},
	}
}
