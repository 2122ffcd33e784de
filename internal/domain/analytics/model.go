package analytics

import "time"

type WeightRecord struct {
	ID              string
	UserID          string
	Weight          float64 // kg
	MeasurementDate time.Time
	Memo            string
	CreatedAt       time.Time
}

// Feedback scores are documented as 1-10 but stored exactly as submitted.
type Feedback struct {
	ID                 string
	UserID             string
	SupplementID       string
	EffectivenessScore int
	HasSideEffects     bool
	DetailedReview     string
	CreatedAt          time.Time
}

type FeedbackSummary struct {
	Average float64
	Count   int
}

type Trend string

const (
	TrendDecrease Trend = "decrease"
	TrendIncrease Trend = "increase"
	TrendMaintain Trend = "maintain"
)
