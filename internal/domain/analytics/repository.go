package analytics

import (
	"context"
	"time"
)

// WeightFilter narrows ListByUser. Zero values mean no bound.
type WeightFilter struct {
	Since *time.Time
	Limit int
}

type WeightRepository interface {
	Create(ctx context.Context, r WeightRecord) error
	// ListByUser orders by measurement date, newest first.
	ListByUser(ctx context.Context, userID string, f WeightFilter) ([]WeightRecord, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, f Feedback) error
	// SummaryByUser returns a zero summary when the user has no feedback.
	SummaryByUser(ctx context.Context, userID string) (FeedbackSummary, error)
}

type Repos struct {
	Weights   WeightRepository
	Feedbacks FeedbackRepository
}
