package memory

import (
	"context"

	"genefit/internal/domain/analytics"
)

func NewAnalyticsRepos() analytics.Repos {
	return analytics.Repos{
		Weights:   &weightRepo{t: newTable(func(w analytics.WeightRecord) string { return w.ID })},
		Feedbacks: &feedbackRepo{t: newTable(func(f analytics.Feedback) string { return f.ID })},
	}
}

type weightRepo struct {
	t *table[analytics.WeightRecord]
}

func (r *weightRepo) Create(ctx context.Context, w analytics.WeightRecord) error {
	return r.t.insert(ctx, w)
}

func (r *weightRepo) ListByUser(_ context.Context, userID string, f analytics.WeightFilter) ([]analytics.WeightRecord, error) {
	out := r.t.selectRows(
		func(w analytics.WeightRecord) bool {
			if w.UserID != userID {
				return false
			}
			return f.Since == nil || !w.MeasurementDate.Before(*f.Since)
		},
		func(a, b analytics.WeightRecord) bool { return newestFirst(a.MeasurementDate, b.MeasurementDate) },
	)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type feedbackRepo struct {
	t *table[analytics.Feedback]
}

func (r *feedbackRepo) Create(ctx context.Context, f analytics.Feedback) error {
	return r.t.insert(ctx, f)
}

func (r *feedbackRepo) SummaryByUser(_ context.Context, userID string) (analytics.FeedbackSummary, error) {
	rows := r.t.selectRows(func(f analytics.Feedback) bool { return f.UserID == userID }, nil)
	if len(rows) == 0 {
		return analytics.FeedbackSummary{}, nil
	}

	total := 0
	for _, f := range rows {
		total += f.EffectivenessScore
	}
	return analytics.FeedbackSummary{
		Average: float64(total) / float64(len(rows)),
		Count:   len(rows),
	}, nil
}
