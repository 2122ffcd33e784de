package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"genefit/internal/domain/analytics"
)

func NewAnalyticsRepos(db *sql.DB) analytics.Repos {
	return analytics.Repos{
		Weights:   &WeightRecordsRepo{db: db},
		Feedbacks: &FeedbacksRepo{db: db},
	}
}

type WeightRecordsRepo struct {
	db *sql.DB
}

func (r *WeightRecordsRepo) Create(ctx context.Context, w analytics.WeightRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO weight_records (
			id, user_id, weight, measurement_date, memo, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		w.ID,
		w.UserID,
		w.Weight,
		w.MeasurementDate,
		toNullString(w.Memo),
		w.CreatedAt,
	)
	return err
}

func (r *WeightRecordsRepo) ListByUser(ctx context.Context, userID string, f analytics.WeightFilter) ([]analytics.WeightRecord, error) {
	query := `
		SELECT id, user_id, weight, measurement_date, memo, created_at
		FROM weight_records
		WHERE user_id = $1`
	args := []any{userID}

	if f.Since != nil {
		args = append(args, *f.Since)
		query += fmt.Sprintf(" AND measurement_date >= $%d", len(args))
	}
	query += " ORDER BY measurement_date DESC, created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analytics.WeightRecord, 0)
	for rows.Next() {
		var w analytics.WeightRecord
		var memo sql.NullString
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Weight,
			&w.MeasurementDate,
			&memo,
			&w.CreatedAt,
		); err != nil {
			return nil, err
		}
		w.Memo = memo.String
		out = append(out, w)
	}
	return out, rows.Err()
}

type FeedbacksRepo struct {
	db *sql.DB
}

func (r *FeedbacksRepo) Create(ctx context.Context, f analytics.Feedback) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO feedbacks (
			id, user_id, supplement_id, effectiveness_score,
			has_side_effects, detailed_review, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		f.ID,
		f.UserID,
		f.SupplementID,
		f.EffectivenessScore,
		f.HasSideEffects,
		toNullString(f.DetailedReview),
		f.CreatedAt,
	)
	return err
}

func (r *FeedbacksRepo) SummaryByUser(ctx context.Context, userID string) (analytics.FeedbackSummary, error) {
	var avg sql.NullFloat64
	var count int
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT AVG(effectiveness_score)::float8, COUNT(*)
		FROM feedbacks
		WHERE user_id = $1
	`, userID).Scan(&avg, &count)
	if err != nil {
		return analytics.FeedbackSummary{}, err
	}
	return analytics.FeedbackSummary{Average: avg.Float64, Count: count}, nil
}
