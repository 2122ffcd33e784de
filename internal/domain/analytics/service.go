package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	DefaultHistoryDays = 90
	progressWindow     = 10
)

type Service struct {
	repos Repos
	now   func() time.Time
}

func NewService(repos Repos) *Service {
	return &Service{
		repos: repos,
		now:   time.Now,
	}
}

type RecordWeightInput struct {
	Weight float64
	Memo   string
	// MeasuredAt defaults to now.
	MeasuredAt *time.Time
}

// RecordWeight stores the measurement as given; the weight is not range-checked.
func (s *Service) RecordWeight(ctx context.Context, userID string, in RecordWeightInput) (WeightRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return WeightRecord{}, ErrInvalidInput
	}

	now := s.now()
	measured := now
	if in.MeasuredAt != nil {
		measured = *in.MeasuredAt
	}

	rec := WeightRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		Weight:          in.Weight,
		MeasurementDate: measured,
		Memo:            strings.TrimSpace(in.Memo),
		CreatedAt:       now,
	}
	if err := s.repos.Weights.Create(ctx, rec); err != nil {
		return WeightRecord{}, fmt.Errorf("create weight record: %w", err)
	}
	return rec, nil
}

// WeightHistory returns the records measured in the last days days, newest first.
// days <= 0 falls back to DefaultHistoryDays.
func (s *Service) WeightHistory(ctx context.Context, userID string, days int) ([]WeightRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if days <= 0 {
		days = DefaultHistoryDays
	}

	since := s.now().AddDate(0, 0, -days)
	items, err := s.repos.Weights.ListByUser(ctx, userID, WeightFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("list weight records: %w", err)
	}
	return items, nil
}

type FeedbackInput struct {
	SupplementID       string
	EffectivenessScore int
	HasSideEffects     bool
	DetailedReview     string
}

func (s *Service) SubmitFeedback(ctx context.Context, userID string, in FeedbackInput) (Feedback, error) {
	userID = strings.TrimSpace(userID)
	supplementID := strings.TrimSpace(in.SupplementID)
	if userID == "" || supplementID == "" {
		return Feedback{}, ErrInvalidInput
	}

	f := Feedback{
		ID:                 uuid.NewString(),
		UserID:             userID,
		SupplementID:       supplementID,
		EffectivenessScore: in.EffectivenessScore,
		HasSideEffects:     in.HasSideEffects,
		DetailedReview:     strings.TrimSpace(in.DetailedReview),
		CreatedAt:          s.now(),
	}
	if err := s.repos.Feedbacks.Create(ctx, f); err != nil {
		return Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	return f, nil
}

type ProgressReport struct {
	// Nil when the user has never recorded a weight.
	CurrentWeight *float64
	WeightChange  float64
	History       []WeightRecord // newest first
	Feedback      FeedbackSummary
	TotalDays     int
	Trend         Trend
}

// ProgressReport summarises the 10 most recent weight records and every feedback the user sent.
// WeightChange is newest minus oldest inside that window.
func (s *Service) ProgressReport(ctx context.Context, userID string) (ProgressReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ProgressReport{}, ErrInvalidInput
	}

	history, err := s.repos.Weights.ListByUser(ctx, userID, WeightFilter{Limit: progressWindow})
	if err != nil {
		return ProgressReport{}, fmt.Errorf("list weight records: %w", err)
	}
	summary, err := s.repos.Feedbacks.SummaryByUser(ctx, userID)
	if err != nil {
		return ProgressReport{}, fmt.Errorf("feedback summary: %w", err)
	}

	rep := ProgressReport{
		History:   history,
		Feedback:  summary,
		TotalDays: len(history),
		Trend:     TrendMaintain,
	}
	if len(history) > 0 {
		current := history[0].Weight
		rep.CurrentWeight = &current
	}
	if len(history) >= 2 {
		rep.WeightChange = history[0].Weight - history[len(history)-1].Weight
	}

	switch {
	case rep.WeightChange < 0:
		rep.Trend = TrendDecrease
	case rep.WeightChange > 0:
		rep.Trend = TrendIncrease
	}
	return rep, nil
}
