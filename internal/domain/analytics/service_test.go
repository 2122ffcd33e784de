package analytics

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeights struct{ items []WeightRecord }

func (r *fakeWeights) Create(_ context.Context, rec WeightRecord) error {
	r.items = append(r.items, rec)
	return nil
}

func (r *fakeWeights) ListByUser(_ context.Context, userID string, f WeightFilter) ([]WeightRecord, error) {
	out := make([]WeightRecord, 0)
	for _, it := range r.items {
		if it.UserID != userID {
			continue
		}
		if f.Since != nil && it.MeasurementDate.Before(*f.Since) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeasurementDate.After(out[j].MeasurementDate) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type fakeFeedbacks struct{ items []Feedback }

func (r *fakeFeedbacks) Create(_ context.Context, f Feedback) error {
	r.items = append(r.items, f)
	return nil
}

func (r *fakeFeedbacks) SummaryByUser(_ context.Context, userID string) (FeedbackSummary, error) {
	var sum FeedbackSummary
	total := 0
	for _, it := range r.items {
		if it.UserID == userID {
			total += it.EffectivenessScore
			sum.Count++
		}
	}
	if sum.Count > 0 {
		sum.Average = float64(total) / float64(sum.Count)
	}
	return sum, nil
}

var day0 = time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)

func newTestService() (*Service, *fakeWeights, *fakeFeedbacks) {
	w, f := &fakeWeights{}, &fakeFeedbacks{}
	svc := NewService(Repos{Weights: w, Feedbacks: f})
	svc.now = func() time.Time { return day0.AddDate(0, 0, 30) }
	return svc, w, f
}

func record(t *testing.T, svc *Service, userID string, weight float64, daysAfter int) {
	t.Helper()
	at := day0.AddDate(0, 0, daysAfter)
	_, err := svc.RecordWeight(context.Background(), userID, RecordWeightInput{Weight: weight, MeasuredAt: &at})
	require.NoError(t, err)
}

func TestProgressReport_NoData(t *testing.T) {
	svc, _, _ := newTestService()

	rep, err := svc.ProgressReport(context.Background(), "u1")
	require.NoError(t, err)

	assert.Nil(t, rep.CurrentWeight)
	assert.Zero(t, rep.WeightChange)
	assert.Zero(t, rep.TotalDays)
	assert.Equal(t, TrendMaintain, rep.Trend)
	assert.Empty(t, rep.History)
	assert.Zero(t, rep.Feedback.Count)
}

func TestProgressReport_SingleRecordMaintains(t *testing.T) {
	svc, _, _ := newTestService()
	record(t, svc, "u1", 72.5, 0)

	rep, err := svc.ProgressReport(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, rep.CurrentWeight)
	assert.Equal(t, 72.5, *rep.CurrentWeight)
	assert.Zero(t, rep.WeightChange)
	assert.Equal(t, TrendMaintain, rep.Trend)
	assert.Equal(t, 1, rep.TotalDays)
}

func TestProgressReport_Decrease(t *testing.T) {
	svc, _, _ := newTestService()
	record(t, svc, "u1", 80, 0)
	record(t, svc, "u1", 78, 5)
	record(t, svc, "u1", 75, 10)

	rep, err := svc.ProgressReport(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 75.0, *rep.CurrentWeight)
	assert.InDelta(t, -5.0, rep.WeightChange, 1e-9)
	assert.Equal(t, TrendDecrease, rep.Trend)
	assert.Equal(t, 3, rep.TotalDays)
}

func TestProgressReport_Increase(t *testing.T) {
	svc, _, _ := newTestService()
	record(t, svc, "u1", 60, 0)
	record(t, svc, "u1", 61.2, 1)

	rep, err := svc.ProgressReport(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, TrendIncrease, rep.Trend)
}

func TestProgressReport_WindowIsTenMostRecent(t *testing.T) {
	svc, _, _ := newTestService()
	// 100 on day 0, then 90..80 on days 1..11.
	record(t, svc, "u1", 100, 0)
	for i := 1; i <= 11; i++ {
		record(t, svc, "u1", float64(91-i), i)
	}

	rep, err := svc.ProgressReport(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, rep.History, 10)
	assert.Equal(t, 10, rep.TotalDays)
	assert.Equal(t, 80.0, *rep.CurrentWeight)
	// Oldest in window is day 2 (89 kg).
	assert.InDelta(t, -9.0, rep.WeightChange, 1e-9)
}

func TestProgressReport_FeedbackAverage(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, score := range []int{7, 9, 999} {
		_, err := svc.SubmitFeedback(ctx, "u1", FeedbackInput{SupplementID: "s1", EffectivenessScore: score})
		require.NoError(t, err)
	}
	_, err := svc.SubmitFeedback(ctx, "u2", FeedbackInput{SupplementID: "s1", EffectivenessScore: 1})
	require.NoError(t, err)

	rep, err := svc.ProgressReport(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Feedback.Count)
	assert.InDelta(t, 338.333, rep.Feedback.Average, 0.001)
}

func TestSubmitFeedback_StoresScoreAsGiven(t *testing.T) {
	svc, _, fb := newTestService()

	f, err := svc.SubmitFeedback(context.Background(), "u1", FeedbackInput{
		SupplementID:       " s1 ",
		EffectivenessScore: -4,
		HasSideEffects:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", f.SupplementID)
	assert.Equal(t, -4, fb.items[0].EffectivenessScore)

	_, err = svc.SubmitFeedback(context.Background(), "u1", FeedbackInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordWeight_DefaultsMeasurementToNow(t *testing.T) {
	svc, _, _ := newTestService()

	rec, err := svc.RecordWeight(context.Background(), "u1", RecordWeightInput{Weight: 0, Memo: " 아침 "})
	require.NoError(t, err)
	assert.Equal(t, svc.now(), rec.MeasurementDate)
	assert.Equal(t, "아침", rec.Memo)

	_, err = svc.RecordWeight(context.Background(), "", RecordWeightInput{Weight: 70})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWeightHistory_Days(t *testing.T) {
	svc, w, _ := newTestService()
	// now is day 30.
	record(t, svc, "u1", 70, 0)
	record(t, svc, "u1", 69, 25)
	record(t, svc, "u1", 68, 29)
	old := day0.AddDate(0, 0, -100)
	require.NoError(t, w.Create(context.Background(), WeightRecord{ID: "old", UserID: "u1", Weight: 90, MeasurementDate: old}))

	items, err := svc.WeightHistory(context.Background(), "u1", 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 68.0, items[0].Weight)

	items, err = svc.WeightHistory(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Len(t, items, 3, "default window is 90 days")
}

func TestTestimonials(t *testing.T) {
	assert.Len(t, Testimonials(), 3)
}
