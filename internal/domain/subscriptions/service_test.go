package subscriptions

import (
	"context"
	"testing"
	"time"

	"genefit/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubs struct {
	byID  map[string]Subscription
	order []string
}

func (r *fakeSubs) Create(_ context.Context, s Subscription) error {
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeSubs) Update(_ context.Context, s Subscription) error {
	if _, ok := r.byID[s.ID]; !ok {
		return store.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSubs) GetByID(_ context.Context, id string) (Subscription, error) {
	s, ok := r.byID[id]
	if !ok {
		return Subscription{}, store.ErrNotFound
	}
	return s, nil
}

func (r *fakeSubs) LatestActiveByUser(_ context.Context, userID string) (Subscription, error) {
	for i := len(r.order) - 1; i >= 0; i-- {
		if s := r.byID[r.order[i]]; s.UserID == userID && s.Status == StatusActive {
			return s, nil
		}
	}
	return Subscription{}, store.ErrNotFound
}

type fakeDeliveries struct {
	subs  *fakeSubs
	byID  map[string]Delivery
	order []string
}

func (r *fakeDeliveries) Create(_ context.Context, d Delivery) error {
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *fakeDeliveries) Update(_ context.Context, d Delivery) error {
	if _, ok := r.byID[d.ID]; !ok {
		return store.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *fakeDeliveries) GetByID(_ context.Context, id string) (Delivery, error) {
	d, ok := r.byID[id]
	if !ok {
		return Delivery{}, store.ErrNotFound
	}
	return d, nil
}

func (r *fakeDeliveries) ListByUser(_ context.Context, userID string) ([]Delivery, error) {
	out := make([]Delivery, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		d := r.byID[r.order[i]]
		if r.subs.byID[d.SubscriptionID].UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeActivator struct {
	calls []string
	found bool
}

func (f *fakeActivator) ActivateSubscription(_ context.Context, userID string) (bool, error) {
	f.calls = append(f.calls, userID)
	return f.found, nil
}

type fixture struct {
	svc        *Service
	subs       *fakeSubs
	deliveries *fakeDeliveries
	activator  *fakeActivator
	clock      time.Time
}

func newFixture() *fixture {
	subs := &fakeSubs{byID: map[string]Subscription{}}
	f := &fixture{
		subs:       subs,
		deliveries: &fakeDeliveries{subs: subs, byID: map[string]Delivery{}},
		activator:  &fakeActivator{},
		clock:      time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC),
	}
	f.svc = NewService(Repos{Subscriptions: f.subs, Deliveries: f.deliveries}, f.activator, nil)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) mustCreate(t *testing.T, userID string) Subscription {
	t.Helper()
	res, err := f.svc.Create(context.Background(), userID, nil)
	require.NoError(t, err)
	return res.Subscription
}

func TestCreate_ActivePlanWithoutProfile(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Create(context.Background(), "u1", map[string]any{"card": "****1234"})
	require.NoError(t, err)

	sub := res.Subscription
	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, MonthlyFee, sub.MonthlyFee)
	assert.Equal(t, f.clock, sub.StartDate)
	assert.Nil(t, sub.EndDate)
	assert.Equal(t, f.clock.Add(30*24*time.Hour), res.NextBillingDate)
	assert.Equal(t, []string{"u1"}, f.activator.calls)
}

func TestCreate_RequiresUser(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.subs.byID)
}

func TestActiveForUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ActiveForUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	older := f.mustCreate(t, "u1")
	newer := f.mustCreate(t, "u1")

	got, err := f.svc.ActiveForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	_, err = f.svc.UpdateStatus(ctx, newer.ID, StatusPaused)
	require.NoError(t, err)

	got, err = f.svc.ActiveForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sub := f.mustCreate(t, "u1")

	_, err := f.svc.UpdateStatus(ctx, "missing", StatusPaused)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateStatus(ctx, sub.ID, "frozen")
	assert.ErrorIs(t, err, ErrInvalidInput)

	paused, err := f.svc.UpdateStatus(ctx, sub.ID, StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, paused.Status)
	assert.Nil(t, paused.EndDate)

	f.clock = f.clock.Add(48 * time.Hour)
	cancelled, err := f.svc.UpdateStatus(ctx, sub.ID, StatusCancelled)
	require.NoError(t, err)
	require.NotNil(t, cancelled.EndDate)
	assert.Equal(t, f.clock, *cancelled.EndDate)

	_, err = f.svc.UpdateStatus(ctx, sub.ID, StatusActive)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCancelled, f.subs.byID[sub.ID].Status)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusActive, StatusPaused))
	assert.True(t, CanTransition(StatusPaused, StatusActive))
	assert.True(t, CanTransition(StatusPaused, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusActive))
	assert.False(t, CanTransition(StatusActive, StatusActive))
}

func TestCreateDelivery(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CreateDelivery(ctx, "missing", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.deliveries.byID)

	sub := f.mustCreate(t, "u1")
	res, err := f.svc.CreateDelivery(ctx, sub.ID, map[string]any{"city": "Busan"}, []map[string]any{{"name": "CLA", "qty": 1}})
	require.NoError(t, err)

	d := res.Delivery
	assert.Equal(t, DeliveryPreparing, d.Status)
	assert.Nil(t, d.SentDate)
	assert.Empty(t, d.TrackingNumber)
	assert.Equal(t, f.clock.Add(48*time.Hour), res.EstimatedDelivery)
}

func TestUpdateDeliveryStatus_StampsDates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sub := f.mustCreate(t, "u1")
	res, err := f.svc.CreateDelivery(ctx, sub.ID, nil, nil)
	require.NoError(t, err)
	id := res.Delivery.ID

	f.clock = f.clock.Add(time.Hour)
	sentAt := f.clock
	sent, err := f.svc.UpdateDeliveryStatus(ctx, id, DeliverySent, " CJ-1001 ")
	require.NoError(t, err)
	require.NotNil(t, sent.SentDate)
	assert.Equal(t, sentAt, *sent.SentDate)
	assert.Equal(t, "CJ-1001", sent.TrackingNumber)
	assert.Nil(t, sent.DeliveredDate)

	f.clock = f.clock.Add(24 * time.Hour)
	done, err := f.svc.UpdateDeliveryStatus(ctx, id, DeliveryComplete, "")
	require.NoError(t, err)
	assert.Equal(t, sentAt, *done.SentDate, "sent date is kept")
	require.NotNil(t, done.DeliveredDate)
	assert.Equal(t, f.clock, *done.DeliveredDate)
	assert.Equal(t, "CJ-1001", done.TrackingNumber)

	_, err = f.svc.UpdateDeliveryStatus(ctx, id, DeliveryInTransit, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.UpdateDeliveryStatus(ctx, "missing", DeliverySent, "")
	assert.ErrorIs(t, err, ErrDeliveryNotFound)
}

func TestUpdateDeliveryStatus_SkipToComplete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sub := f.mustCreate(t, "u1")
	res, err := f.svc.CreateDelivery(ctx, sub.ID, nil, nil)
	require.NoError(t, err)

	done, err := f.svc.UpdateDeliveryStatus(ctx, res.Delivery.ID, DeliveryComplete, "")
	require.NoError(t, err)
	require.NotNil(t, done.SentDate)
	require.NotNil(t, done.DeliveredDate)
	assert.Equal(t, *done.SentDate, *done.DeliveredDate)
}

func TestListDeliveriesForUser_NewestFirstAndScoped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mine := f.mustCreate(t, "u1")
	theirs := f.mustCreate(t, "u2")

	first, err := f.svc.CreateDelivery(ctx, mine.ID, nil, nil)
	require.NoError(t, err)
	_, err = f.svc.CreateDelivery(ctx, theirs.ID, nil, nil)
	require.NoError(t, err)
	second, err := f.svc.CreateDelivery(ctx, mine.ID, nil, nil)
	require.NoError(t, err)

	items, err := f.svc.ListDeliveriesForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.Delivery.ID, items[0].ID)
	assert.Equal(t, first.Delivery.ID, items[1].ID)
}

func TestAuthorize(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sub := f.mustCreate(t, "owner")

	got, err := f.svc.Authorize(ctx, "owner", sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)

	_, err = f.svc.Authorize(ctx, "intruder", sub.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Authorize(ctx, "owner", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPricing(t *testing.T) {
	p := Pricing()
	assert.Equal(t, MonthlyFee, p.MonthlySubscription.Price)
	assert.Equal(t, "KRW", p.MonthlySubscription.Currency)
	assert.Len(t, p.FirstMonthBonus, 3)
}
