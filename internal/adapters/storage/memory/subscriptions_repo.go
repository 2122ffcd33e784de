package memory

import (
	"context"

	"genefit/internal/domain/subscriptions"
)

// NewSubscriptionRepos returns subscription and delivery stores that share state,
// so deliveries can be listed per subscription owner.
func NewSubscriptionRepos() subscriptions.Repos {
	subs := &subscriptionRepo{t: newTable(func(s subscriptions.Subscription) string { return s.ID })}
	return subscriptions.Repos{
		Subscriptions: subs,
		Deliveries: &deliveryRepo{
			t:    newTable(func(d subscriptions.Delivery) string { return d.ID }),
			subs: subs,
		},
	}
}

type subscriptionRepo struct {
	t *table[subscriptions.Subscription]
}

func (r *subscriptionRepo) Create(ctx context.Context, s subscriptions.Subscription) error {
	return r.t.insert(ctx, s)
}

func (r *subscriptionRepo) Update(ctx context.Context, s subscriptions.Subscription) error {
	return r.t.update(ctx, s)
}

func (r *subscriptionRepo) GetByID(_ context.Context, id string) (subscriptions.Subscription, error) {
	return r.t.get(id)
}

func (r *subscriptionRepo) LatestActiveByUser(_ context.Context, userID string) (subscriptions.Subscription, error) {
	return r.t.first(
		func(s subscriptions.Subscription) bool {
			return s.UserID == userID && s.Status == subscriptions.StatusActive
		},
		func(a, b subscriptions.Subscription) bool { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)
}

type deliveryRepo struct {
	t    *table[subscriptions.Delivery]
	subs *subscriptionRepo
}

func (r *deliveryRepo) Create(ctx context.Context, d subscriptions.Delivery) error {
	return r.t.insert(ctx, d)
}

func (r *deliveryRepo) Update(ctx context.Context, d subscriptions.Delivery) error {
	return r.t.update(ctx, d)
}

func (r *deliveryRepo) GetByID(_ context.Context, id string) (subscriptions.Delivery, error) {
	return r.t.get(id)
}

func (r *deliveryRepo) ListByUser(_ context.Context, userID string) ([]subscriptions.Delivery, error) {
	owned := make(map[string]struct{})
	for _, s := range r.subs.t.selectRows(func(s subscriptions.Subscription) bool { return s.UserID == userID }, nil) {
		owned[s.ID] = struct{}{}
	}

	return r.t.selectRows(
		func(d subscriptions.Delivery) bool {
			_, ok := owned[d.SubscriptionID]
			return ok
		},
		func(a, b subscriptions.Delivery) bool { return newestFirst(a.CreatedAt, b.CreatedAt) },
	), nil
}
