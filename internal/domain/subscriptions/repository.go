package subscriptions

import "context"

type SubscriptionRepository interface {
	Create(ctx context.Context, s Subscription) error
	Update(ctx context.Context, s Subscription) error
	GetByID(ctx context.Context, id string) (Subscription, error)
	// LatestActiveByUser returns the most recently created active subscription.
	LatestActiveByUser(ctx context.Context, userID string) (Subscription, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, d Delivery) error
	Update(ctx context.Context, d Delivery) error
	GetByID(ctx context.Context, id string) (Delivery, error)
	// ListByUser returns deliveries of every subscription owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]Delivery, error)
}

type Repos struct {
	Subscriptions SubscriptionRepository
	Deliveries    DeliveryRepository
}
