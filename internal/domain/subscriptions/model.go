package subscriptions

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryPreparing DeliveryStatus = "preparing"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryComplete  DeliveryStatus = "complete"
)

// MonthlyFee is the plan price in KRW.
const MonthlyFee = 40000.0

type Subscription struct {
	ID     string
	UserID string

	Status     Status
	StartDate  time.Time
	EndDate    *time.Time // set only on cancellation
	MonthlyFee float64

	// Passed through untouched; no payment provider is involved.
	PaymentInfo map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Delivery struct {
	ID             string
	SubscriptionID string

	Status         DeliveryStatus
	Address        map[string]any
	ProductList    []map[string]any
	SentDate       *time.Time
	DeliveredDate  *time.Time
	TrackingNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}
