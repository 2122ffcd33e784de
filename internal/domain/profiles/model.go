package profiles

import "time"

// SubscriptionStatus mirrors whether the user currently holds a plan.
// @Enum active, inactive, cancelled
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionInactive  SubscriptionStatus = "inactive"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Profile is the contact and shipping record created when a user orders a test kit.
type Profile struct {
	ID     string
	UserID string // external auth identifier

	FullName string
	Phone    string
	Email    string
	Address  map[string]any

	SubscriptionStatus SubscriptionStatus

	JoinedDate time.Time
	LastLogin  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
