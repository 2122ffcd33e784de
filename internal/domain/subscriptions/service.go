package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"genefit/internal/ports/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("subscription not found")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
)

const (
	billingCycle = 30 * 24 * time.Hour
	deliveryLead = 2 * 24 * time.Hour
)

// ProfileActivator is satisfied by *profiles.Service.
type ProfileActivator interface {
	ActivateSubscription(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	repos    Repos
	profiles ProfileActivator
	tx       store.Transactor
	now      func() time.Time
}

func NewService(repos Repos, profiles ProfileActivator, tx store.Transactor) *Service {
	if tx == nil {
		tx = store.Direct{}
	}
	return &Service{
		repos:    repos,
		profiles: profiles,
		tx:       tx,
		now:      time.Now,
	}
}

type CreateResult struct {
	Subscription Subscription
	// Advisory only; nothing is scheduled.
	NextBillingDate time.Time
}

// Create starts a monthly plan and marks the user's current profile active.
// A user without a profile still gets the subscription.
func (s *Service) Create(ctx context.Context, userID string, paymentInfo map[string]any) (CreateResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CreateResult{}, ErrInvalidInput
	}
	if paymentInfo == nil {
		paymentInfo = map[string]any{}
	}

	now := s.now()
	sub := Subscription{
		ID:          uuid.NewString(),
		UserID:      userID,
		Status:      StatusActive,
		StartDate:   now,
		MonthlyFee:  MonthlyFee,
		PaymentInfo: paymentInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repos.Subscriptions.Create(ctx, sub); err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}
		if _, err := s.profiles.ActivateSubscription(ctx, userID); err != nil {
			return fmt.Errorf("activate profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}

	return CreateResult{Subscription: sub, NextBillingDate: now.Add(billingCycle)}, nil
}

func (s *Service) ActiveForUser(ctx context.Context, userID string) (Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Subscription{}, ErrInvalidInput
	}
	sub, err := s.repos.Subscriptions.LatestActiveByUser(ctx, userID)
	if err != nil {
		return Subscription{}, mapNotFound(err, ErrNotFound, "active subscription")
	}
	return sub, nil
}

func (s *Service) Get(ctx context.Context, id string) (Subscription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Subscription{}, ErrInvalidInput
	}
	sub, err := s.repos.Subscriptions.GetByID(ctx, id)
	if err != nil {
		return Subscription{}, mapNotFound(err, ErrNotFound, "get subscription")
	}
	return sub, nil
}

// UpdateStatus overwrites the status. EndDate is stamped only on cancellation.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (Subscription, error) {
	if !to.Valid() {
		return Subscription{}, ErrInvalidInput
	}
	sub, err := s.Get(ctx, id)
	if err != nil {
		return Subscription{}, err
	}
	if !CanTransition(sub.Status, to) {
		return Subscription{}, ErrInvalidTransition
	}

	now := s.now()
	sub.Status = to
	sub.UpdatedAt = now
	if to == StatusCancelled {
		sub.EndDate = &now
	}

	if err := s.repos.Subscriptions.Update(ctx, sub); err != nil {
		return Subscription{}, mapNotFound(err, ErrNotFound, "update subscription")
	}
	return sub, nil
}

type CreateDeliveryResult struct {
	Delivery          Delivery
	EstimatedDelivery time.Time
}

func (s *Service) CreateDelivery(ctx context.Context, subscriptionID string, address map[string]any, products []map[string]any) (CreateDeliveryResult, error) {
	sub, err := s.Get(ctx, subscriptionID)
	if err != nil {
		return CreateDeliveryResult{}, err
	}
	if address == nil {
		address = map[string]any{}
	}
	if products == nil {
		products = []map[string]any{}
	}

	now := s.now()
	d := Delivery{
		ID:             uuid.NewString(),
		SubscriptionID: sub.ID,
		Status:         DeliveryPreparing,
		Address:        address,
		ProductList:    products,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repos.Deliveries.Create(ctx, d); err != nil {
		return CreateDeliveryResult{}, fmt.Errorf("create delivery: %w", err)
	}

	return CreateDeliveryResult{Delivery: d, EstimatedDelivery: now.Add(deliveryLead)}, nil
}

func (s *Service) ListDeliveriesForUser(ctx context.Context, userID string) ([]Delivery, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.repos.Deliveries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return items, nil
}

func (s *Service) GetDelivery(ctx context.Context, id string) (Delivery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Delivery{}, ErrInvalidInput
	}
	d, err := s.repos.Deliveries.GetByID(ctx, id)
	if err != nil {
		return Delivery{}, mapNotFound(err, ErrDeliveryNotFound, "get delivery")
	}
	return d, nil
}

// UpdateDeliveryStatus advances a delivery. SentDate is stamped the first time
// the parcel leaves (sent or later), DeliveredDate on complete.
// An empty trackingNumber keeps the current one.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, id string, to DeliveryStatus, trackingNumber string) (Delivery, error) {
	if !to.Valid() {
		return Delivery{}, ErrInvalidInput
	}
	d, err := s.GetDelivery(ctx, id)
	if err != nil {
		return Delivery{}, err
	}
	if !CanAdvanceDelivery(d.Status, to) {
		return Delivery{}, ErrInvalidTransition
	}

	now := s.now()
	d.Status = to
	d.UpdatedAt = now
	if d.SentDate == nil {
		d.SentDate = &now
	}
	if to == DeliveryComplete {
		d.DeliveredDate = &now
	}
	if tn := strings.TrimSpace(trackingNumber); tn != "" {
		d.TrackingNumber = tn
	}

	if err := s.repos.Deliveries.Update(ctx, d); err != nil {
		return Delivery{}, mapNotFound(err, ErrDeliveryNotFound, "update delivery")
	}
	return d, nil
}

func mapNotFound(err, target error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return fmt.Errorf("%s: %w", op, err)
}
