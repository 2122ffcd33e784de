package profiles

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
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	FullName string
	Phone    string
	Email    string
	Address  map[string]any
	Status   SubscriptionStatus
}

// Create always inserts a new profile; earlier profiles for the same user are left as they are.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = SubscriptionActive
	}

	now := s.now()
	p := Profile{
		ID:                 uuid.NewString(),
		UserID:             userID,
		FullName:           strings.TrimSpace(in.FullName),
		Phone:              strings.TrimSpace(in.Phone),
		Email:              strings.TrimSpace(in.Email),
		Address:            in.Address,
		SubscriptionStatus: status,
		JoinedDate:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *Service) Latest(ctx context.Context, userID string) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	p, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("latest profile: %w", err)
	}
	return p, nil
}

// ActivateSubscription flips the user's current profile to active.
// A user without a profile is not an error: found is false and nothing is written.
func (s *Service) ActivateSubscription(ctx context.Context, userID string) (found bool, err error) {
	p, err := s.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	p.SubscriptionStatus = SubscriptionActive
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return true, fmt.Errorf("activate profile: %w", err)
	}
	return true, nil
}
