package subscriptions

import "context"

// Authorize returns the subscription when userID owns it, ErrForbidden otherwise.
func (s *Service) Authorize(ctx context.Context, userID, subscriptionID string) (Subscription, error) {
	sub, err := s.Get(ctx, subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	if sub.UserID != userID {
		return Subscription{}, ErrForbidden
	}
	return sub, nil
}
