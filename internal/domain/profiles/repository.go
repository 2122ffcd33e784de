package profiles

import "context"

type Repository interface {
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	// LatestByUser returns the most recently created profile for userID.
	LatestByUser(ctx context.Context, userID string) (Profile, error)
}
