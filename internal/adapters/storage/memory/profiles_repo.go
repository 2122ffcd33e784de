package memory

import (
	"context"

	"genefit/internal/domain/profiles"
)

type profileRepo struct {
	t *table[profiles.Profile]
}

func NewProfileRepo() profiles.Repository {
	return &profileRepo{t: newTable(func(p profiles.Profile) string { return p.ID })}
}

func (r *profileRepo) Create(ctx context.Context, p profiles.Profile) error {
	return r.t.insert(ctx, p)
}

func (r *profileRepo) Update(ctx context.Context, p profiles.Profile) error {
	return r.t.update(ctx, p)
}

func (r *profileRepo) GetByID(_ context.Context, id string) (profiles.Profile, error) {
	return r.t.get(id)
}

func (r *profileRepo) LatestByUser(_ context.Context, userID string) (profiles.Profile, error) {
	return r.t.first(
		func(p profiles.Profile) bool { return p.UserID == userID },
		func(a, b profiles.Profile) bool { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)
}
