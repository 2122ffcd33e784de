package postgres

import (
	"context"
	"database/sql"
	"errors"

	"genefit/internal/domain/profiles"
	"genefit/internal/ports/store"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

const profileColumns = `
	id, user_id, full_name, phone, email, address,
	subscription_status, joined_date, last_login,
	created_at, updated_at`

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	address, err := toJSONB(p.Address, "{}")
	if err != nil {
		return err
	}

	_, err = conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO user_profiles (`+profileColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ID,
		p.UserID,
		p.FullName,
		p.Phone,
		p.Email,
		address,
		string(p.SubscriptionStatus),
		p.JoinedDate,
		toNullTime(p.LastLogin),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	address, err := toJSONB(p.Address, "{}")
	if err != nil {
		return err
	}

	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE user_profiles
		SET
			full_name = $2,
			phone = $3,
			email = $4,
			address = $5,
			subscription_status = $6,
			last_login = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.FullName,
		p.Phone,
		p.Email,
		address,
		string(p.SubscriptionStatus),
		toNullTime(p.LastLogin),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id, ok := parseID(id)
	if !ok {
		return profiles.Profile{}, store.ErrNotFound
	}

	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles
		WHERE id = $1
	`, id)
	return scanProfile(row)
}

func (r *ProfilesRepo) LatestByUser(ctx context.Context, userID string) (profiles.Profile, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanProfile(row)
}

func scanProfile(row rowScanner) (profiles.Profile, error) {
	var p profiles.Profile
	var status string
	var address []byte
	var lastLogin sql.NullTime

	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&p.Phone,
		&p.Email,
		&address,
		&status,
		&p.JoinedDate,
		&lastLogin,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, store.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	p.SubscriptionStatus = profiles.SubscriptionStatus(status)
	p.LastLogin = fromNullTime(lastLogin)
	if err := fromJSONB(address, &p.Address); err != nil {
		return profiles.Profile{}, err
	}
	return p, nil
}
