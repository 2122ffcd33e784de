package postgres

import (
	"context"
	"database/sql"
	"errors"

	"genefit/internal/domain/subscriptions"
	"genefit/internal/ports/store"
)

func NewSubscriptionRepos(db *sql.DB) subscriptions.Repos {
	return subscriptions.Repos{
		Subscriptions: &SubscriptionsRepo{db: db},
		Deliveries:    &DeliveriesRepo{db: db},
	}
}

type SubscriptionsRepo struct {
	db *sql.DB
}

const subscriptionColumns = `
	id, user_id, status, start_date, end_date,
	monthly_fee, payment_info, created_at, updated_at`

func (r *SubscriptionsRepo) Create(ctx context.Context, s subscriptions.Subscription) error {
	payment, err := toJSONB(s.PaymentInfo, "{}")
	if err != nil {
		return err
	}

	_, err = conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO subscriptions (`+subscriptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID,
		s.UserID,
		string(s.Status),
		s.StartDate,
		toNullTime(s.EndDate),
		s.MonthlyFee,
		payment,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SubscriptionsRepo) Update(ctx context.Context, s subscriptions.Subscription) error {
	payment, err := toJSONB(s.PaymentInfo, "{}")
	if err != nil {
		return err
	}

	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE subscriptions
		SET
			status = $2,
			end_date = $3,
			monthly_fee = $4,
			payment_info = $5,
			updated_at = $6
		WHERE id = $1
	`,
		s.ID,
		string(s.Status),
		toNullTime(s.EndDate),
		s.MonthlyFee,
		payment,
		s.UpdatedAt,
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

func (r *SubscriptionsRepo) GetByID(ctx context.Context, id string) (subscriptions.Subscription, error) {
	id, ok := parseID(id)
	if !ok {
		return subscriptions.Subscription{}, store.ErrNotFound
	}
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id = $1
	`, id)
	return scanSubscription(row)
}

func (r *SubscriptionsRepo) LatestActiveByUser(ctx context.Context, userID string) (subscriptions.Subscription, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		  AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanSubscription(row)
}

func scanSubscription(row rowScanner) (subscriptions.Subscription, error) {
	var s subscriptions.Subscription
	var status string
	var endDate sql.NullTime
	var payment []byte

	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&status,
		&s.StartDate,
		&endDate,
		&s.MonthlyFee,
		&payment,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return subscriptions.Subscription{}, store.ErrNotFound
		}
		return subscriptions.Subscription{}, err
	}

	s.Status = subscriptions.Status(status)
	s.EndDate = fromNullTime(endDate)
	if err := fromJSONB(payment, &s.PaymentInfo); err != nil {
		return subscriptions.Subscription{}, err
	}
	return s, nil
}

type DeliveriesRepo struct {
	db *sql.DB
}

const deliveryColumns = `
	d.id, d.subscription_id, d.status, d.delivery_address, d.product_list,
	d.sent_date, d.delivered_date, d.tracking_number, d.created_at, d.updated_at`

func (r *DeliveriesRepo) Create(ctx context.Context, d subscriptions.Delivery) error {
	address, err := toJSONB(d.Address, "{}")
	if err != nil {
		return err
	}
	products, err := toJSONB(d.ProductList, "[]")
	if err != nil {
		return err
	}

	_, err = conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO deliveries (
			id, subscription_id, status, delivery_address, product_list,
			sent_date, delivered_date, tracking_number, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		d.ID,
		d.SubscriptionID,
		string(d.Status),
		address,
		products,
		toNullTime(d.SentDate),
		toNullTime(d.DeliveredDate),
		toNullString(d.TrackingNumber),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DeliveriesRepo) Update(ctx context.Context, d subscriptions.Delivery) error {
	address, err := toJSONB(d.Address, "{}")
	if err != nil {
		return err
	}
	products, err := toJSONB(d.ProductList, "[]")
	if err != nil {
		return err
	}

	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE deliveries
		SET
			status = $2,
			delivery_address = $3,
			product_list = $4,
			sent_date = $5,
			delivered_date = $6,
			tracking_number = $7,
			updated_at = $8
		WHERE id = $1
	`,
		d.ID,
		string(d.Status),
		address,
		products,
		toNullTime(d.SentDate),
		toNullTime(d.DeliveredDate),
		toNullString(d.TrackingNumber),
		d.UpdatedAt,
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

func (r *DeliveriesRepo) GetByID(ctx context.Context, id string) (subscriptions.Delivery, error) {
	id, ok := parseID(id)
	if !ok {
		return subscriptions.Delivery{}, store.ErrNotFound
	}
	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+deliveryColumns+`
		FROM deliveries d
		WHERE d.id = $1
	`, id)
	return scanDelivery(row)
}

func (r *DeliveriesRepo) ListByUser(ctx context.Context, userID string) ([]subscriptions.Delivery, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT `+deliveryColumns+`
		FROM deliveries d
		JOIN subscriptions s ON d.subscription_id = s.id
		WHERE s.user_id = $1
		ORDER BY d.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]subscriptions.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDelivery(row rowScanner) (subscriptions.Delivery, error) {
	var d subscriptions.Delivery
	var status string
	var address, products []byte
	var sent, delivered sql.NullTime
	var tracking sql.NullString

	if err := row.Scan(
		&d.ID,
		&d.SubscriptionID,
		&status,
		&address,
		&products,
		&sent,
		&delivered,
		&tracking,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return subscriptions.Delivery{}, store.ErrNotFound
		}
		return subscriptions.Delivery{}, err
	}

	d.Status = subscriptions.DeliveryStatus(status)
	d.SentDate = fromNullTime(sent)
	d.DeliveredDate = fromNullTime(delivered)
	d.TrackingNumber = tracking.String
	if err := fromJSONB(address, &d.Address); err != nil {
		return subscriptions.Delivery{}, err
	}
	if err := fromJSONB(products, &d.ProductList); err != nil {
		return subscriptions.Delivery{}, err
	}
	return d, nil
}
