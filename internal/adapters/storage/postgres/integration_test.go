package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"genefit/internal/domain/analytics"
	"genefit/internal/domain/profiles"
	"genefit/internal/domain/subscriptions"
	"genefit/internal/ports/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to GENEFIT_TEST_DSN and applies the schema.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("GENEFIT_TEST_DSN")
	if dsn == "" {
		t.Skip("GENEFIT_TEST_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestIntegration_ProfileTxRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProfilesRepo(db)
	userID := "it-" + uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	boom := errors.New("abort")
	err := NewTransactor(db).WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, profiles.Profile{
			ID: uuid.NewString(), UserID: userID, SubscriptionStatus: profiles.SubscriptionActive,
			JoinedDate: now, CreatedAt: now, UpdatedAt: now,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.LatestByUser(ctx, userID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestIntegration_DeliveriesJoinSubscriptions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repos := NewSubscriptionRepos(db)
	userID := "it-" + uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	sub := subscriptions.Subscription{
		ID: uuid.NewString(), UserID: userID, Status: subscriptions.StatusActive,
		StartDate: now, MonthlyFee: subscriptions.MonthlyFee, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Subscriptions.Create(ctx, sub))

	d := subscriptions.Delivery{
		ID: uuid.NewString(), SubscriptionID: sub.ID, Status: subscriptions.DeliveryPreparing,
		Address: map[string]any{"city": "Seoul"}, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Deliveries.Create(ctx, d))

	items, err := repos.Deliveries.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Seoul", items[0].Address["city"])
	assert.NotNil(t, items[0].ProductList)
}

func TestIntegration_FeedbackSummary(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repos := NewAnalyticsRepos(db)
	userID := "it-" + uuid.NewString()

	sum, err := repos.Feedbacks.SummaryByUser(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, sum.Count)

	for _, score := range []int{6, 8} {
		require.NoError(t, repos.Feedbacks.Create(ctx, analytics.Feedback{
			ID: uuid.NewString(), UserID: userID, SupplementID: "s1",
			EffectivenessScore: score, CreatedAt: time.Now().UTC(),
		}))
	}
	sum, err = repos.Feedbacks.SummaryByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.InDelta(t, 7.0, sum.Average, 1e-9)
}

func TestIntegration_UnknownIDsAreNotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repos := NewSubscriptionRepos(db)

	for _, id := range []string{"does-not-exist", uuid.NewString()} {
		_, err := repos.Subscriptions.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound, id)
		_, err = repos.Deliveries.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound, id)
	}
}

func TestIntegration_DeliveryKeepsDanglingSubscriptionID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repos := NewSubscriptionRepos(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	d := subscriptions.Delivery{
		ID: uuid.NewString(), SubscriptionID: uuid.NewString(), Status: subscriptions.DeliveryPreparing,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Deliveries.Create(ctx, d))

	got, err := repos.Deliveries.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.SubscriptionID, got.SubscriptionID)
}
