//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("painterflow"),
		postgres.WithUsername("painterflow"),
		postgres.WithPassword("painterflow"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(DriverPostgres, dsn, false)
	require.NoError(t, err)
	return db
}

func TestSQLMigrationsRoundTrip(t *testing.T) {
	db := setupPostgres(t)

	require.NoError(t, MigrateUp(db))
	v, dirty, err := MigrationVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	require.NoError(t, MigrateDown(db, 0))
	v, _, err = MigrationVersion(db)
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.False(t, db.Migrator().HasTable("quotes"))

	require.NoError(t, MigrateUp(db))
	assert.True(t, db.Migrator().HasTable("quotes"))
}

func TestStoreOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	require.NoError(t, MigrateUp(db))

	s := NewStore(db)
	ctx := context.Background()

	u := &models.User{Email: "painter@example.com", PasswordHash: "x", Confirmed: true}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.ErrorIs(t, s.CreateUser(ctx, &models.User{Email: "painter@example.com", PasswordHash: "y"}), ErrDuplicate)

	c := seedCustomer(t, s, u.ID, "Alice")
	est, err := s.CreateEstimate(ctx, u.ID, c.ID, []pricing.LineItem{
		{Label: "Walls", Quantity: 2, Rate: 45},
		{Label: "Trim", Quantity: 1, Rate: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 110.0, est.Total)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	q1, err := s.CreateQuote(ctx, u.ID, QuoteInput{EstimateID: est.ID, ValidDays: 30, TaxRate: 8}, now)
	require.NoError(t, err)
	q2, err := s.CreateQuote(ctx, u.ID, QuoteInput{EstimateID: est.ID, ValidDays: 14}, now)
	require.NoError(t, err)
	assert.Equal(t, 1, q1.QuoteNumber)
	assert.Equal(t, 2, q2.QuoteNumber)
	assert.Equal(t, 118.8, q1.Total)

	require.NoError(t, s.DeleteEstimate(ctx, u.ID, est.ID))
	items, err := s.QuoteItems(ctx, u.ID, q1)
	require.NoError(t, err)
	assert.Empty(t, items)

	got, err := s.GetQuote(ctx, u.ID, q1.ID)
	require.NoError(t, err)
	assert.Equal(t, 118.8, got.Total)

	require.NoError(t, s.DeleteCustomer(ctx, u.ID, c.ID))
	got, err = s.GetQuote(ctx, u.ID, q1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Customer)
}
