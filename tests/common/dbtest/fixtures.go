//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING", userID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestProvider(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	providerID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO providers (id, name, email) VALUES ($1, $2, $3)", providerID, name, email)
	require.NoError(t, err)
	return providerID
}

func CreateTestGuardian(t *testing.T, db DBLike, userID *uuid.UUID, name, email string) uuid.UUID {
	t.Helper()

	guardianID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO guardians (id, user_id, name, email) VALUES ($1, $2, $3, $4)",
		guardianID, userID, name, email)
	require.NoError(t, err)
	return guardianID
}

// CreateTestOrder inserts an order row, optionally already linked to a booking.
func CreateTestOrder(t *testing.T, db DBLike, bookingID *int64, paymentTransactionID string) int64 {
	t.Helper()

	var orderID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO orders (booking_id, payment_transaction_id) VALUES ($1, $2) RETURNING id",
		bookingID, paymentTransactionID).Scan(&orderID)
	require.NoError(t, err)
	return orderID
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO providers (id, name, email) VALUES
		    ('00000000-0000-0000-0000-0000000000a1', 'Default Coach', 'coach@example.com')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

// DefaultProviderID is seeded by SeedReferenceData.
var DefaultProviderID = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
