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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func PropertyIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM properties WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name, nationalID string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, name, national_id, phone, created_at, updated_at) VALUES ($1, $2, $3, '', now(), now()) ON CONFLICT (national_id) DO NOTHING",
		customerID, name, nationalID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE national_id = $1", nationalID).Scan(&customerID)
	}

	return customerID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, name, location, capacity, advance_percent)
		SELECT gen_random_uuid(), v.name, v.location, v.capacity, v.advance_percent
		FROM (VALUES
			('Sunset Farmhouse', 'Bedian Road', 12, 30),
			('Olive Grove Hut', 'Raiwind Road', 18, 50)
		) AS v(name, location, capacity, advance_percent)
		WHERE NOT EXISTS (SELECT 1 FROM properties p WHERE p.name = v.name);
	`)
	if err != nil {
		return err
	}

	// Every property gets a flat rate for every weekday and shift so
	// booking tests never trip over a missing rate.
	_, err = pool.Exec(ctx, `
		INSERT INTO property_rates (property_id, weekday, shift, rate_cents)
		SELECT p.id, w.weekday, s.shift, 500000
		FROM properties p
		CROSS JOIN generate_series(0, 6) AS w(weekday)
		CROSS JOIN (VALUES ('day'), ('night'), ('full_day'), ('full_night')) AS s(shift)
		ON CONFLICT (property_id, weekday, shift) DO NOTHING;
	`)
	return err
}

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
