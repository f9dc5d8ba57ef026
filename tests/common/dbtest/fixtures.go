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

	"hass-backend/internal/pkg/password"
)

// Known logins seeded into every test database.
const (
	SeedPassword   = "password123!"
	CompanyLoginID = "company01"
	WorkerLoginID  = "worker01"
)

// Fixed IDs so tests can reference seeded rows without querying first.
var (
	WashingMachineModelID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	RefrigeratorModelID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	SeedWorkerID          = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	SeedCompanyID         = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

var (
	seedHashOnce sync.Once
	seedHash     string
)

// bcrypt is deliberately slow, hash the shared test password once per process
func seedPasswordHash() string {
	seedHashOnce.Do(func() {
		h, err := password.HashPassword(SeedPassword)
		if err != nil {
			panic(fmt.Sprintf("failed to hash seed password: %v", err))
		}
		seedHash = h
	})
	return seedHash
}

func CreateTestCustomer(t *testing.T, db DBLike, loginID string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO customers (id, name, main_phone, street_address) VALUES ($1, $2, $3, $4)",
		customerID, "Test Customer "+loginID, "080-0000-0000", "1-2-3 Chiyoda")
	require.NoError(t, err)

	tag, err := db.Exec(ctx,
		"INSERT INTO customer_credentials (login_id, password_hash, customer_id) VALUES ($1, $2, $3) ON CONFLICT (login_id) DO NOTHING",
		loginID, seedPasswordHash(), customerID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT customer_id FROM customer_credentials WHERE login_id = $1", loginID).Scan(&customerID)
	}

	return customerID
}

func CreateTestProduct(t *testing.T, db DBLike, serialNumber string, modelID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO products (serial_number, model_id, status) VALUES ($1, $2, 'in_stock') ON CONFLICT (serial_number) DO NOTHING",
		serialNumber, modelID)
	require.NoError(t, err)
}

// inserts the catalog and staff rows every lifecycle test depends on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO models (id, name, category, yearly_fee_cents, manufacturer, color, energy_rating, release_year) VALUES
		    ($1, 'EcoWash 500', 'washing_machine', 48000, 'Hitachi', 'white', 'A++', 2024),
		    ($2, 'FrostFree 320', 'refrigerator', 72000, 'Panasonic', 'silver', 'A+', 2023)
		ON CONFLICT (id) DO NOTHING;
	`, WashingMachineModelID, RefrigeratorModelID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (serial_number, model_id, status) VALUES
		    ('SN-W001', $1, 'in_stock'),
		    ('SN-W002', $1, 'in_stock'),
		    ('SN-W003', $1, 'in_stock'),
		    ('SN-R001', $2, 'in_stock')
		ON CONFLICT (serial_number) DO NOTHING;
	`, WashingMachineModelID, RefrigeratorModelID)
	if err != nil {
		return err
	}

	hash := seedPasswordHash()

	_, err = pool.Exec(ctx, `
		INSERT INTO companies (id, name) VALUES ($1, 'HASS Operations')
		ON CONFLICT (id) DO NOTHING;
	`, SeedCompanyID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO company_credentials (login_id, password_hash, company_id) VALUES ($1, $2, $3)
		ON CONFLICT (login_id) DO NOTHING;
	`, CompanyLoginID, hash, SeedCompanyID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO workers (id, name, specialty, phone) VALUES
		    ($1, 'Tanaka Jiro', 'washing_machine', '090-0000-0001')
		ON CONFLICT (id) DO NOTHING;
	`, SeedWorkerID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO worker_credentials (login_id, password_hash, worker_id) VALUES ($1, $2, $3)
		ON CONFLICT (login_id) DO NOTHING;
	`, WorkerLoginID, hash, SeedWorkerID)
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
		    AND tablename NOT IN ('goose_db_version')`)
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
