package readstore

import (
	"context"
	"time"

	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionColumns = `
	s.id, s.term_years, s.created_at, s.begin_date,
	s.begin_date + make_interval(months => s.term_years * 12) AS expires_at,
	s.customer_id, s.serial_number`

type SubscriptionReadStore struct {
	db db.DBTX
}

func NewSubscriptionReadStore(dbtx db.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: dbtx}
}

func (r *SubscriptionReadStore) FindActive(ctx context.Context) ([]*queries.SubscriptionView, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		JOIN products p ON p.serial_number = s.serial_number
		WHERE p.status IN ('reserved', 'installed')
		ORDER BY s.created_at DESC`

	return r.scanViews(ctx, query)
}

func (r *SubscriptionReadStore) FindExpiring(ctx context.Context) ([]*queries.SubscriptionView, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		WHERE s.begin_date IS NOT NULL
		  AND s.begin_date + make_interval(months => s.term_years * 12) < now()
		  AND NOT EXISTS (
			SELECT 1 FROM requests r
			WHERE r.subscription_id = s.id AND r.type = 'return'
		  )
		ORDER BY expires_at ASC`

	return r.scanViews(ctx, query)
}

func (r *SubscriptionReadStore) FindByCustomerWithCompletedInstall(ctx context.Context, customerID uuid.UUID) ([]*queries.SubscriptionView, error) {
	query := `
		SELECT DISTINCT ` + subscriptionColumns + `
		FROM subscriptions s
		JOIN requests r ON r.subscription_id = s.id
		WHERE s.customer_id = $1
		  AND r.type = 'install'
		  AND r.status = 'visited'
		ORDER BY s.created_at DESC`

	return r.scanViews(ctx, query, customerID)
}

func (r *SubscriptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubscriptionView, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		WHERE s.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find subscription by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find subscription by ID", err)
		}
		return nil, infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return scanSubscriptionView(rows)
}

func (r *SubscriptionReadStore) scanViews(ctx context.Context, query string, args ...any) ([]*queries.SubscriptionView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}
	defer rows.Close()

	var views []*queries.SubscriptionView
	for rows.Next() {
		view, err := scanSubscriptionView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscriptions", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscriptionView(row rowScanner) (*queries.SubscriptionView, error) {
	var (
		id         uuid.UUID
		termYears  int
		createdAt  time.Time
		beginDate  pgtype.Timestamptz
		expiresAt  pgtype.Timestamptz
		customerID uuid.UUID
		serial     string
	)
	if err := row.Scan(&id, &termYears, &createdAt, &beginDate, &expiresAt, &customerID, &serial); err != nil {
		return nil, infra.WrapRepoErr("failed to scan subscription row", err)
	}

	return &queries.SubscriptionView{
		ID:           id,
		TermYears:    termYears,
		CreatedAt:    createdAt,
		BeginDate:    pgconv.TimePtrFromPgtype(beginDate),
		ExpiresAt:    pgconv.TimePtrFromPgtype(expiresAt),
		CustomerID:   customerID,
		SerialNumber: serial,
	}, nil
}
