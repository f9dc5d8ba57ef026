package repository

import (
	"context"
	"time"

	"hass-backend/internal/domain/subscription"
	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubscriptionRepository struct {
	db db.DBTX
}

func NewSubscriptionRepository(dbtx db.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: dbtx}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	const query = `
		INSERT INTO subscriptions (id, term_years, created_at, begin_date, customer_id, serial_number)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		sub.ID(),
		sub.TermYears(),
		sub.CreatedAt(),
		pgconv.TimePtrToPgtype(sub.BeginDate()),
		sub.CustomerID(),
		sub.SerialNumber(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create subscription", err)
	}

	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	const query = `
		SELECT id, term_years, created_at, begin_date, customer_id, serial_number
		FROM subscriptions
		WHERE id = $1`

	var (
		subID      uuid.UUID
		termYears  int
		createdAt  time.Time
		beginDate  pgtype.Timestamptz
		customerID uuid.UUID
		serial     string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&subID, &termYears, &createdAt, &beginDate, &customerID, &serial)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}

	return subscription.Reconstruct(subID, termYears, createdAt, pgconv.TimePtrFromPgtype(beginDate), customerID, serial), nil
}

func (r *SubscriptionRepository) UpdateTerm(ctx context.Context, id uuid.UUID, termYears int) error {
	const query = `UPDATE subscriptions SET term_years = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, termYears)
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription term", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SubscriptionRepository) SetBeginDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	const query = `UPDATE subscriptions SET begin_date = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, date)
	if err != nil {
		return infra.WrapRepoErr("failed to set subscription begin date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM subscriptions WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete subscription", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}

	return nil
}
