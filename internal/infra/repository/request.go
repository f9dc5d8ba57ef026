package repository

import (
	"context"
	"time"

	"hass-backend/internal/domain/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	const insertRequest = `
		INSERT INTO requests (id, type, status, comment, created_at, edited_at, subscription_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, insertRequest,
		req.ID(),
		req.Type().String(),
		req.Status().String(),
		pgconv.StringPtrToPgtype(req.Comment()),
		req.CreatedAt(),
		pgconv.TimePtrToPgtype(req.EditedAt()),
		req.SubscriptionID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}

	const insertPref = `
		INSERT INTO preference_dates (id, preferred_at, request_id)
		VALUES ($1, $2, $3)`

	for _, pref := range req.PreferenceDates() {
		if _, err := r.db.Exec(ctx, insertPref, pref.ID, pref.PreferredAt, req.ID()); err != nil {
			return infra.WrapRepoErr("failed to create preference date", err)
		}
	}

	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	const query = `
		SELECT id, type, status, comment, created_at, edited_at, subscription_id
		FROM requests
		WHERE id = $1`

	var (
		reqID          uuid.UUID
		typ            string
		status         string
		comment        pgtype.Text
		createdAt      time.Time
		editedAt       pgtype.Timestamptz
		subscriptionID uuid.UUID
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&reqID, &typ, &status, &comment, &createdAt, &editedAt, &subscriptionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}

	reqType, err := request.ParseType(typ)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid request type in store", err)
	}
	reqStatus, err := request.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid request status in store", err)
	}

	prefs, err := r.preferenceDates(ctx, reqID)
	if err != nil {
		return nil, err
	}

	return request.Reconstruct(
		reqID,
		reqType,
		reqStatus,
		pgconv.StringPtrFromPgtype(comment),
		createdAt,
		pgconv.TimePtrFromPgtype(editedAt),
		subscriptionID,
		prefs,
	), nil
}

func (r *RequestRepository) preferenceDates(ctx context.Context, requestID uuid.UUID) ([]request.PreferenceDate, error) {
	const query = `
		SELECT id, preferred_at
		FROM preference_dates
		WHERE request_id = $1
		ORDER BY preferred_at ASC`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load preference dates", err)
	}
	defer rows.Close()

	var prefs []request.PreferenceDate
	for rows.Next() {
		var pref request.PreferenceDate
		if err := rows.Scan(&pref.ID, &pref.PreferredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan preference date", err)
		}
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate preference dates", err)
	}

	return prefs, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status request.Status, editedAt time.Time) error {
	const query = `UPDATE requests SET status = $2, edited_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String(), editedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}

	return nil
}

// DeleteWithPreferences removes children before the parent row so the
// foreign keys hold at every step.
func (r *RequestRepository) DeleteWithPreferences(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM preference_dates WHERE request_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete preference dates", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RequestRepository) HasReturnRequest(ctx context.Context, subscriptionID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM requests
			WHERE subscription_id = $1 AND type = 'return'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriptionID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check return request", err)
	}

	return exists, nil
}
