package readstore

import (
	"context"
	"time"

	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/queries"
	"hass-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db  db.DBTX
	uow shared.UnitOfWork
}

func NewRequestReadStore(dbtx db.DBTX, uow shared.UnitOfWork) *RequestReadStore {
	return &RequestReadStore{db: dbtx, uow: uow}
}

const requestColumns = `
	r.id, r.type, r.status, r.comment, r.created_at, r.edited_at, r.subscription_id`

func (r *RequestReadStore) FindAll(ctx context.Context) ([]*queries.RequestView, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	var views []*queries.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate requests", err)
	}

	return views, nil
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		WHERE r.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr("failed to find request by ID", err)
		}
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}

	return scanRequestView(rows)
}

func (r *RequestReadStore) FindPreferenceDates(ctx context.Context, requestID uuid.UUID) ([]*queries.PreferenceDateView, error) {
	query := `
		SELECT id, preferred_at, request_id
		FROM preference_dates
		WHERE request_id = $1
		ORDER BY preferred_at ASC`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list preference dates", err)
	}
	defer rows.Close()

	var views []*queries.PreferenceDateView
	for rows.Next() {
		var view queries.PreferenceDateView
		if err := rows.Scan(&view.ID, &view.PreferredAt, &view.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan preference date row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate preference dates", err)
	}

	return views, nil
}

func (r *RequestReadStore) FindVisit(ctx context.Context, requestID uuid.UUID) (*queries.VisitView, error) {
	query := `
		SELECT id, visit_at, created_at, worker_id, request_id
		FROM visits
		WHERE request_id = $1`

	var view queries.VisitView
	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&view.ID, &view.VisitAt, &view.CreatedAt, &view.WorkerID, &view.RequestID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("visit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find visit", err)
	}

	return &view, nil
}

// FindByCustomer loads the customer's request history and resolves the
// display date per row: the recorded visit date when one exists, otherwise
// the ascending preferred dates.
func (r *RequestReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.CustomerRequestView, error) {
	query := `
		SELECT ` + requestColumns + `,
			v.visit_at,
			ARRAY(
				SELECT pd.preferred_at FROM preference_dates pd
				WHERE pd.request_id = r.id
				ORDER BY pd.preferred_at ASC
			) AS preferred_dates
		FROM requests r
		JOIN subscriptions s ON s.id = r.subscription_id
		LEFT JOIN visits v ON v.request_id = r.id
		WHERE s.customer_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer requests", err)
	}
	defer rows.Close()

	var views []*queries.CustomerRequestView
	for rows.Next() {
		var (
			view      queries.CustomerRequestView
			comment   pgtype.Text
			editedAt  pgtype.Timestamptz
			visitAt   pgtype.Timestamptz
			preferred []time.Time
		)
		err := rows.Scan(
			&view.ID, &view.Type, &view.Status, &comment, &view.CreatedAt,
			&editedAt, &view.SubscriptionID, &visitAt, &preferred,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer request row", err)
		}
		view.Comment = pgconv.StringPtrFromPgtype(comment)
		view.EditedAt = pgconv.TimePtrFromPgtype(editedAt)
		view.VisitDate = resolveVisitDate(visitAt, preferred)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer requests", err)
	}

	return views, nil
}

func resolveVisitDate(visitAt pgtype.Timestamptz, preferred []time.Time) queries.VisitDateView {
	if visitAt.Valid {
		return queries.VisitDateView{
			Kind:      queries.VisitDateScheduled,
			Scheduled: pgconv.TimePtrFromPgtype(visitAt),
		}
	}
	return queries.VisitDateView{
		Kind:      queries.VisitDatePreferred,
		Preferred: preferred,
	}
}

func (r *RequestReadStore) CountByStatus(ctx context.Context) (*queries.RequestCountsView, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'scheduled')
		FROM requests`

	var view queries.RequestCountsView
	if err := r.db.QueryRow(ctx, query).Scan(&view.Pending, &view.Scheduled); err != nil {
		return nil, infra.WrapRepoErr("failed to count requests", err)
	}

	return &view, nil
}

// FindQualifiedWorkers resolves the request's unit down to its model
// category and lists workers whose specialty matches. Both statements run
// under one read-only transaction so the category and the worker list come
// from the same snapshot.
func (r *RequestReadStore) FindQualifiedWorkers(ctx context.Context, requestID uuid.UUID) ([]*queries.WorkerView, error) {
	var views []*queries.WorkerView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var category string
		err := dbtx.QueryRow(ctx, `
			SELECT m.category
			FROM requests r
			JOIN subscriptions s ON s.id = r.subscription_id
			JOIN products p ON p.serial_number = s.serial_number
			JOIN models m ON m.id = p.model_id
			WHERE r.id = $1`, requestID).Scan(&category)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("request not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to resolve request category", err)
		}

		rows, err := dbtx.Query(ctx, `
			SELECT id, name, specialty, phone
			FROM workers
			WHERE specialty = $1
			ORDER BY name ASC`, category)
		if err != nil {
			return infra.WrapRepoErr("failed to list qualified workers", err)
		}
		defer rows.Close()

		for rows.Next() {
			var view queries.WorkerView
			if err := rows.Scan(&view.ID, &view.Name, &view.Specialty, &view.Phone); err != nil {
				return infra.WrapRepoErr("failed to scan worker row", err)
			}
			views = append(views, &view)
		}
		if err := rows.Err(); err != nil {
			return infra.WrapRepoErr("failed to iterate workers", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

func scanRequestView(row rowScanner) (*queries.RequestView, error) {
	var (
		view     queries.RequestView
		comment  pgtype.Text
		editedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Type, &view.Status, &comment, &view.CreatedAt,
		&editedAt, &view.SubscriptionID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan request row", err)
	}
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.EditedAt = pgconv.TimePtrFromPgtype(editedAt)
	return &view, nil
}
