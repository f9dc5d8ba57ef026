package queries

import (
	"context"

	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestQueries interface {
	// ListAll is the worker worklist, newest first.
	ListAll(ctx context.Context) ([]*RequestView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListPreferenceDates(ctx context.Context, requestID uuid.UUID) ([]*PreferenceDateView, error)
	GetVisit(ctx context.Context, requestID uuid.UUID) (*VisitView, error)
	// ListByCustomer returns the request history with the display visit date
	// resolved once per row.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CustomerRequestView, error)
	Counts(ctx context.Context) (*RequestCountsView, error)
	// QualifiedWorkers resolves request -> subscription -> product -> model
	// category and lists workers with the matching specialty.
	QualifiedWorkers(ctx context.Context, requestID uuid.UUID) ([]*WorkerView, error)
}

type RequestReadStore interface {
	FindAll(ctx context.Context) ([]*RequestView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindPreferenceDates(ctx context.Context, requestID uuid.UUID) ([]*PreferenceDateView, error)
	FindVisit(ctx context.Context, requestID uuid.UUID) (*VisitView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CustomerRequestView, error)
	CountByStatus(ctx context.Context) (*RequestCountsView, error)
	FindQualifiedWorkers(ctx context.Context, requestID uuid.UUID) ([]*WorkerView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) ListAll(ctx context.Context) ([]*RequestView, error) {
	return q.store.FindAll(ctx)
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListPreferenceDates(ctx context.Context, requestID uuid.UUID) ([]*PreferenceDateView, error) {
	return q.store.FindPreferenceDates(ctx, requestID)
}

func (q *requestQueriesImpl) GetVisit(ctx context.Context, requestID uuid.UUID) (*VisitView, error) {
	view, err := q.store.FindVisit(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVisitNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*CustomerRequestView, error) {
	return q.store.FindByCustomer(ctx, customerID)
}

func (q *requestQueriesImpl) Counts(ctx context.Context) (*RequestCountsView, error) {
	return q.store.CountByStatus(ctx)
}

func (q *requestQueriesImpl) QualifiedWorkers(ctx context.Context, requestID uuid.UUID) ([]*WorkerView, error) {
	workers, err := q.store.FindQualifiedWorkers(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	return workers, nil
}
