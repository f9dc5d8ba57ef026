package queries

import (
	"context"

	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	// ListActive returns subscriptions whose unit is reserved or installed,
	// newest first.
	ListActive(ctx context.Context) ([]*SubscriptionView, error)
	// ListExpiring is the company's live return worklist: expired
	// subscriptions with no return request yet, earliest expiry first.
	ListExpiring(ctx context.Context) ([]*SubscriptionView, error)
	// ListByCustomer returns the customer's subscriptions whose install
	// visit has completed.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*SubscriptionView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionReadStore interface {
	FindActive(ctx context.Context) ([]*SubscriptionView, error)
	FindExpiring(ctx context.Context) ([]*SubscriptionView, error)
	FindByCustomerWithCompletedInstall(ctx context.Context, customerID uuid.UUID) ([]*SubscriptionView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
}

func NewSubscriptionQueries(store SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store}
}

func (q *subscriptionQueriesImpl) ListActive(ctx context.Context) ([]*SubscriptionView, error) {
	return q.store.FindActive(ctx)
}

func (q *subscriptionQueriesImpl) ListExpiring(ctx context.Context) ([]*SubscriptionView, error) {
	return q.store.FindExpiring(ctx)
}

func (q *subscriptionQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*SubscriptionView, error) {
	return q.store.FindByCustomerWithCompletedInstall(ctx, customerID)
}

func (q *subscriptionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return view, nil
}
