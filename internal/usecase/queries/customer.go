package queries

import "context"

type CustomerQueries interface {
	ListCustomers(ctx context.Context) ([]*CustomerView, error)
}

type CustomerReadStore interface {
	FindAll(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context) ([]*CustomerView, error) {
	return q.store.FindAll(ctx)
}
