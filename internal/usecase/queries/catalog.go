package queries

import (
	"context"

	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/errs"
)

type CatalogQueries interface {
	ListModels(ctx context.Context) ([]*ModelView, error)
	ListProducts(ctx context.Context) ([]*ProductView, error)
	GetProduct(ctx context.Context, serialNumber string) (*ProductView, error)
	// StockSummary aggregates in-stock vs subscribed unit counts per model.
	StockSummary(ctx context.Context) ([]*StockSummaryView, error)
}

type CatalogReadStore interface {
	FindModels(ctx context.Context) ([]*ModelView, error)
	FindProducts(ctx context.Context) ([]*ProductView, error)
	FindProductBySerial(ctx context.Context, serialNumber string) (*ProductView, error)
	AggregateStock(ctx context.Context) ([]*StockSummaryView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListModels(ctx context.Context) ([]*ModelView, error) {
	return q.store.FindModels(ctx)
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*ProductView, error) {
	return q.store.FindProducts(ctx)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, serialNumber string) (*ProductView, error) {
	view, err := q.store.FindProductBySerial(ctx, serialNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) StockSummary(ctx context.Context) ([]*StockSummaryView, error) {
	return q.store.AggregateStock(ctx)
}
