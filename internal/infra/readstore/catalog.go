package readstore

import (
	"context"

	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) FindModels(ctx context.Context) ([]*queries.ModelView, error) {
	query := `
		SELECT id, name, category, yearly_fee_cents, manufacturer,
			color, energy_rating, release_year
		FROM models
		ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list models", err)
	}
	defer rows.Close()

	var views []*queries.ModelView
	for rows.Next() {
		var (
			view         queries.ModelView
			color        pgtype.Text
			energyRating pgtype.Text
			releaseYear  pgtype.Int4
		)
		err := rows.Scan(
			&view.ID, &view.Name, &view.Category, &view.YearlyFeeCents,
			&view.Manufacturer, &color, &energyRating, &releaseYear,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan model row", err)
		}
		view.Color = pgconv.StringPtrFromPgtype(color)
		view.EnergyRating = pgconv.StringPtrFromPgtype(energyRating)
		if releaseYear.Valid {
			year := releaseYear.Int32
			view.ReleaseYear = &year
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate models", err)
	}

	return views, nil
}

func (r *CatalogReadStore) FindProducts(ctx context.Context) ([]*queries.ProductView, error) {
	query := `
		SELECT serial_number, model_id, status
		FROM products
		ORDER BY serial_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		var view queries.ProductView
		if err := rows.Scan(&view.SerialNumber, &view.ModelID, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	return views, nil
}

func (r *CatalogReadStore) FindProductBySerial(ctx context.Context, serialNumber string) (*queries.ProductView, error) {
	query := `
		SELECT serial_number, model_id, status
		FROM products
		WHERE serial_number = $1`

	var view queries.ProductView
	err := r.db.QueryRow(ctx, query, serialNumber).Scan(&view.SerialNumber, &view.ModelID, &view.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	return &view, nil
}

func (r *CatalogReadStore) AggregateStock(ctx context.Context) ([]*queries.StockSummaryView, error) {
	query := `
		SELECT m.id, m.name, m.category,
			COUNT(p.serial_number) FILTER (WHERE p.status = 'in_stock'),
			COUNT(p.serial_number) FILTER (WHERE p.status <> 'in_stock')
		FROM models m
		LEFT JOIN products p ON p.model_id = m.id
		GROUP BY m.id, m.name, m.category
		ORDER BY m.category, m.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate stock", err)
	}
	defer rows.Close()

	var views []*queries.StockSummaryView
	for rows.Next() {
		var view queries.StockSummaryView
		err := rows.Scan(
			&view.ModelID, &view.ModelName, &view.Category,
			&view.StockCount, &view.SubscribedCount,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock summary row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stock summary", err)
	}

	return views, nil
}
