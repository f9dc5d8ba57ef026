package repository

import (
	"context"

	"hass-backend/internal/domain/product"
	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

// ReserveUnit claims one in-stock unit of the model. SKIP LOCKED makes
// concurrent reservations pick different rows; the UPDATE and the pick are
// one statement so no window exists between them.
func (r *ProductRepository) ReserveUnit(ctx context.Context, modelID uuid.UUID) (string, error) {
	const query = `
		UPDATE products SET status = 'reserved'
		WHERE serial_number = (
			SELECT serial_number FROM products
			WHERE model_id = $1 AND status = 'in_stock'
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING serial_number`

	var serial string
	if err := r.db.QueryRow(ctx, query, modelID).Scan(&serial); err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("no unit in stock for model", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to reserve product unit", err)
	}

	return serial, nil
}

func (r *ProductRepository) FindBySerial(ctx context.Context, serialNumber string) (*product.Product, error) {
	const query = `
		SELECT serial_number, model_id, status
		FROM products
		WHERE serial_number = $1`

	var (
		serial  string
		modelID uuid.UUID
		status  string
	)
	if err := r.db.QueryRow(ctx, query, serialNumber).Scan(&serial, &modelID, &status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	st, err := product.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid product status in store", err)
	}

	return product.Reconstruct(serial, modelID, st), nil
}

// UpdateStatus performs a guarded transition; the WHERE clause carries the
// expected source status so a concurrent writer cannot be overwritten.
func (r *ProductRepository) UpdateStatus(ctx context.Context, serialNumber string, from, to product.Status) error {
	const query = `
		UPDATE products SET status = $3
		WHERE serial_number = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, serialNumber, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update product status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not in expected status", nil, infra.KindConflict)
	}

	return nil
}
