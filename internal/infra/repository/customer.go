package repository

import (
	"context"
	"errors"

	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

func (r *CustomerRepository) Create(ctx context.Context, params shared.CreateCustomerParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO customers (name, main_phone, sub_phone, street_address, detailed_address, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		params.Name,
		params.MainPhone,
		pgconv.StringPtrToPgtype(params.SubPhone),
		params.StreetAddress,
		pgconv.StringPtrToPgtype(params.DetailedAddress),
		pgconv.StringPtrToPgtype(params.PostalCode),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}

	return id, nil
}

func (r *CustomerRepository) CreateCredentials(ctx context.Context, loginID, passwordHash string, customerID uuid.UUID) error {
	const query = `
		INSERT INTO customer_credentials (login_id, password_hash, customer_id)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, loginID, passwordHash, customerID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("login id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create customer credentials", err)
	}

	return nil
}
