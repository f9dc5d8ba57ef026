package readstore

import (
	"context"

	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	query := `
		SELECT id, name, main_phone, sub_phone, street_address, detailed_address
		FROM customers
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var views []*queries.CustomerView
	for rows.Next() {
		var (
			view            queries.CustomerView
			subPhone        pgtype.Text
			detailedAddress pgtype.Text
		)
		err := rows.Scan(
			&view.ID, &view.Name, &view.MainPhone, &subPhone,
			&view.StreetAddress, &detailedAddress,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		view.SubPhone = pgconv.StringPtrFromPgtype(subPhone)
		view.DetailedAddress = pgconv.StringPtrFromPgtype(detailedAddress)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}

	return views, nil
}
