package readstore

import (
	"context"
	"fmt"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"
	"hass-backend/internal/usecase/shared"
)

type CredentialReadStore struct {
	db db.DBTX
}

func NewCredentialReadStore(dbtx db.DBTX) *CredentialReadStore {
	return &CredentialReadStore{db: dbtx}
}

func credentialTable(role principal.Role) (table, idColumn string, err error) {
	switch role {
	case principal.RoleCompany:
		return "company_credentials", "company_id", nil
	case principal.RoleCustomer:
		return "customer_credentials", "customer_id", nil
	case principal.RoleWorker:
		return "worker_credentials", "worker_id", nil
	default:
		return "", "", fmt.Errorf("unknown role: %s", role)
	}
}

func (r *CredentialReadStore) FindByLogin(ctx context.Context, role principal.Role, loginID string) (*shared.Credential, error) {
	table, idColumn, err := credentialTable(role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve credential table", err)
	}

	query := fmt.Sprintf(
		`SELECT login_id, password_hash, %s FROM %s WHERE login_id = $1`,
		idColumn, table,
	)

	var cred shared.Credential
	if err := r.db.QueryRow(ctx, query, loginID).Scan(&cred.LoginID, &cred.PasswordHash, &cred.PrincipalID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credential not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find credential", err)
	}

	return &cred, nil
}

func (r *CredentialReadStore) IsLoginIDTaken(ctx context.Context, loginID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM customer_credentials WHERE login_id = $1)
			OR EXISTS (SELECT 1 FROM company_credentials WHERE login_id = $1)
			OR EXISTS (SELECT 1 FROM worker_credentials WHERE login_id = $1)`

	var taken bool
	if err := r.db.QueryRow(ctx, query, loginID).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check login ID", err)
	}

	return taken, nil
}
