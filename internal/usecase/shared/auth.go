package shared

import (
	"context"

	"hass-backend/internal/domain/principal"

	"github.com/google/uuid"
)

// Credential is a login row joined to its owning principal.
type Credential struct {
	LoginID      string
	PasswordHash string
	PrincipalID  uuid.UUID
}

type CredentialReadStore interface {
	FindByLogin(ctx context.Context, role principal.Role, loginID string) (*Credential, error)
	// IsLoginIDTaken reports whether the login ID exists for any role.
	IsLoginIDTaken(ctx context.Context, loginID string) (bool, error)
}
