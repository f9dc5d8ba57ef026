package commands

import (
	"context"

	"hass-backend/internal/domain/principal"
	reqdto "hass-backend/internal/handler/dto/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/pkg/jwt"
	"hass-backend/internal/pkg/password"
	"hass-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token       string
	PrincipalID uuid.UUID
	Role        principal.Role
}

type AuthCommands interface {
	Login(ctx context.Context, role principal.Role, req reqdto.LoginRequest) (*LoginResult, error)
	// SignupCustomer inserts the customer row and its credential row in one
	// transaction.
	SignupCustomer(ctx context.Context, req reqdto.SignupCustomerRequest) (uuid.UUID, error)
	IsLoginIDAvailable(ctx context.Context, loginID string) (bool, error)
}

type authUseCaseImpl struct {
	credStore shared.CredentialReadStore
	uow       shared.UnitOfWork
	jwtSvc    *jwt.Service
}

func NewAuthUseCase(credStore shared.CredentialReadStore, uow shared.UnitOfWork, jwtSvc *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		credStore: credStore,
		uow:       uow,
		jwtSvc:    jwtSvc,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, role principal.Role, req reqdto.LoginRequest) (*LoginResult, error) {
	cred, err := a.credStore.FindByLogin(ctx, role, req.LoginID)
	if err != nil {
		// an unknown login and a wrong password are indistinguishable to the caller
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to look up credentials")
	}

	if err := password.ComparePassword(cred.PasswordHash, req.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtSvc.GenerateToken(cred.PrincipalID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token:       token,
		PrincipalID: cred.PrincipalID,
		Role:        role,
	}, nil
}

func (a *authUseCaseImpl) SignupCustomer(ctx context.Context, req reqdto.SignupCustomerRequest) (uuid.UUID, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	var customerID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Customers().Create(ctx, shared.CreateCustomerParams{
			Name:            req.Name,
			MainPhone:       req.MainPhone,
			SubPhone:        req.SubPhone,
			StreetAddress:   req.StreetAddress,
			DetailedAddress: req.DetailedAddress,
			PostalCode:      req.PostalCode,
		})
		if err != nil {
			return err
		}

		if err := tx.Customers().CreateCredentials(ctx, req.LoginID, hash, id); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrLoginIDTaken
			}
			return err
		}

		customerID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return customerID, nil
}

func (a *authUseCaseImpl) IsLoginIDAvailable(ctx context.Context, loginID string) (bool, error) {
	taken, err := a.credStore.IsLoginIDTaken(ctx, loginID)
	if err != nil {
		return false, errs.Wrap(err, "failed to check login ID")
	}
	return !taken, nil
}
