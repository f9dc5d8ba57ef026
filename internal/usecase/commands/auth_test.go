//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hass-backend/internal/domain/principal"
	reqdto "hass-backend/internal/handler/dto/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/pkg/jwt"
	"hass-backend/internal/pkg/password"
	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/shared"
	sharedmock "hass-backend/tests/mock/shared"
)

func newJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	loginID := "customer01"
	plain := "correct horse battery"
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)
	principalID := uuid.New()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		credStore := sharedmock.NewMockCredentialReadStore(ctrl)
		credStore.EXPECT().
			FindByLogin(gomock.Any(), principal.RoleCustomer, loginID).
			Return(&shared.Credential{LoginID: loginID, PasswordHash: hash, PrincipalID: principalID}, nil)

		uc := commands.NewAuthUseCase(credStore, sharedmock.NewMockUnitOfWork(ctrl), newJWTService())
		result, err := uc.Login(context.Background(), principal.RoleCustomer, reqdto.LoginRequest{
			LoginID:  loginID,
			Password: plain,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, principalID, result.PrincipalID)
		assert.Equal(t, principal.RoleCustomer, result.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		credStore := sharedmock.NewMockCredentialReadStore(ctrl)
		credStore.EXPECT().
			FindByLogin(gomock.Any(), principal.RoleCustomer, loginID).
			Return(&shared.Credential{LoginID: loginID, PasswordHash: hash, PrincipalID: principalID}, nil)

		uc := commands.NewAuthUseCase(credStore, sharedmock.NewMockUnitOfWork(ctrl), newJWTService())
		_, err := uc.Login(context.Background(), principal.RoleCustomer, reqdto.LoginRequest{
			LoginID:  loginID,
			Password: "nope",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown login reads the same as a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		credStore := sharedmock.NewMockCredentialReadStore(ctrl)
		credStore.EXPECT().
			FindByLogin(gomock.Any(), principal.RoleWorker, "ghost").
			Return(nil, infra.WrapRepoErr("no rows", assert.AnError, infra.KindNotFound))

		uc := commands.NewAuthUseCase(credStore, sharedmock.NewMockUnitOfWork(ctrl), newJWTService())
		_, err := uc.Login(context.Background(), principal.RoleWorker, reqdto.LoginRequest{
			LoginID:  "ghost",
			Password: plain,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestSignupCustomer(t *testing.T) {
	signup := reqdto.SignupCustomerRequest{
		LoginID:       "newcustomer",
		Password:      "long enough secret",
		Name:          "Sato Hanako",
		MainPhone:     "080-0000-0000",
		StreetAddress: "1-2-3 Chiyoda",
	}

	t.Run("creates the customer and its credential in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		credStore := sharedmock.NewMockCredentialReadStore(ctrl)
		uow, m := newTxMocks(ctrl)

		newID := uuid.New()
		m.customers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params shared.CreateCustomerParams) (uuid.UUID, error) {
				assert.Equal(t, signup.Name, params.Name)
				assert.Equal(t, signup.MainPhone, params.MainPhone)
				return newID, nil
			})
		m.customers.EXPECT().
			CreateCredentials(gomock.Any(), signup.LoginID, gomock.Any(), newID).
			DoAndReturn(func(_ context.Context, _, hash string, _ uuid.UUID) error {
				// the stored hash must verify against the submitted password
				return password.ComparePassword(hash, signup.Password)
			})

		uc := commands.NewAuthUseCase(credStore, uow, newJWTService())
		id, err := uc.SignupCustomer(context.Background(), signup)
		require.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("duplicate login id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		credStore := sharedmock.NewMockCredentialReadStore(ctrl)
		uow, m := newTxMocks(ctrl)

		newID := uuid.New()
		m.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)
		m.customers.EXPECT().
			CreateCredentials(gomock.Any(), signup.LoginID, gomock.Any(), newID).
			Return(infra.WrapRepoErr("duplicate", assert.AnError, infra.KindDuplicateKey))

		uc := commands.NewAuthUseCase(credStore, uow, newJWTService())
		_, err := uc.SignupCustomer(context.Background(), signup)
		assert.ErrorIs(t, err, errs.ErrLoginIDTaken)
	})
}

func TestIsLoginIDAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	credStore := sharedmock.NewMockCredentialReadStore(ctrl)
	credStore.EXPECT().IsLoginIDTaken(gomock.Any(), "taken").Return(true, nil)
	credStore.EXPECT().IsLoginIDTaken(gomock.Any(), "free").Return(false, nil)

	uc := commands.NewAuthUseCase(credStore, sharedmock.NewMockUnitOfWork(ctrl), newJWTService())

	available, err := uc.IsLoginIDAvailable(context.Background(), "taken")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = uc.IsLoginIDAvailable(context.Background(), "free")
	require.NoError(t, err)
	assert.True(t, available)
}
