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
	"hass-backend/internal/domain/subscription"
	reqdto "hass-backend/internal/handler/dto/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/clock"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/shared"
	sharedmock "hass-backend/tests/mock/shared"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type txMocks struct {
	tx            *sharedmock.MockTx
	products      *sharedmock.MockProductRepository
	subscriptions *sharedmock.MockSubscriptionRepository
	requests      *sharedmock.MockRequestRepository
	visits        *sharedmock.MockVisitRepository
	customers     *sharedmock.MockCustomerRepository
}

// newTxMocks wires a MockTx whose accessors hand back the repo mocks, and a
// MockUnitOfWork whose Within simply runs the callback against that tx.
func newTxMocks(ctrl *gomock.Controller) (*sharedmock.MockUnitOfWork, *txMocks) {
	m := &txMocks{
		tx:            sharedmock.NewMockTx(ctrl),
		products:      sharedmock.NewMockProductRepository(ctrl),
		subscriptions: sharedmock.NewMockSubscriptionRepository(ctrl),
		requests:      sharedmock.NewMockRequestRepository(ctrl),
		visits:        sharedmock.NewMockVisitRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
	}
	m.tx.EXPECT().Products().Return(m.products).AnyTimes()
	m.tx.EXPECT().Subscriptions().Return(m.subscriptions).AnyTimes()
	m.tx.EXPECT().Requests().Return(m.requests).AnyTimes()
	m.tx.EXPECT().Visits().Return(m.visits).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).
		AnyTimes()
	return uow, m
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", assert.AnError, infra.KindNotFound)
}

func TestSubscribe(t *testing.T) {
	customerID := uuid.New()
	modelID := uuid.New()
	prefs := []time.Time{testNow.AddDate(0, 0, 7), testNow.AddDate(0, 0, 3)}

	t.Run("reserves a unit and files the install request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		m.products.EXPECT().ReserveUnit(gomock.Any(), modelID).Return("SN-001", nil)

		var createdSub *subscription.Subscription
		m.subscriptions.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *subscription.Subscription) error {
				createdSub = sub
				return nil
			})
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		result, err := uc.Subscribe(context.Background(), customerID, reqdto.SubscribeRequest{
			ModelID:        modelID,
			TermYears:      2,
			PreferredDates: prefs,
		})
		require.NoError(t, err)
		assert.Equal(t, "SN-001", result.SerialNumber)

		require.NotNil(t, createdSub)
		assert.Equal(t, result.SubscriptionID, createdSub.ID())
		assert.Equal(t, customerID, createdSub.CustomerID())
		assert.Equal(t, 2, createdSub.TermYears())
		assert.Nil(t, createdSub.BeginDate())
	})

	t.Run("out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		m.products.EXPECT().ReserveUnit(gomock.Any(), modelID).Return("", notFoundErr())

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		_, err := uc.Subscribe(context.Background(), customerID, reqdto.SubscribeRequest{
			ModelID:        modelID,
			TermYears:      1,
			PreferredDates: prefs,
		})
		assert.ErrorIs(t, err, errs.ErrOutOfStock)
	})

	t.Run("non-positive term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		m.products.EXPECT().ReserveUnit(gomock.Any(), modelID).Return("SN-001", nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		_, err := uc.Subscribe(context.Background(), customerID, reqdto.SubscribeRequest{
			ModelID:        modelID,
			TermYears:      0,
			PreferredDates: prefs,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidTerm)
	})

	t.Run("no preference dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		m.products.EXPECT().ReserveUnit(gomock.Any(), modelID).Return("SN-001", nil)
		m.subscriptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		_, err := uc.Subscribe(context.Background(), customerID, reqdto.SubscribeRequest{
			ModelID:   modelID,
			TermYears: 1,
		})
		assert.ErrorIs(t, err, errs.ErrNoPreferenceDate)
	})
}

func TestExtend(t *testing.T) {
	subID := uuid.New()
	customerID := uuid.New()

	t.Run("adds years to the term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		sub := subscription.Reconstruct(subID, 2, testNow, nil, customerID, "SN-001")
		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(sub, nil)
		m.subscriptions.EXPECT().UpdateTerm(gomock.Any(), subID, 3).Return(nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		require.NoError(t, uc.Extend(context.Background(), subID, 1))
	})

	t.Run("unknown subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(nil, notFoundErr())

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		assert.ErrorIs(t, uc.Extend(context.Background(), subID, 1), errs.ErrSubscriptionNotFound)
	})

	t.Run("shrinking below one year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		sub := subscription.Reconstruct(subID, 2, testNow, nil, customerID, "SN-001")
		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(sub, nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		assert.ErrorIs(t, uc.Extend(context.Background(), subID, -2), errs.ErrInvalidTerm)
	})
}

func TestCreateReturnRequest(t *testing.T) {
	subID := uuid.New()
	customerID := uuid.New()
	prefs := []time.Time{testNow.AddDate(0, 0, 14)}

	t.Run("files the return request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		sub := subscription.Reconstruct(subID, 2, testNow, nil, customerID, "SN-001")
		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(sub, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		id, err := uc.CreateReturnRequest(context.Background(), customerID, principal.RoleCustomer, subID, reqdto.CreateReturnRequest{
			PreferredDates: prefs,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("someone else's subscription reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		sub := subscription.Reconstruct(subID, 2, testNow, nil, uuid.New(), "SN-001")
		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(sub, nil)

		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		_, err := uc.CreateReturnRequest(context.Background(), customerID, principal.RoleCustomer, subID, reqdto.CreateReturnRequest{
			PreferredDates: prefs,
		})
		assert.ErrorIs(t, err, errs.ErrSubscriptionNotFound)
	})

	t.Run("the company files returns for any customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, m := newTxMocks(ctrl)

		sub := subscription.Reconstruct(subID, 2, testNow, nil, uuid.New(), "SN-001")
		m.subscriptions.EXPECT().FindByID(gomock.Any(), subID).Return(sub, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		companyID := uuid.New()
		uc := commands.NewSubscriptionUseCase(uow, clock.NewMockClock(testNow))
		id, err := uc.CreateReturnRequest(context.Background(), companyID, principal.RoleCompany, subID, reqdto.CreateReturnRequest{
			PreferredDates: prefs,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})
}
