package commands

import (
	"context"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/domain/request"
	"hass-backend/internal/domain/subscription"
	reqdto "hass-backend/internal/handler/dto/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/clock"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscribeResult struct {
	SubscriptionID uuid.UUID
	RequestID      uuid.UUID
	SerialNumber   string
}

type SubscriptionCommands interface {
	// Subscribe reserves a unit of the model, opens the subscription and
	// files the install request with its preference dates, all in one
	// transaction.
	Subscribe(ctx context.Context, customerID uuid.UUID, req reqdto.SubscribeRequest) (*SubscribeResult, error)
	Extend(ctx context.Context, subscriptionID uuid.UUID, addYears int) error
	// CreateReturnRequest files the return. Customers may only return their
	// own subscription; the company files returns off the expiring list for
	// any customer.
	CreateReturnRequest(ctx context.Context, actorID uuid.UUID, actorRole principal.Role, subscriptionID uuid.UUID, req reqdto.CreateReturnRequest) (uuid.UUID, error)
}

type subscriptionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, clk clock.Clock) SubscriptionCommands {
	return &subscriptionUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (s *subscriptionUseCaseImpl) Subscribe(ctx context.Context, customerID uuid.UUID, req reqdto.SubscribeRequest) (*SubscribeResult, error) {
	now := s.clock.Now()

	var result SubscribeResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		serial, err := tx.Products().ReserveUnit(ctx, req.ModelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOutOfStock
			}
			return err
		}

		sub, err := subscription.New(customerID, serial, req.TermYears, now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidTerm)
		}
		if err := tx.Subscriptions().Create(ctx, sub); err != nil {
			return err
		}

		installReq, err := request.New(request.TypeInstall, sub.ID(), req.Comment, req.PreferredDates, now)
		if err != nil {
			return errs.Mark(err, errs.ErrNoPreferenceDate)
		}
		if err := tx.Requests().Create(ctx, installReq); err != nil {
			return err
		}

		result = SubscribeResult{
			SubscriptionID: sub.ID(),
			RequestID:      installReq.ID(),
			SerialNumber:   serial,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *subscriptionUseCaseImpl) Extend(ctx context.Context, subscriptionID uuid.UUID, addYears int) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindByID(ctx, subscriptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSubscriptionNotFound
			}
			return err
		}

		if err := sub.Extend(addYears); err != nil {
			return errs.Mark(err, errs.ErrInvalidTerm)
		}

		return tx.Subscriptions().UpdateTerm(ctx, subscriptionID, sub.TermYears())
	})
}

func (s *subscriptionUseCaseImpl) CreateReturnRequest(ctx context.Context, actorID uuid.UUID, actorRole principal.Role, subscriptionID uuid.UUID, req reqdto.CreateReturnRequest) (uuid.UUID, error) {
	now := s.clock.Now()

	var requestID uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindByID(ctx, subscriptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSubscriptionNotFound
			}
			return err
		}
		// a subscription is only visible to its owner, except to the company
		if actorRole != principal.RoleCompany && sub.CustomerID() != actorID {
			return errs.ErrSubscriptionNotFound
		}

		returnReq, err := request.New(request.TypeReturn, subscriptionID, req.Comment, req.PreferredDates, now)
		if err != nil {
			return errs.Mark(err, errs.ErrNoPreferenceDate)
		}
		if err := tx.Requests().Create(ctx, returnReq); err != nil {
			return err
		}

		requestID = returnReq.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return requestID, nil
}
