package commands

import (
	"context"
	"errors"
	"time"

	"hass-backend/internal/domain/product"
	"hass-backend/internal/domain/request"
	"hass-backend/internal/domain/visit"
	reqdto "hass-backend/internal/handler/dto/request"
	"hass-backend/internal/infra"
	"hass-backend/internal/pkg/clock"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptResult struct {
	VisitID   uuid.UUID
	VisitDate time.Time
}

type RequestCommands interface {
	CreateRepairRequest(ctx context.Context, customerID uuid.UUID, req reqdto.CreateRepairRequest) (uuid.UUID, error)
	// AcceptRequest schedules the visit: the explicit date when given,
	// otherwise the earliest preference date. Accepting an install request
	// also stamps the subscription's begin date.
	AcceptRequest(ctx context.Context, requestID, workerID uuid.UUID, req reqdto.AcceptRequestRequest) (*AcceptResult, error)
	// CompleteVisit closes the scheduled visit. Repairs record their detail,
	// installs move the unit to installed.
	CompleteVisit(ctx context.Context, requestID uuid.UUID, req reqdto.CompleteVisitRequest) error
	// CancelRequest withdraws a not-yet-visited request of the customer's
	// own subscription, clearing any scheduled visit. Cancelling an install
	// unwinds the whole subscription and releases the unit.
	CancelRequest(ctx context.Context, customerID, requestID uuid.UUID) error
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (r *requestUseCaseImpl) CreateRepairRequest(ctx context.Context, customerID uuid.UUID, req reqdto.CreateRepairRequest) (uuid.UUID, error) {
	now := r.clock.Now()

	var requestID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindByID(ctx, req.SubscriptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSubscriptionNotFound
			}
			return err
		}
		if sub.CustomerID() != customerID {
			return errs.ErrSubscriptionNotFound
		}

		repairReq, err := request.New(request.TypeRepair, req.SubscriptionID, req.Comment, req.PreferredDates, now)
		if err != nil {
			return errs.Mark(err, errs.ErrNoPreferenceDate)
		}
		if err := tx.Requests().Create(ctx, repairReq); err != nil {
			return err
		}

		requestID = repairReq.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return requestID, nil
}

func (r *requestUseCaseImpl) AcceptRequest(ctx context.Context, requestID, workerID uuid.UUID, req reqdto.AcceptRequestRequest) (*AcceptResult, error) {
	now := r.clock.Now()

	var result AcceptResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		srvReq, err := findRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		visitDate, err := srvReq.ResolveVisitDate(req.VisitDate)
		if err != nil {
			return errs.Mark(err, errs.ErrNoPreferenceDate)
		}

		if err := srvReq.Schedule(ctx, now); err != nil {
			return markTransitionErr(err)
		}

		v := visit.New(visitDate, workerID, requestID, now)
		if err := tx.Visits().Create(ctx, v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrVisitAlreadyScheduled
			}
			return err
		}

		// the install visit date is when the rental term starts running
		if srvReq.Type() == request.TypeInstall {
			sub, err := tx.Subscriptions().FindByID(ctx, srvReq.SubscriptionID())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrSubscriptionNotFound
				}
				return err
			}
			if err := sub.SetBeginDate(visitDate); err != nil {
				return errs.Mark(err, errs.ErrBeginDateAlreadySet)
			}
			if err := tx.Subscriptions().SetBeginDate(ctx, sub.ID(), visitDate); err != nil {
				return err
			}
		}

		if err := tx.Requests().UpdateStatus(ctx, requestID, srvReq.Status(), now); err != nil {
			return err
		}

		result = AcceptResult{VisitID: v.ID(), VisitDate: visitDate}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *requestUseCaseImpl) CompleteVisit(ctx context.Context, requestID uuid.UUID, req reqdto.CompleteVisitRequest) error {
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		srvReq, err := findRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		v, err := tx.Visits().FindByRequestID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrVisitNotFound
			}
			return err
		}

		if err := srvReq.Complete(ctx, now); err != nil {
			return markTransitionErr(err)
		}

		switch srvReq.Type() {
		case request.TypeRepair:
			detail, err := visit.NewRepairDetail(v.ID(), deref(req.ProblemDetail), deref(req.SolutionDetail))
			if err != nil {
				return err
			}
			if err := tx.Visits().CreateRepairDetail(ctx, detail); err != nil {
				return err
			}
		case request.TypeInstall:
			sub, err := tx.Subscriptions().FindByID(ctx, srvReq.SubscriptionID())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrSubscriptionNotFound
				}
				return err
			}
			if err := tx.Products().UpdateStatus(ctx, sub.SerialNumber(), product.StatusReserved, product.StatusInstalled); err != nil {
				return err
			}
		}

		return tx.Requests().UpdateStatus(ctx, requestID, srvReq.Status(), now)
	})
}

func (r *requestUseCaseImpl) CancelRequest(ctx context.Context, customerID, requestID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		srvReq, err := findRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		sub, err := tx.Subscriptions().FindByID(ctx, srvReq.SubscriptionID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSubscriptionNotFound
			}
			return err
		}
		// a request is only visible to the subscription's owner
		if sub.CustomerID() != customerID {
			return errs.ErrRequestNotFound
		}

		if err := srvReq.Cancellable(); err != nil {
			return errs.Mark(err, errs.ErrAlreadyVisited)
		}

		// a scheduled request already has a visit row referencing it
		if err := tx.Visits().DeleteByRequestID(ctx, requestID); err != nil {
			return err
		}

		if srvReq.Type() != request.TypeInstall {
			return tx.Requests().DeleteWithPreferences(ctx, requestID)
		}

		// cancelling an install unwinds everything created by Subscribe
		if err := tx.Products().UpdateStatus(ctx, sub.SerialNumber(), product.StatusReserved, product.StatusInStock); err != nil {
			return err
		}
		if err := tx.Requests().DeleteWithPreferences(ctx, requestID); err != nil {
			return err
		}
		return tx.Subscriptions().Delete(ctx, sub.ID())
	})
}

func findRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*request.Request, error) {
	srvReq, err := tx.Requests().FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	return srvReq, nil
}

func markTransitionErr(err error) error {
	var transitionErr *request.TransitionError
	if errors.As(err, &transitionErr) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
