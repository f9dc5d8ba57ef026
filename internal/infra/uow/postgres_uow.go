package uow

import (
	"context"
	"errors"
	"log/slog"

	"hass-backend/internal/infra/db"
	"hass-backend/internal/infra/repository"
	"hass-backend/internal/pkg/errs"
	"hass-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Within runs fn under one read-write transaction. Serializable keeps the
// inventory/subscription/request updates atomic as a group; a conflict is
// mapped to ErrTransactionConflict and handed to the caller, never retried
// here.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// WithinReadOnly gives multi-table reads a consistent snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return classifyStoreErr(errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return classifyStoreErr(err)
	}

	return classifyStoreErr(pgxTx.Commit(ctx))
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return classifyStoreErr(errs.Mark(err, errTransactionBegin))
	}

	tx := &pgTx{dbtx: pgxTx}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}

	return classifyStoreErr(err)
}

// classifyStoreErr marks store-level failures so the caller can tell a
// retryable conflict from a terminal business error.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return errs.Mark(err, errs.ErrTransactionConflict)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return err
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	productRepo      shared.ProductRepository
	subscriptionRepo shared.SubscriptionRepository
	requestRepo      shared.RequestRepository
	visitRepo        shared.VisitRepository
	customerRepo     shared.CustomerRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.dbtx)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Requests() shared.RequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRequestRepository(t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Visits() shared.VisitRepository {
	if t.visitRepo == nil {
		t.visitRepo = repository.NewVisitRepository(t.dbtx)
	}
	return t.visitRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.dbtx)
	}
	return t.customerRepo
}
