package repository

import (
	"context"
	"errors"
	"time"

	"hass-backend/internal/domain/visit"
	"hass-backend/internal/infra"
	"hass-backend/internal/infra/db"
	"hass-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type VisitRepository struct {
	db db.DBTX
}

func NewVisitRepository(dbtx db.DBTX) *VisitRepository {
	return &VisitRepository{db: dbtx}
}

func (r *VisitRepository) Create(ctx context.Context, v *visit.Visit) error {
	const query = `
		INSERT INTO visits (id, visit_at, created_at, worker_id, request_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, v.ID(), v.VisitAt(), v.CreatedAt(), v.WorkerID(), v.RequestID())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("visit already exists for request", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create visit", err)
	}

	return nil
}

func (r *VisitRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*visit.Visit, error) {
	const query = `
		SELECT id, visit_at, created_at, worker_id, request_id
		FROM visits
		WHERE request_id = $1`

	var (
		id        uuid.UUID
		visitAt   time.Time
		createdAt time.Time
		workerID  uuid.UUID
		reqID     uuid.UUID
	)
	err := r.db.QueryRow(ctx, query, requestID).Scan(&id, &visitAt, &createdAt, &workerID, &reqID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("visit not found for request", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find visit", err)
	}

	return visit.Reconstruct(id, visitAt, createdAt, workerID, reqID), nil
}

// DeleteByRequestID clears the scheduled visit, if any, so the request row
// itself can be deleted without tripping the foreign key.
func (r *VisitRepository) DeleteByRequestID(ctx context.Context, requestID uuid.UUID) error {
	const query = `DELETE FROM visits WHERE request_id = $1`

	if _, err := r.db.Exec(ctx, query, requestID); err != nil {
		return infra.WrapRepoErr("failed to delete visit", err)
	}

	return nil
}

func (r *VisitRepository) CreateRepairDetail(ctx context.Context, detail *visit.RepairDetail) error {
	const query = `
		INSERT INTO visit_repairs (visit_id, problem_detail, solution_detail)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, detail.VisitID, detail.ProblemDetail, detail.SolutionDetail)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("repair detail already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create repair detail", err)
	}

	return nil
}
