package visit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyRepairDetail = errors.New("repair detail must not be empty")

// Visit is the finalized, worker-scheduled site visit fulfilling a request.
// At most one exists per request.
type Visit struct {
	id        uuid.UUID
	visitAt   time.Time
	createdAt time.Time
	workerID  uuid.UUID
	requestID uuid.UUID
}

func New(visitAt time.Time, workerID, requestID uuid.UUID, now time.Time) *Visit {
	return &Visit{
		id:        uuid.New(),
		visitAt:   visitAt,
		createdAt: now,
		workerID:  workerID,
		requestID: requestID,
	}
}

func Reconstruct(id uuid.UUID, visitAt, createdAt time.Time, workerID, requestID uuid.UUID) *Visit {
	return &Visit{
		id:        id,
		visitAt:   visitAt,
		createdAt: createdAt,
		workerID:  workerID,
		requestID: requestID,
	}
}

func (v *Visit) ID() uuid.UUID        { return v.id }
func (v *Visit) VisitAt() time.Time   { return v.visitAt }
func (v *Visit) CreatedAt() time.Time { return v.createdAt }
func (v *Visit) WorkerID() uuid.UUID  { return v.workerID }
func (v *Visit) RequestID() uuid.UUID { return v.requestID }

// RepairDetail is attached only when the owning request is a repair and the
// visit has been completed.
type RepairDetail struct {
	VisitID        uuid.UUID
	ProblemDetail  string
	SolutionDetail string
}

func NewRepairDetail(visitID uuid.UUID, problem, solution string) (*RepairDetail, error) {
	problem = strings.TrimSpace(problem)
	solution = strings.TrimSpace(solution)
	if problem == "" || solution == "" {
		return nil, ErrEmptyRepairDetail
	}
	return &RepairDetail{
		VisitID:        visitID,
		ProblemDetail:  problem,
		SolutionDetail: solution,
	}, nil
}
