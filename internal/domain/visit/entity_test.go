//go:build unit

package visit_test

import (
	"testing"
	"time"

	"hass-backend/internal/domain/visit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	visitAt := now.AddDate(0, 0, 3)
	workerID, requestID := uuid.New(), uuid.New()

	v := visit.New(visitAt, workerID, requestID, now)

	assert.NotEqual(t, uuid.Nil, v.ID())
	assert.True(t, v.VisitAt().Equal(visitAt))
	assert.True(t, v.CreatedAt().Equal(now))
	assert.Equal(t, workerID, v.WorkerID())
	assert.Equal(t, requestID, v.RequestID())
}

func TestNewRepairDetail(t *testing.T) {
	visitID := uuid.New()

	t.Run("trims both fields", func(t *testing.T) {
		detail, err := visit.NewRepairDetail(visitID, "  compressor failure  ", "  replaced compressor  ")
		require.NoError(t, err)
		assert.Equal(t, "compressor failure", detail.ProblemDetail)
		assert.Equal(t, "replaced compressor", detail.SolutionDetail)
		assert.Equal(t, visitID, detail.VisitID)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		cases := []struct {
			name              string
			problem, solution string
		}{
			{name: "empty problem", problem: "", solution: "fixed"},
			{name: "empty solution", problem: "broken", solution: ""},
			{name: "whitespace only", problem: "   ", solution: "   "},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := visit.NewRepairDetail(visitID, tc.problem, tc.solution)
				assert.ErrorIs(t, err, visit.ErrEmptyRepairDetail)
			})
		}
	})
}
