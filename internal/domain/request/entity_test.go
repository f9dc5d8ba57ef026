//go:build unit

package request_test

import (
	"context"
	"testing"
	"time"

	"hass-backend/internal/domain/request"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func datesAfter(base time.Time, days ...int) []time.Time {
	out := make([]time.Time, len(days))
	for i, d := range days {
		out[i] = base.AddDate(0, 0, d)
	}
	return out
}

func mustNewRequest(t *testing.T, typ request.Type, days ...int) *request.Request {
	t.Helper()
	req, err := request.New(typ, uuid.New(), nil, datesAfter(testNow, days...), testNow)
	require.NoError(t, err)
	return req
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		comment := "  door seal is leaking  "
		req, err := request.New(request.TypeRepair, uuid.New(), &comment, datesAfter(testNow, 3, 5), testNow)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, request.TypeRepair, req.Type())
		assert.Equal(t, request.StatusPending, req.Status())
		require.NotNil(t, req.Comment())
		assert.Equal(t, "door seal is leaking", *req.Comment())
		assert.Nil(t, req.EditedAt())
		assert.Len(t, req.PreferenceDates(), 2)
	})

	t.Run("at least one preference date is required", func(t *testing.T) {
		_, err := request.New(request.TypeInstall, uuid.New(), nil, nil, testNow)
		assert.ErrorIs(t, err, request.ErrNoPreferenceDate)
	})

	t.Run("blank comment is dropped", func(t *testing.T) {
		comment := "   "
		req, err := request.New(request.TypeInstall, uuid.New(), &comment, datesAfter(testNow, 1), testNow)
		require.NoError(t, err)
		assert.Nil(t, req.Comment())
	})
}

func TestResolveVisitDate(t *testing.T) {
	t.Run("explicit date wins", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeInstall, 3, 5)
		explicit := testNow.AddDate(0, 0, 10)

		date, err := req.ResolveVisitDate(&explicit)
		require.NoError(t, err)
		assert.True(t, date.Equal(explicit))
	})

	t.Run("earliest preference date otherwise", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeInstall, 7, 2, 5)

		date, err := req.ResolveVisitDate(nil)
		require.NoError(t, err)
		assert.True(t, date.Equal(testNow.AddDate(0, 0, 2)))
	})
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("pending schedules then completes", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeInstall, 3)

		require.NoError(t, req.Schedule(ctx, testNow))
		assert.Equal(t, request.StatusScheduled, req.Status())
		require.NotNil(t, req.EditedAt())

		require.NoError(t, req.Complete(ctx, testNow.Add(time.Hour)))
		assert.Equal(t, request.StatusVisited, req.Status())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeRepair, 3)

		err := req.Complete(ctx, testNow)
		var transitionErr *request.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, request.EventComplete, transitionErr.Event)
		assert.Equal(t, request.StatusPending, req.Status())
	})

	t.Run("scheduled cannot schedule again", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeRepair, 3)
		require.NoError(t, req.Schedule(ctx, testNow))

		err := req.Schedule(ctx, testNow)
		var transitionErr *request.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("cancellable until visited", func(t *testing.T) {
		req := mustNewRequest(t, request.TypeReturn, 3)
		assert.NoError(t, req.Cancellable())

		require.NoError(t, req.Schedule(ctx, testNow))
		assert.NoError(t, req.Cancellable())

		require.NoError(t, req.Complete(ctx, testNow))
		assert.ErrorIs(t, req.Cancellable(), request.ErrAlreadyVisited)
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		current request.Status
		event   request.Event
		want    request.Status
		wantErr bool
	}{
		{name: "schedule from pending", current: request.StatusPending, event: request.EventSchedule, want: request.StatusScheduled},
		{name: "complete from scheduled", current: request.StatusScheduled, event: request.EventComplete, want: request.StatusVisited},
		{name: "complete from pending", current: request.StatusPending, event: request.EventComplete, wantErr: true},
		{name: "schedule from scheduled", current: request.StatusScheduled, event: request.EventSchedule, wantErr: true},
		{name: "schedule from visited", current: request.StatusVisited, event: request.EventSchedule, wantErr: true},
		{name: "complete from visited", current: request.StatusVisited, event: request.EventComplete, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := request.Apply(ctx, tc.current, tc.event)
			if tc.wantErr {
				var transitionErr *request.TransitionError
				assert.ErrorAs(t, err, &transitionErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, next)
		})
	}
}

func TestSortedPreferenceDates(t *testing.T) {
	req := mustNewRequest(t, request.TypeInstall, 7, 2, 5)

	sorted := req.SortedPreferenceDates()
	require.Len(t, sorted, 3)
	assert.True(t, sorted[0].PreferredAt.Before(sorted[1].PreferredAt))
	assert.True(t, sorted[1].PreferredAt.Before(sorted[2].PreferredAt))

	// the entity's own slice is untouched
	raw := req.PreferenceDates()
	wantRaw := []time.Time{
		testNow.AddDate(0, 0, 7),
		testNow.AddDate(0, 0, 2),
		testNow.AddDate(0, 0, 5),
	}
	gotRaw := make([]time.Time, len(raw))
	for i, d := range raw {
		gotRaw[i] = d.PreferredAt
	}
	if diff := cmp.Diff(wantRaw, gotRaw, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("preference dates mismatch (-want +got):\n%s", diff)
	}
}
