package request

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoPreferenceDate = errors.New("request has no preference date")
	ErrAlreadyVisited   = errors.New("request already visited")
)

// PreferenceDate is one customer-submitted candidate visit date.
type PreferenceDate struct {
	ID          uuid.UUID
	PreferredAt time.Time
}

// Request is a service request against a subscription. It owns its preference
// dates; the at-most-one visit per request is enforced by the store.
type Request struct {
	id              uuid.UUID
	typ             Type
	status          Status
	comment         *string
	createdAt       time.Time
	editedAt        *time.Time
	subscriptionID  uuid.UUID
	preferenceDates []PreferenceDate
}

func New(typ Type, subscriptionID uuid.UUID, comment *string, preferredDates []time.Time, now time.Time) (*Request, error) {
	if len(preferredDates) == 0 {
		return nil, ErrNoPreferenceDate
	}

	prefs := make([]PreferenceDate, len(preferredDates))
	for i, d := range preferredDates {
		prefs[i] = PreferenceDate{ID: uuid.New(), PreferredAt: d}
	}

	return &Request{
		id:              uuid.New(),
		typ:             typ,
		status:          StatusPending,
		comment:         normalizeComment(comment),
		createdAt:       now,
		subscriptionID:  subscriptionID,
		preferenceDates: prefs,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	typ Type,
	status Status,
	comment *string,
	createdAt time.Time,
	editedAt *time.Time,
	subscriptionID uuid.UUID,
	preferenceDates []PreferenceDate,
) *Request {
	return &Request{
		id:              id,
		typ:             typ,
		status:          status,
		comment:         comment,
		createdAt:       createdAt,
		editedAt:        editedAt,
		subscriptionID:  subscriptionID,
		preferenceDates: preferenceDates,
	}
}

func (r *Request) ID() uuid.UUID             { return r.id }
func (r *Request) Type() Type                { return r.typ }
func (r *Request) Status() Status            { return r.status }
func (r *Request) Comment() *string          { return r.comment }
func (r *Request) CreatedAt() time.Time      { return r.createdAt }
func (r *Request) EditedAt() *time.Time      { return r.editedAt }
func (r *Request) SubscriptionID() uuid.UUID { return r.subscriptionID }

func (r *Request) PreferenceDates() []PreferenceDate {
	out := make([]PreferenceDate, len(r.preferenceDates))
	copy(out, r.preferenceDates)
	return out
}

// ResolveVisitDate picks the date a worker acceptance commits to: the
// explicit date when given, otherwise the earliest preference date.
func (r *Request) ResolveVisitDate(explicit *time.Time) (time.Time, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if len(r.preferenceDates) == 0 {
		return time.Time{}, ErrNoPreferenceDate
	}

	earliest := r.preferenceDates[0].PreferredAt
	for _, p := range r.preferenceDates[1:] {
		if p.PreferredAt.Before(earliest) {
			earliest = p.PreferredAt
		}
	}
	return earliest, nil
}

// Schedule moves pending -> scheduled when a worker accepts the request.
func (r *Request) Schedule(ctx context.Context, now time.Time) error {
	next, err := Apply(ctx, r.status, EventSchedule)
	if err != nil {
		return err
	}
	r.status = next
	r.editedAt = &now
	return nil
}

// Complete moves scheduled -> visited once the site visit is done.
func (r *Request) Complete(ctx context.Context, now time.Time) error {
	next, err := Apply(ctx, r.status, EventComplete)
	if err != nil {
		return err
	}
	r.status = next
	r.editedAt = &now
	return nil
}

// Cancellable reports whether the request may still be withdrawn. A visited
// request is history, not a pending piece of work.
func (r *Request) Cancellable() error {
	if r.status == StatusVisited {
		return ErrAlreadyVisited
	}
	return nil
}

// SortedPreferenceDates returns the preference dates ascending, the order the
// customer-facing views display them in.
func (r *Request) SortedPreferenceDates() []PreferenceDate {
	out := r.PreferenceDates()
	sort.Slice(out, func(i, j int) bool {
		return out[i].PreferredAt.Before(out[j].PreferredAt)
	})
	return out
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
