package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTerm         = errors.New("subscription term must be positive")
	ErrBeginDateAlreadySet = errors.New("begin date already set to a different date")
	ErrNoBeginDate         = errors.New("subscription has no begin date")
)

const monthsPerYear = 12

// Subscription is a customer's rental term for one installed unit. The begin
// date stays nil until the install visit is scheduled; expiration semantics
// only exist once it is set.
type Subscription struct {
	id           uuid.UUID
	termYears    int
	createdAt    time.Time
	beginDate    *time.Time
	customerID   uuid.UUID
	serialNumber string
}

func New(customerID uuid.UUID, serialNumber string, termYears int, now time.Time) (*Subscription, error) {
	if termYears < 1 {
		return nil, ErrInvalidTerm
	}
	return &Subscription{
		id:           uuid.New(),
		termYears:    termYears,
		createdAt:    now,
		customerID:   customerID,
		serialNumber: serialNumber,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	termYears int,
	createdAt time.Time,
	beginDate *time.Time,
	customerID uuid.UUID,
	serialNumber string,
) *Subscription {
	return &Subscription{
		id:           id,
		termYears:    termYears,
		createdAt:    createdAt,
		beginDate:    beginDate,
		customerID:   customerID,
		serialNumber: serialNumber,
	}
}

func (s *Subscription) ID() uuid.UUID        { return s.id }
func (s *Subscription) TermYears() int       { return s.termYears }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
func (s *Subscription) BeginDate() *time.Time {
	return s.beginDate
}
func (s *Subscription) CustomerID() uuid.UUID { return s.customerID }
func (s *Subscription) SerialNumber() string  { return s.serialNumber }

// Extend adds (possibly negative) years to the term. The resulting term must
// stay positive; on failure the term is left unchanged.
func (s *Subscription) Extend(addYears int) error {
	next := s.termYears + addYears
	if next < 1 {
		return ErrInvalidTerm
	}
	s.termYears = next
	return nil
}

// SetBeginDate records the date the install visit was scheduled for. Setting
// the same date again is a no-op; overwriting a different date is rejected.
func (s *Subscription) SetBeginDate(date time.Time) error {
	if s.beginDate != nil {
		if s.beginDate.Equal(date) {
			return nil
		}
		return ErrBeginDateAlreadySet
	}
	d := date
	s.beginDate = &d
	return nil
}

// ExpiresAt is begin date plus the term in months. Nil until the install
// visit has been scheduled.
func (s *Subscription) ExpiresAt() *time.Time {
	if s.beginDate == nil {
		return nil
	}
	exp := s.beginDate.AddDate(0, s.termYears*monthsPerYear, 0)
	return &exp
}

func (s *Subscription) IsExpired(now time.Time) bool {
	exp := s.ExpiresAt()
	if exp == nil {
		return false
	}
	return exp.Before(now)
}
