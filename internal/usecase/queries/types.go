package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SubscriptionView struct {
	ID           uuid.UUID  `json:"id"`
	TermYears    int        `json:"term_years"`
	CreatedAt    time.Time  `json:"created_at"`
	BeginDate    *time.Time `json:"begin_date,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	SerialNumber string     `json:"serial_number"`
}

type RequestView struct {
	ID             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Comment        *string    `json:"comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
	SubscriptionID uuid.UUID  `json:"subscription_id"`
}

// VisitDateKind tags how a request's display date was resolved.
type VisitDateKind string

const (
	VisitDateScheduled VisitDateKind = "scheduled"
	VisitDatePreferred VisitDateKind = "preferred"
)

// VisitDateView is the display date of a request, resolved once: the
// recorded visit date when a visit exists, otherwise the preferred dates
// ascending.
type VisitDateView struct {
	Kind      VisitDateKind `json:"kind"`
	Scheduled *time.Time    `json:"scheduled,omitempty"`
	Preferred []time.Time   `json:"preferred,omitempty"`
}

type CustomerRequestView struct {
	RequestView
	VisitDate VisitDateView `json:"visit_date"`
}

type PreferenceDateView struct {
	ID          uuid.UUID `json:"id"`
	PreferredAt time.Time `json:"preferred_at"`
	RequestID   uuid.UUID `json:"request_id"`
}

type VisitView struct {
	ID        uuid.UUID `json:"id"`
	VisitAt   time.Time `json:"visit_at"`
	CreatedAt time.Time `json:"created_at"`
	WorkerID  uuid.UUID `json:"worker_id"`
	RequestID uuid.UUID `json:"request_id"`
}

type ModelView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	YearlyFeeCents int64     `json:"yearly_fee_cents"`
	Manufacturer   string    `json:"manufacturer"`
	Color          *string   `json:"color,omitempty"`
	EnergyRating   *string   `json:"energy_rating,omitempty"`
	ReleaseYear    *int32    `json:"release_year,omitempty"`
}

type ProductView struct {
	SerialNumber string    `json:"serial_number"`
	ModelID      uuid.UUID `json:"model_id"`
	Status       string    `json:"status"`
}

type StockSummaryView struct {
	ModelID         uuid.UUID `json:"model_id"`
	ModelName       string    `json:"model_name"`
	Category        string    `json:"category"`
	StockCount      int64     `json:"stock_count"`
	SubscribedCount int64     `json:"subscribed_count"`
}

type RequestCountsView struct {
	Pending   int64 `json:"pending"`
	Scheduled int64 `json:"scheduled"`
}

type WorkerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
}

type CustomerView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MainPhone       string    `json:"main_phone"`
	SubPhone        *string   `json:"sub_phone,omitempty"`
	StreetAddress   string    `json:"street_address"`
	DetailedAddress *string   `json:"detailed_address,omitempty"`
}
