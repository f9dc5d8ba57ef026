package shared

import (
	"context"
	"time"

	"hass-backend/internal/domain/product"
	"hass-backend/internal/domain/request"
	"hass-backend/internal/domain/subscription"
	"hass-backend/internal/domain/visit"
	"hass-backend/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes every multi-statement operation to one store transaction.
// All-or-nothing: the transaction commits only if fn returns nil, and a
// serialization conflict is surfaced to the caller rather than retried.
type UnitOfWork interface {
	// Within: read-write transaction for the lifecycle commands
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Products() ProductRepository
	Subscriptions() SubscriptionRepository
	Requests() RequestRepository
	Visits() VisitRepository
	Customers() CustomerRepository
	DB() db.DBTX
}

type ProductRepository interface {
	// ReserveUnit picks any in-stock unit of the model and marks it reserved.
	// Row-locked (FOR UPDATE SKIP LOCKED) so concurrent callers never get the
	// same serial number.
	ReserveUnit(ctx context.Context, modelID uuid.UUID) (string, error)
	FindBySerial(ctx context.Context, serialNumber string) (*product.Product, error)
	UpdateStatus(ctx context.Context, serialNumber string, from, to product.Status) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *subscription.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	UpdateTerm(ctx context.Context, id uuid.UUID, termYears int) error
	SetBeginDate(ctx context.Context, id uuid.UUID, date time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RequestRepository interface {
	// Create inserts the request row plus one preference_dates row per date.
	Create(ctx context.Context, req *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status request.Status, editedAt time.Time) error
	// DeleteWithPreferences removes the preference dates first, then the
	// request, honoring the foreign keys.
	DeleteWithPreferences(ctx context.Context, id uuid.UUID) error
	HasReturnRequest(ctx context.Context, subscriptionID uuid.UUID) (bool, error)
}

type VisitRepository interface {
	Create(ctx context.Context, v *visit.Visit) error
	FindByRequestID(ctx context.Context, requestID uuid.UUID) (*visit.Visit, error)
	CreateRepairDetail(ctx context.Context, detail *visit.RepairDetail) error
	// DeleteByRequestID removes the request's visit if one was scheduled.
	// A request without a visit is not an error.
	DeleteByRequestID(ctx context.Context, requestID uuid.UUID) error
}

// CustomerRepository covers the signup flow: the customer row and its
// credential row are inserted in one transaction.
type CustomerRepository interface {
	Create(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error)
	CreateCredentials(ctx context.Context, loginID, passwordHash string, customerID uuid.UUID) error
}

type CreateCustomerParams struct {
	Name            string
	MainPhone       string
	SubPhone        *string
	StreetAddress   string
	DetailedAddress *string
	PostalCode      *string
}
