package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Lookup errors
	ErrModelNotFound        = errors.New("model not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrWorkerNotFound       = errors.New("worker not found")

	// Inventory errors
	ErrOutOfStock = errors.New("no unit in stock for model")

	// Subscription errors
	ErrInvalidTerm         = errors.New("resulting subscription term is not positive")
	ErrBeginDateAlreadySet = errors.New("subscription begin date already set")

	// Request lifecycle errors
	ErrNoPreferenceDate      = errors.New("no preference date on file")
	ErrVisitNotFound         = errors.New("no visit recorded for request")
	ErrVisitAlreadyScheduled = errors.New("visit already scheduled for request")
	ErrAlreadyVisited        = errors.New("request already visited")
	ErrInvalidTransition     = errors.New("invalid request status transition")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginIDTaken       = errors.New("login id already exists")

	// Store errors
	ErrTransactionConflict = errors.New("transaction conflict")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
