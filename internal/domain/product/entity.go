package product

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotInStock    = errors.New("product is not in stock")
	ErrNotReserved   = errors.New("product is not reserved")
	ErrUnknownStatus = errors.New("unknown product status")
)

// Status is the inventory state of a physical unit. Transitions are owned by
// the inventory side of the subscription commands: in_stock -> reserved on
// subscribe, reserved -> installed when the install visit completes, and
// reserved -> in_stock when a pending install is cancelled.
type Status string

const (
	StatusInStock   Status = "in_stock"
	StatusReserved  Status = "reserved"
	StatusInstalled Status = "installed"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusInStock, StatusReserved, StatusInstalled:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

type Product struct {
	serialNumber string
	modelID      uuid.UUID
	status       Status
}

func Reconstruct(serialNumber string, modelID uuid.UUID, status Status) *Product {
	return &Product{
		serialNumber: serialNumber,
		modelID:      modelID,
		status:       status,
	}
}

func (p *Product) SerialNumber() string { return p.serialNumber }
func (p *Product) ModelID() uuid.UUID   { return p.modelID }
func (p *Product) Status() Status       { return p.status }

func (p *Product) Reserve() error {
	if p.status != StatusInStock {
		return ErrNotInStock
	}
	p.status = StatusReserved
	return nil
}

func (p *Product) Release() error {
	if p.status != StatusReserved {
		return ErrNotReserved
	}
	p.status = StatusInStock
	return nil
}

func (p *Product) MarkInstalled() error {
	if p.status != StatusReserved {
		return ErrNotReserved
	}
	p.status = StatusInstalled
	return nil
}
