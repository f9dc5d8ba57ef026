package request

import "errors"

var (
	ErrUnknownType   = errors.New("unknown request type")
	ErrUnknownStatus = errors.New("unknown request status")
)

// Type is fixed at creation and never changes afterwards.
type Type string

const (
	TypeInstall Type = "install"
	TypeRepair  Type = "repair"
	TypeReturn  Type = "return"
)

func (t Type) String() string {
	return string(t)
}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeInstall, TypeRepair, TypeReturn:
		return Type(s), nil
	default:
		return "", ErrUnknownType
	}
}

// Status only moves forward: pending -> scheduled -> visited. Cancellation
// deletes the request instead of marking a terminal status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusVisited   Status = "visited"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusScheduled, StatusVisited:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// Event names the lifecycle transitions a worker can drive.
type Event string

const (
	EventSchedule Event = "schedule"
	EventComplete Event = "complete"
)
