package principal

import "errors"

var ErrUnknownRole = errors.New("unknown principal role")

// Role identifies which credential table a principal authenticated against.
type Role string

const (
	RoleCompany  Role = "company"
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
)

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCompany, RoleCustomer, RoleWorker:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}
