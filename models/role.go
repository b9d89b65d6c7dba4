package models

import "fmt"

// Role is the closed set of roles the reservation API issues. Keeping it a
// closed enumeration means a new backend role surfaces as an error instead of
// silently falling through to the customer view.
type Role int

const (
	RoleCustomer Role = iota
	RoleWaiter
	RoleAdmin
)

const (
	roleCustomerWire = "Customer"
	roleWaiterWire   = "Waiter"
	roleAdminWire    = "Admin"
)

// ParseRole maps the wire representation of a role onto the enum.
func ParseRole(s string) (Role, error) {
	switch s {
	case roleCustomerWire:
		return RoleCustomer, nil
	case roleWaiterWire:
		return RoleWaiter, nil
	case roleAdminWire:
		return RoleAdmin, nil
	default:
		return RoleCustomer, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleWaiter:
		return roleWaiterWire
	case RoleAdmin:
		return roleAdminWire
	default:
		return roleCustomerWire
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("role must be a JSON string, got %s", data)
	}
	parsed, err := ParseRole(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
