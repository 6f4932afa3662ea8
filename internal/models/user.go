// Package models defines the records the cakeshop stores persist and the
// read models the terminal client renders.
package models

// Role classifies an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// Roles lists every accepted role in signup-menu order.
var Roles = []Role{RoleCustomer, RoleOwner, RoleAdmin}

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleCustomer:
		return true
	}
	return false
}

// View is the dashboard a role lands on. Owners share the admin view.
func (r Role) View() string {
	switch r {
	case RoleAdmin, RoleOwner:
		return "admin"
	case RoleCustomer:
		return "customer"
	}
	return ""
}

// IsVendor reports whether the role may own a catalog and a profile.
func (r Role) IsVendor() bool {
	return r == RoleAdmin || r == RoleOwner
}

// User is an account record. Password holds a bcrypt hash, never plaintext.
type User struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}
