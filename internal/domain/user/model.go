package user

import "slices"

// Principal is the authenticated caller resolved by token introspection.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
