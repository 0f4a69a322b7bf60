// Package entity contains the core business objects of the marketplace.
package entity

import "slices"

// Role represents the marketplace role stored on a profile.
type Role string

const (
	// RoleBuyer can browse, favorite, message sellers and pay.
	RoleBuyer Role = "buyer"
	// RoleSeller is a private seller who can publish listings.
	RoleSeller Role = "seller"
	// RoleDealer is a professional seller with a dealer name.
	RoleDealer Role = "dealer"
	// RoleAdmin moderates users, listings and payments.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleDealer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanSell reports whether the role may create listings.
func (r Role) CanSell() bool {
	return r == RoleSeller || r == RoleDealer || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny checks if the roles slice contains at least one of the given roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
