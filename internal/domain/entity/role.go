// Package entity contains the core business objects of the loyalty club.
package entity

// Role is the access level stored on a customer row.
type Role string

const (
	// RoleCustomer uploads invoices and redeems prizes.
	RoleCustomer Role = "customer"
	// RoleAdmin manages the catalog and hands out prizes at the counter.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole maps a stored value to a Role. Anything unknown is treated as a plain customer.
func ParseRole(s string) Role {
	if role := Role(s); role == RoleAdmin {
		return role
	}

	return RoleCustomer
}

// Roles is the set of roles placed into access tokens.
type Roles []Role

// ToStrings converts Roles to the JWT claim representation.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
