package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleMedico UserRole = "MEDICO"
	RoleAdmin  UserRole = "ADMIN"
)

// User mirrors the users table. Accounts come from the external identity
// provider, so no credentials are stored here. Genere and Specializzazione
// are optional profile fields shown alongside the author name.
type User struct {
	ID               int
	Email            string
	FullName         string
	Genere           string
	Specializzazione string
	Role             UserRole
	Enabled          bool
	CreatedAt        time.Time
}

// Caller is the identity of the current request, extracted from JWT claims
// by the authentication middleware and passed explicitly through every
// usecase call. It is never read from ambient state below the HTTP layer.
type Caller struct {
	Email string
	Roles []string
}

// HasRole reports whether the token carried the given role claim.
// Role names are compared case-insensitively.
func (c Caller) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
