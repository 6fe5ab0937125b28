package domain

import "time"

const (
	RoleCompany  = "Company"
	RoleEmployee = "Employee"
)

// ValidRole reports whether role is one of the two roles the portal knows.
func ValidRole(role string) bool {
	return role == RoleCompany || role == RoleEmployee
}

// Identity is the stored credential record for an actor. It is deliberately
// separate from the Company/Employee profile: it carries only what is needed
// to authenticate and authorize, never profile data.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
