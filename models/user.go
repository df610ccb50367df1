package models

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Actor is the authenticated user session. There is no credential store:
// the password supplied at login is hashed and kept only so it never
// reaches the persistence bridge in plaintext. It is never compared
// against anything.
type Actor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
