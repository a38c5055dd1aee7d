package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleCustomer UserRole = "CUSTOMER"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated actor behind a request, extracted from the
// bearer token. Authorization rules are predicates over a Principal and the
// owner of the resource being acted on.
type Principal struct {
	UserID int64
	Role   UserRole
}

func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool  { return p.Role == RoleManager }
func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
