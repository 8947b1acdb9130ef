package entities

import "time"

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleRider UserRole = "rider"
	UserRoleAdmin UserRole = "admin"
)

// User represents a user entity. Users are created on first sign-in;
// the identity provider owns credentials, we only keep email and role.
type User struct {
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogIn time.Time `json:"lastLogIn"`
}

// CreateUserInput represents input for the first-sign-in upsert
type CreateUserInput struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateUserResponse reports whether a new user row was written.
// An existing email only refreshes last_log_in.
type CreateUserResponse struct {
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Inserted bool     `json:"inserted"`
}

// RoleResponse carries only the role field for the public role lookup
type RoleResponse struct {
	Role UserRole `json:"role"`
}
