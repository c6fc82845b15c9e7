package domain

import (
	"context"
	"time"
)

// Role is a user's application role. It is a typed attribute on the user
// record, validated at the auth boundary.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User represents an authenticated account. Only admins can reach the
// back office; visitors never have accounts.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is the resolved authentication state for a request or token.
// swagger:model Session
type Session struct {
	User    *User `json:"user"`
	IsAdmin bool  `json:"is_admin"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user's ID and role.
type TokenVerifier interface {
	Verify(token string) (userID string, role Role, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines authentication and admin provisioning.
type AuthService interface {
	// Login authenticates the credentials and requires the admin role. A
	// valid non-admin login returns ErrForbidden and no token, so a non-admin
	// session can never exist.
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	// Session resolves a verified user ID into the current session state.
	Session(ctx context.Context, userID string) (*Session, error)
	// EnsureAdmin creates the admin account when absent. When the account
	// already exists it reports whether it holds the admin role; it never
	// promotes an existing non-admin account.
	EnsureAdmin(ctx context.Context, email, password string) (*AdminBootstrapResult, error)
}

// AdminBootstrapResult reports the outcome of EnsureAdmin.
type AdminBootstrapResult struct {
	User    *User `json:"user"`
	Created bool  `json:"created"`
	IsAdmin bool  `json:"is_admin"`
}
