package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a registered user of the application.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"` // bcrypt; empty for OAuth-only accounts
	AuthProvider AuthProvider `json:"authProvider"`

	// ProviderUserID is the external subject for OAuth accounts (Google's
	// "sub" claim). Empty for local accounts.
	ProviderUserID string `json:"-"`

	// Refresh token state, stored hashed. Nil when no session is active.
	RefreshTokenHash   *string    `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

func (u *User) GetUserID() string   { return u.UserID }
func (u *User) GetUsername() string { return u.Username }
func (u *User) GetName() string     { return u.Name }
