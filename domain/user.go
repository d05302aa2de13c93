package domain

import (
	"context"
	"time"
)

// User represents a registered account in the system.
type User struct {
	ID          int64     // Unique identifier
	Username    string    // Login username (unique), also the author identity name
	DisplayName string    // Optional public display name
	Email       string    // Registered account email
	Password    string    // Bcrypt hashed password
	Role        string    // Role resolved to rights by the security gate
	CreatedAt   time.Time // Account creation timestamp
	UpdatedAt   time.Time // Last profile update timestamp
}

// Profile is the public slice of a user record.
type Profile struct {
	DisplayName string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByUsername retrieves a user by their username.
	// Returns ErrNotFound if the user doesn't exist.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

// ProfileService resolves an author's public profile by identity name.
type ProfileService interface {
	// GetProfile returns ErrNotFound when no profile exists for the name.
	GetProfile(ctx context.Context, name string) (Profile, error)
}

// AccountDirectory resolves an account's registered email by identity name.
type AccountDirectory interface {
	EmailFor(ctx context.Context, name string) (string, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, displayName, username, email, password string) error

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)
}
