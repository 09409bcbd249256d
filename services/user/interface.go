package user

import (
	"context"
	"errors"

	userRepo "mediconnect/database/repository/user"
	"mediconnect/models"
)

// ErrEmailTaken is returned when registration targets an email that already
// has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials is returned on failed authentication. The same error
// covers unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse is the payload returned on successful registration or login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PublicUser is the account view safe to return to clients.
type PublicUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// UserService defines account management and authentication operations.
type UserService interface {
	// Register creates an account and returns a signed token.
	Register(ctx context.Context, name, email, password string, role models.Role) (*AuthResponse, error)
	// Authenticate verifies credentials and returns a signed token.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetProfile returns the public view of an account.
	GetProfile(ctx context.Context, id string) (*PublicUser, error)
	// ListUsers returns all accounts (admin).
	ListUsers(ctx context.Context) ([]PublicUser, error)
	// DeleteUser removes an account (admin).
	DeleteUser(ctx context.Context, id string) error
}

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
