package user

import (
	"context"

	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"
)

// RegisterInput carries a signup request.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
	Role     string
}

// AuthResponse contains the authenticated user and its bearer token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService handles identity: registration, login, logout and lookup.
type UserService interface {
	Register(in RegisterInput) (*AuthResponse, error)
	// Authenticate matches the identifier against email or username.
	Authenticate(identifier, password string) (*AuthResponse, error)
	// Logout denylists the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
	GetUserByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
