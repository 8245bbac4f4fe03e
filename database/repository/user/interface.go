package userRepo

import (
	"stayhaven/models"
)

// UserRepository defines persistence operations for users.
// Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// GetByIdentifier matches either the email or the username.
	GetByIdentifier(identifier string) (*models.User, error)
}
