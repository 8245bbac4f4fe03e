package models

import "time"

// Role values.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User represents a platform user. Passwords are stored hashed only.
type User struct {
	ID           string    `bson:"id" json:"id"`
	UserName     string    `bson:"userName" json:"userName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the denormalized view used on booking responses.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
