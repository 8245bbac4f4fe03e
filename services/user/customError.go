package user

import "fmt"

// AuthError signals a failed login attempt. The message is safe to surface.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return e.Reason
}

// DuplicateEmailError signals a registration against an existing email or
// username.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s is already registered", e.Email)
}

// InvalidInputError signals a missing or malformed registration field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError signals that the user does not exist.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}
