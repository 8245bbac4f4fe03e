package offer

import "fmt"

// NotFoundError signals that the offer does not exist.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("offer %s not found", e.ID)
}

// InvalidInputError signals a missing or malformed offer field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateRangeError signals an offer window that ends before it starts.
type InvalidDateRangeError struct {
	Reason string
}

func (e InvalidDateRangeError) Error() string {
	return e.Reason
}
