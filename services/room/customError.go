package room

import "fmt"

// NotFoundError signals that the referenced room does not exist.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("room %s not found", e.ID)
}

// InvalidInputError signals a missing or out-of-range room field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateRangeError signals a malformed availability search range.
type InvalidDateRangeError struct {
	Reason string
}

func (e InvalidDateRangeError) Error() string {
	return e.Reason
}

// ActiveBookingsError signals an attempt to delete a room that still has
// pending or confirmed bookings.
type ActiveBookingsError struct {
	ID string
}

func (e ActiveBookingsError) Error() string {
	return "cannot delete room with active bookings"
}
