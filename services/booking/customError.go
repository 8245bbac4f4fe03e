package booking

import (
	"fmt"
	"time"

	"stayhaven/models"
)

// NotFoundError signals that a referenced room or booking does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidInputError signals a missing or out-of-range request field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateRangeError signals a check-in in the past or a check-out not
// after check-in.
type InvalidDateRangeError struct {
	Reason string
}

func (e InvalidDateRangeError) Error() string {
	return e.Reason
}

// ConflictError signals an overlapping active booking for the room. When the
// conflicting reservation could be looked up, its range is included so the
// caller can see which dates are taken.
type ConflictError struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time

	BookedFrom  time.Time
	BookedUntil time.Time
}

func (e ConflictError) Error() string {
	if !e.BookedFrom.IsZero() {
		return fmt.Sprintf("room is not available for the selected dates: already booked from %s to %s",
			e.BookedFrom.Format("2006-01-02"), e.BookedUntil.Format("2006-01-02"))
	}
	return "room is not available for the selected dates"
}

// ForbiddenError signals that the acting user may not touch the booking.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	if e.Reason == "" {
		return "access denied"
	}
	return e.Reason
}

// InvalidStateError signals a status transition the lifecycle graph forbids.
type InvalidStateError struct {
	From   models.BookingStatus
	To     models.BookingStatus
	Reason string
}

func (e InvalidStateError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
