package bookingRepo

import (
	"context"
	"errors"
	"time"

	"stayhaven/models"
)

// ErrDateConflict is returned by CreateIfAvailable when an active booking
// for the same room overlaps the requested range.
var ErrDateConflict = errors.New("room has a conflicting active booking for the requested dates")

// BookingRepository defines persistence operations for bookings.
// Lookups return (nil, nil) when no document matches.
type BookingRepository interface {
	// CreateIfAvailable runs the conflict check and the insert inside a
	// single transaction, so concurrent requests cannot both commit
	// overlapping active bookings for one room.
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error

	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus) error
	Delete(id string) error

	// List returns one reverse-chronological page. An empty userID lists
	// bookings of all users.
	List(userID string, page models.PageRequest) ([]models.Booking, int64, error)

	// FindConflicting returns any active booking for the room whose range
	// overlaps [checkIn, checkOut] under the inclusive-boundary rule.
	FindConflicting(roomID string, checkIn, checkOut time.Time) (*models.Booking, error)

	// ConflictingRoomIDs returns the ids of all rooms having at least one
	// active booking overlapping the range.
	ConflictingRoomIDs(checkIn, checkOut time.Time) ([]string, error)

	CountActiveForRoom(roomID string) (int64, error)
	CountAll() (int64, error)
	CountActive() (int64, error)

	// CompleteExpired moves confirmed bookings whose checkout has passed to
	// completed, returning the number of bookings updated.
	CompleteExpired(now time.Time) (int64, error)
}
