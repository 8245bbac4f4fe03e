package booking

import (
	"context"
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	roomRepo "stayhaven/database/repository/room"
	userRepo "stayhaven/database/repository/user"
	"stayhaven/models"
)

// CreateBookingInput carries the validated request to reserve a room.
type CreateBookingInput struct {
	RoomID          string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Guests          int
	PaymentMethod   string
	SpecialRequests string
}

// BookingService manages the booking lifecycle: validation and creation,
// status transitions, cancellation, listing and deletion. Every operation
// takes the acting identity explicitly.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error)
	GetBooking(actor models.Actor, id string) (*models.Booking, error)

	// ListBookings is role-branched: admins see all bookings, clients only
	// their own.
	ListBookings(actor models.Actor, page models.PageRequest) ([]models.Booking, models.Pagination, error)
	// ListOwnBookings always scopes to the acting user.
	ListOwnBookings(actor models.Actor, page models.PageRequest) ([]models.Booking, models.Pagination, error)

	SetStatus(actor models.Actor, id string, status string) (*models.Booking, error)
	CancelBooking(actor models.Actor, id string) (*models.Booking, error)
	DeleteBooking(actor models.Actor, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	RoomRepo  roomRepo.RoomRepository
	UserRepo  userRepo.UserRepository
	MaxGuests int

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) maxGuests() int {
	if s.MaxGuests > 0 {
		return s.MaxGuests
	}
	return 10
}
