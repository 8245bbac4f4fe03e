package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "stayhaven/database/repository/booking"
	"stayhaven/models"
	"stayhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request against business rules and existing
// reservations, computes the price and persists a new pending booking.
// Checks run in order, each a distinct failure mode; nothing is written
// until all of them pass.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error) {
	room, err := s.RoomRepo.GetByID(in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve room: %w", err)
	}
	if room == nil {
		return nil, NotFoundError{Resource: "room", ID: in.RoomID}
	}

	checkIn := startOfDay(in.CheckInDate)
	checkOut := startOfDay(in.CheckOutDate)
	today := startOfDay(s.now())

	if checkIn.Before(today) {
		return nil, InvalidDateRangeError{Reason: "check-in date cannot be in the past"}
	}
	if !checkOut.After(checkIn) {
		return nil, InvalidDateRangeError{Reason: "check-out date must be after check-in date"}
	}
	if in.Guests < 1 || in.Guests > s.maxGuests() {
		return nil, InvalidInputError{
			Field:  "guests",
			Reason: fmt.Sprintf("number of guests must be between 1 and %d", s.maxGuests()),
		}
	}
	method, ok := models.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, InvalidInputError{Field: "paymentMethod", Reason: "unknown payment method"}
	}

	now := s.now().UTC()
	b := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          actor.ID,
		RoomID:          room.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          in.Guests,
		TotalPrice:      TotalPrice(room.PricePerNight, checkIn, checkOut),
		PaymentMethod:   method,
		IsPaid:          false,
		Status:          models.BookingPending,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrDateConflict) {
			conflict := ConflictError{RoomID: room.ID, CheckIn: checkIn, CheckOut: checkOut}
			// Best effort; the conflict stands even if the lookup fails.
			if existing, lookupErr := s.Repo.FindConflicting(room.ID, checkIn, checkOut); lookupErr == nil && existing != nil {
				conflict.BookedFrom = existing.CheckInDate
				conflict.BookedUntil = existing.CheckOutDate
			}
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("roomId", room.ID),
		zap.String("userId", actor.ID),
		zap.Float64("totalPrice", b.TotalPrice),
	)

	s.resolve(b)
	return b, nil
}

// GetBooking fetches one booking, enforcing the owner-or-admin policy.
func (s *DefaultBookingService) GetBooking(actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, b) {
		return nil, ForbiddenError{}
	}
	s.resolve(b)
	return b, nil
}

// ListBookings returns a page of bookings: all of them for admins, only the
// actor's own otherwise.
func (s *DefaultBookingService) ListBookings(actor models.Actor, page models.PageRequest) ([]models.Booking, models.Pagination, error) {
	scope := actor.ID
	if actor.IsAdmin() {
		scope = ""
	}
	return s.list(scope, page)
}

// ListOwnBookings returns a page of the actor's own bookings regardless of role.
func (s *DefaultBookingService) ListOwnBookings(actor models.Actor, page models.PageRequest) ([]models.Booking, models.Pagination, error) {
	return s.list(actor.ID, page)
}

func (s *DefaultBookingService) list(userID string, page models.PageRequest) ([]models.Booking, models.Pagination, error) {
	bookings, total, err := s.Repo.List(userID, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list bookings: %w", err)
	}
	for i := range bookings {
		s.resolve(&bookings[i])
	}
	return bookings, models.NewPagination(page.Page, page.Limit, total), nil
}

// SetStatus applies an administrative status transition. The target must be
// a known status and the transition must be legal under the lifecycle graph;
// re-applying the current status is rejected.
func (s *DefaultBookingService) SetStatus(actor models.Actor, id string, status string) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, ForbiddenError{Reason: "only administrators may set booking status"}
	}

	target, ok := models.ParseBookingStatus(status)
	if !ok {
		return nil, InvalidInputError{Field: "status", Reason: "unknown status value"}
	}

	b, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(target) {
		return nil, InvalidStateError{From: b.Status, To: target}
	}

	if err := s.Repo.UpdateStatus(id, target); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = target
	b.UpdatedAt = s.now().UTC()

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingId", id),
		zap.String("status", string(target)),
	)

	s.resolve(b)
	return b, nil
}

// CancelBooking cancels a booking on behalf of its owner or an admin.
// Terminal bookings cannot be cancelled; isPaid is left untouched.
func (s *DefaultBookingService) CancelBooking(actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, b) {
		return nil, ForbiddenError{}
	}
	if b.Status == models.BookingCancelled {
		return nil, InvalidStateError{From: b.Status, To: models.BookingCancelled, Reason: "booking is already cancelled"}
	}
	if b.Status == models.BookingCompleted {
		return nil, InvalidStateError{From: b.Status, To: models.BookingCancelled, Reason: "cannot cancel a completed booking"}
	}

	if err := s.Repo.UpdateStatus(id, models.BookingCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	b.Status = models.BookingCancelled
	b.UpdatedAt = s.now().UTC()

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", id),
		zap.String("actorId", actor.ID),
	)

	s.resolve(b)
	return b, nil
}

// DeleteBooking removes a terminal booking. Active bookings cannot be
// deleted, mirroring the guard on deleting rooms with active bookings.
func (s *DefaultBookingService) DeleteBooking(actor models.Actor, id string) error {
	if !actor.IsAdmin() {
		return ForbiddenError{Reason: "only administrators may delete bookings"}
	}

	b, err := s.fetch(id)
	if err != nil {
		return err
	}
	if b.Status.IsActive() {
		return InvalidStateError{From: b.Status, To: b.Status, Reason: "cannot delete a booking with active status"}
	}

	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// fetch loads a booking or returns NotFoundError.
func (s *DefaultBookingService) fetch(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NotFoundError{Resource: "booking", ID: id}
	}
	return b, nil
}

// resolve attaches the denormalized room and user views for display. Lookup
// failures only leave the summaries empty; they never fail the operation.
func (s *DefaultBookingService) resolve(b *models.Booking) {
	if room, err := s.RoomRepo.GetByID(b.RoomID); err == nil && room != nil {
		b.Room = room.Summary()
	}
	if user, err := s.UserRepo.GetByID(b.UserID); err == nil && user != nil {
		b.User = user.Summary()
	}
}
