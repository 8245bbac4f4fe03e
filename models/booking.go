package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a raw status value.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// IsActive reports whether the booking counts toward date conflicts.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

// CanTransitionTo encodes the directed transition graph:
// pending -> {confirmed, cancelled}, confirmed -> {cancelled, completed},
// cancelled and completed are terminal. Re-applying the current status is
// not a legal transition.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingConfirmed || target == BookingCancelled
	case BookingConfirmed:
		return target == BookingCancelled || target == BookingCompleted
	}
	return false
}

// PaymentMethod is how the guest intends to pay. Payment itself is handled
// outside this service; the booking only records the choice.
type PaymentMethod string

const (
	PaymentStripe PaymentMethod = "Stripe"
	PaymentPayPal PaymentMethod = "PayPal"
	PaymentCash   PaymentMethod = "Cash"
)

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentStripe, PaymentPayPal, PaymentCash:
		return PaymentMethod(s), true
	}
	return "", false
}

// Booking is a reservation of a room for a date range.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"userId" json:"userId"`
	RoomID          string        `bson:"roomId" json:"roomId"`
	CheckInDate     time.Time     `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate    time.Time     `bson:"checkOutDate" json:"checkOutDate"`
	Guests          int           `bson:"guests" json:"guests"`
	TotalPrice      float64       `bson:"totalPrice" json:"totalPrice"`
	PaymentMethod   PaymentMethod `bson:"paymentMethod" json:"paymentMethod"`
	IsPaid          bool          `bson:"isPaid" json:"isPaid"`
	Status          BookingStatus `bson:"status" json:"status"`
	SpecialRequests string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`

	// Resolved for display only; never persisted on the booking document.
	Room *RoomSummary `bson:"-" json:"room,omitempty"`
	User *UserSummary `bson:"-" json:"user,omitempty"`
}

// Overlaps is the inclusive-boundary date-range test used for conflict
// detection: ranges that merely touch (checkout day == checkin day) overlap.
// The Mongo conflict filter in the booking repository mirrors this exactly.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkIn)
}

// RoomSummary is the denormalized room view attached to booking responses.
type RoomSummary struct {
	ID            string   `json:"id"`
	RoomType      RoomType `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	HotelName     string   `json:"hotelName"`
	HotelCity     string   `json:"hotelCity"`
	Amenities     []string `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
}

// UserSummary is the denormalized user view attached to booking responses.
type UserSummary struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
