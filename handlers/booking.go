package handlers

import (
	"net/http"

	"stayhaven/middleware"
	bookingSvc "stayhaven/services/booking"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Svc bookingSvc.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		RoomID          string `json:"roomId"`
		CheckInDate     string `json:"checkInDate"`
		CheckOutDate    string `json:"checkOutDate"`
		Guests          int    `json:"guests"`
		PaymentMethod   string `json:"paymentMethod"`
		SpecialRequests string `json:"specialRequests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate must be an RFC 3339 or YYYY-MM-DD date")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOutDate must be an RFC 3339 or YYYY-MM-DD date")
		return
	}

	b, err := h.Svc.CreateBooking(c.Request.Context(), actor, bookingSvc.CreateBookingInput{
		RoomID:          req.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          req.Guests,
		PaymentMethod:   req.PaymentMethod,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// ListBookingsHandler handles GET /bookings. Admins see every booking,
// clients only their own.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, pagination, err := h.Svc.ListBookings(actor, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "pagination": pagination})
}

// MyBookingsHandler handles GET /bookings/my-bookings, always scoped to the
// acting user regardless of role.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, pagination, err := h.Svc.ListOwnBookings(actor, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "pagination": pagination})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	b, err := h.Svc.GetBooking(actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// SetStatusHandler handles PATCH /bookings/:id/status (admin only).
func (h *BookingHandler) SetStatusHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	b, err := h.Svc.SetStatus(actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "message": "booking status updated"})
}

// CancelBookingHandler handles PATCH /bookings/:id/cancel. Owners and admins
// may cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	b, err := h.Svc.CancelBooking(actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "message": "booking cancelled"})
}

// DeleteBookingHandler handles DELETE /bookings/:id (admin only).
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.Svc.DeleteBooking(actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
