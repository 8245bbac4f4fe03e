package booking

import "stayhaven/models"

// CanAccess is the single owner-or-admin check applied by every operation
// that touches an existing booking.
func CanAccess(actor models.Actor, b *models.Booking) bool {
	return actor.IsAdmin() || b.UserID == actor.ID
}
