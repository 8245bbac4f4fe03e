package booking

import "time"

// Nights computes the number of billable nights as the ceiling of the
// whole-day difference between the dates.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

// TotalPrice is nights times the nightly rate.
func TotalPrice(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	return pricePerNight * float64(Nights(checkIn, checkOut))
}

// startOfDay truncates a time to UTC midnight; bookings deal in calendar
// dates, time-of-day is irrelevant.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
