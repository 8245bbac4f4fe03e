package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"one night", date(2026, 2, 15), date(2026, 2, 16), 1},
		{"three nights", date(2026, 2, 15), date(2026, 2, 18), 3},
		{"partial day rounds up", date(2026, 2, 15), time.Date(2026, 2, 16, 14, 0, 0, 0, time.UTC), 2},
		{"across month boundary", date(2026, 2, 27), date(2026, 3, 2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 450.0, TotalPrice(150, date(2026, 2, 15), date(2026, 2, 18)))
	assert.Equal(t, 99.5, TotalPrice(99.5, date(2026, 2, 15), date(2026, 2, 16)))
}
