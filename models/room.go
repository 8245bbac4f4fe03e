package models

import "time"

// RoomType is the fixed room category enumeration.
type RoomType string

const (
	RoomSingle RoomType = "Single Bed"
	RoomDouble RoomType = "Double Bed"
	RoomSuite  RoomType = "Suite"
	RoomDeluxe RoomType = "Deluxe"
	RoomFamily RoomType = "Family"
)

// ParseRoomType validates a raw room type value.
func ParseRoomType(s string) (RoomType, bool) {
	switch RoomType(s) {
	case RoomSingle, RoomDouble, RoomSuite, RoomDeluxe, RoomFamily:
		return RoomType(s), true
	}
	return "", false
}

// Amenities vocabulary.
var ValidAmenities = map[string]bool{
	"Room Service":   true,
	"Mountain View":  true,
	"Pool Access":    true,
	"Free WiFi":      true,
	"Free Breakfast": true,
}

// Hotel is the descriptor of the property a room belongs to.
type Hotel struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Contact string `bson:"contact" json:"contact"`
}

// Room is a bookable unit with a nightly rate.
type Room struct {
	ID            string    `bson:"id" json:"id"`
	Hotel         Hotel     `bson:"hotel" json:"hotel"`
	RoomType      RoomType  `bson:"roomType" json:"roomType"`
	PricePerNight float64   `bson:"pricePerNight" json:"pricePerNight"`
	Amenities     []string  `bson:"amenities" json:"amenities"`
	Images        []string  `bson:"images" json:"images"`
	IsAvailable   bool      `bson:"isAvailable" json:"isAvailable"`
	Rating        float64   `bson:"rating" json:"rating"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the denormalized view used on booking responses.
func (r *Room) Summary() *RoomSummary {
	return &RoomSummary{
		ID:            r.ID,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		HotelName:     r.Hotel.Name,
		HotelCity:     r.Hotel.City,
		Amenities:     r.Amenities,
		Images:        r.Images,
	}
}

// RoomFilter captures the catalog listing filters.
type RoomFilter struct {
	Search    string
	MinPrice  float64
	MaxPrice  float64
	RoomType  RoomType
	Amenities []string
	SortField string
	SortAsc   bool
}

// RoomStats is the aggregate catalog snapshot.
type RoomStats struct {
	TotalRooms     int64            `json:"totalRooms"`
	TotalBookings  int64            `json:"totalBookings"`
	ActiveBookings int64            `json:"activeBookings"`
	AvgPrice       float64          `json:"avgPrice"`
	RoomsByType    map[string]int64 `json:"roomsByType"`
}
