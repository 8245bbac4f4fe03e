package room

import (
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	roomRepo "stayhaven/database/repository/room"
	"stayhaven/models"
	"stayhaven/utils"
)

// RoomInput carries the fields of a room create or update request.
type RoomInput struct {
	Hotel         models.Hotel
	RoomType      string
	PricePerNight float64
	Amenities     []string
	Images        []string
	IsAvailable   *bool
	Rating        *float64
}

// RoomService manages the room catalog and the availability search.
type RoomService interface {
	CreateRoom(in RoomInput) (*models.Room, error)
	GetRoom(id string) (*models.Room, error)
	UpdateRoom(id string, in RoomInput) (*models.Room, error)
	// DeleteRoom refuses to remove rooms that still have active bookings.
	DeleteRoom(id string) error

	ListRooms(filter models.RoomFilter, page models.PageRequest) ([]models.Room, models.Pagination, error)

	// SearchAvailable returns rooms with no active booking overlapping the
	// range, optionally restricted to one room type.
	SearchAvailable(checkIn, checkOut time.Time, roomType string) ([]models.Room, error)

	Stats() (*models.RoomStats, error)

	// AddImage appends an uploaded image URL to the room.
	AddImage(id, imageURL string) (*models.Room, error)
}

// DefaultRoomService is the production implementation. Cache is optional;
// when set, the stats snapshot is served from it between catalog changes.
type DefaultRoomService struct {
	Repo        roomRepo.RoomRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       utils.Cache
}
