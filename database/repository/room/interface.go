package roomRepo

import (
	"stayhaven/models"
)

// RoomRepository defines persistence operations for the room catalog.
// Lookups return (nil, nil) when no document matches.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	Update(room *models.Room) error
	Delete(id string) error

	// List returns one page of rooms matching the filter plus the total count.
	List(filter models.RoomFilter, page models.PageRequest) ([]models.Room, int64, error)

	// ListExcluding returns rooms (optionally of one type) whose ids are not
	// in the excluded set. Backs the availability search anti-join.
	ListExcluding(roomType models.RoomType, excludedIDs []string) ([]models.Room, error)

	CountAll() (int64, error)
	AveragePrice() (float64, error)
	CountByType() (map[string]int64, error)
}
