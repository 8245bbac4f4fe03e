package room

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRoom validates and persists a new catalog entry.
func (s *DefaultRoomService) CreateRoom(in RoomInput) (*models.Room, error) {
	if in.Hotel.Name == "" {
		return nil, InvalidInputError{Field: "hotel", Reason: "hotel information is required"}
	}
	roomType, ok := models.ParseRoomType(in.RoomType)
	if !ok {
		return nil, InvalidInputError{Field: "roomType", Reason: "unknown room type"}
	}
	if in.PricePerNight <= 0 {
		return nil, InvalidInputError{Field: "pricePerNight", Reason: "price must be greater than 0"}
	}
	if err := validateAmenities(in.Amenities); err != nil {
		return nil, err
	}
	if len(in.Images) == 0 {
		return nil, InvalidInputError{Field: "images", Reason: "at least one image is required"}
	}

	r := &models.Room{
		ID:            uuid.New().String(),
		Hotel:         in.Hotel,
		RoomType:      roomType,
		PricePerNight: in.PricePerNight,
		Amenities:     in.Amenities,
		Images:        in.Images,
		IsAvailable:   true,
	}
	if in.IsAvailable != nil {
		r.IsAvailable = *in.IsAvailable
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, InvalidInputError{Field: "rating", Reason: "rating must be between 0 and 5"}
		}
		r.Rating = *in.Rating
	}

	if err := s.Repo.Create(r); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	s.invalidateStats()

	utils.GetLogger().Info("room created", zap.String("roomId", r.ID), zap.String("hotel", r.Hotel.Name))
	return r, nil
}

// GetRoom fetches one room by id.
func (s *DefaultRoomService) GetRoom(id string) (*models.Room, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if r == nil {
		return nil, NotFoundError{ID: id}
	}
	return r, nil
}

// UpdateRoom applies the provided fields to an existing room.
func (s *DefaultRoomService) UpdateRoom(id string, in RoomInput) (*models.Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}

	if in.RoomType != "" {
		roomType, ok := models.ParseRoomType(in.RoomType)
		if !ok {
			return nil, InvalidInputError{Field: "roomType", Reason: "unknown room type"}
		}
		r.RoomType = roomType
	}
	if in.PricePerNight != 0 {
		if in.PricePerNight < 0 {
			return nil, InvalidInputError{Field: "pricePerNight", Reason: "price must be greater than 0"}
		}
		r.PricePerNight = in.PricePerNight
	}
	if in.Hotel.Name != "" {
		r.Hotel = in.Hotel
	}
	if in.Amenities != nil {
		if err := validateAmenities(in.Amenities); err != nil {
			return nil, err
		}
		r.Amenities = in.Amenities
	}
	if in.Images != nil {
		r.Images = in.Images
	}
	if in.IsAvailable != nil {
		r.IsAvailable = *in.IsAvailable
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, InvalidInputError{Field: "rating", Reason: "rating must be between 0 and 5"}
		}
		r.Rating = *in.Rating
	}

	if err := s.Repo.Update(r); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	s.invalidateStats()
	return r, nil
}

// DeleteRoom removes a room unless active bookings still reference it.
func (s *DefaultRoomService) DeleteRoom(id string) error {
	if _, err := s.GetRoom(id); err != nil {
		return err
	}

	active, err := s.BookingRepo.CountActiveForRoom(id)
	if err != nil {
		return fmt.Errorf("failed to check active bookings: %w", err)
	}
	if active > 0 {
		return ActiveBookingsError{ID: id}
	}

	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	s.invalidateStats()
	utils.GetLogger().Info("room deleted", zap.String("roomId", id))
	return nil
}

// ListRooms returns one filtered, sorted catalog page.
func (s *DefaultRoomService) ListRooms(filter models.RoomFilter, page models.PageRequest) ([]models.Room, models.Pagination, error) {
	rooms, total, err := s.Repo.List(filter, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, models.NewPagination(page.Page, page.Limit, total), nil
}

// SearchAvailable returns rooms with no conflicting active booking in the
// range. Booked room ids are collected in one query and excluded, rather
// than probing each room for conflicts individually. Dates are truncated to
// UTC midnight first, the same calendar-day granularity bookings are stored
// at, so search and create agree on boundary conflicts.
func (s *DefaultRoomService) SearchAvailable(checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	checkIn = startOfDay(checkIn)
	checkOut = startOfDay(checkOut)
	if !checkOut.After(checkIn) {
		return nil, InvalidDateRangeError{Reason: "check-out date must be after check-in date"}
	}

	var rt models.RoomType
	if roomType != "" {
		parsed, ok := models.ParseRoomType(roomType)
		if !ok {
			return nil, InvalidInputError{Field: "roomType", Reason: "unknown room type"}
		}
		rt = parsed
	}

	bookedIDs, err := s.BookingRepo.ConflictingRoomIDs(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("failed to find conflicting bookings: %w", err)
	}

	rooms, err := s.Repo.ListExcluding(rt, bookedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}
	return rooms, nil
}

const (
	statsCacheKey = "rooms:stats"
	// Catalog mutations invalidate the key; the TTL bounds staleness from
	// booking writes, which happen outside this service.
	statsCacheTTL = 2 * time.Minute
)

// Stats returns the aggregate catalog snapshot, served from the cache when a
// fresh copy exists.
func (s *DefaultRoomService) Stats() (*models.RoomStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(context.Background(), statsCacheKey); err == nil {
			var cached models.RoomStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalRooms, err := s.Repo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	totalBookings, err := s.BookingRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	activeBookings, err := s.BookingRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	avgPrice, err := s.Repo.AveragePrice()
	if err != nil {
		return nil, fmt.Errorf("failed to compute average price: %w", err)
	}
	byType, err := s.Repo.CountByType()
	if err != nil {
		return nil, fmt.Errorf("failed to group rooms by type: %w", err)
	}

	stats := &models.RoomStats{
		TotalRooms:     totalRooms,
		TotalBookings:  totalBookings,
		ActiveBookings: activeBookings,
		AvgPrice:       math.Round(avgPrice*100) / 100,
		RoomsByType:    byType,
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(context.Background(), statsCacheKey, string(raw), statsCacheTTL); err != nil {
				utils.GetLogger().Warn("failed to cache room stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// invalidateStats drops the cached snapshot after a catalog mutation.
func (s *DefaultRoomService) invalidateStats() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), statsCacheKey); err != nil {
		utils.GetLogger().Warn("failed to invalidate room stats cache", zap.Error(err))
	}
}

// AddImage appends an uploaded image URL to the room.
func (s *DefaultRoomService) AddImage(id, imageURL string) (*models.Room, error) {
	r, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	r.Images = append(r.Images, imageURL)
	if err := s.Repo.Update(r); err != nil {
		return nil, fmt.Errorf("failed to attach image to room: %w", err)
	}
	return r, nil
}

// startOfDay truncates to UTC midnight, the granularity booking dates are
// stored at.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateAmenities(amenities []string) error {
	for _, a := range amenities {
		if !models.ValidAmenities[a] {
			return InvalidInputError{Field: "amenities", Reason: fmt.Sprintf("unknown amenity %q", a)}
		}
	}
	return nil
}
