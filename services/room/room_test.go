package room

import (
	"context"
	"testing"
	"time"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// memRoomRepo is an in-memory RoomRepository used by the service tests.
type memRoomRepo struct {
	rooms map[string]*models.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[string]*models.Room)}
}

func (f *memRoomRepo) Create(r *models.Room) error {
	clone := *r
	f.rooms[r.ID] = &clone
	return nil
}

func (f *memRoomRepo) GetByID(id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *memRoomRepo) Update(r *models.Room) error {
	clone := *r
	f.rooms[r.ID] = &clone
	return nil
}

func (f *memRoomRepo) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

func (f *memRoomRepo) List(filter models.RoomFilter, page models.PageRequest) ([]models.Room, int64, error) {
	var all []models.Room
	for _, r := range f.rooms {
		all = append(all, *r)
	}
	return all, int64(len(all)), nil
}

func (f *memRoomRepo) ListExcluding(roomType models.RoomType, excludedIDs []string) ([]models.Room, error) {
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}
	var out []models.Room
	for _, r := range f.rooms {
		if excluded[r.ID] {
			continue
		}
		if roomType != "" && r.RoomType != roomType {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *memRoomRepo) CountAll() (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *memRoomRepo) AveragePrice() (float64, error) {
	if len(f.rooms) == 0 {
		return 0, nil
	}
	var sum float64
	for _, r := range f.rooms {
		sum += r.PricePerNight
	}
	return sum / float64(len(f.rooms)), nil
}

func (f *memRoomRepo) CountByType() (map[string]int64, error) {
	out := make(map[string]int64)
	for _, r := range f.rooms {
		out[string(r.RoomType)]++
	}
	return out, nil
}

// memBookingRepo is a minimal in-memory BookingRepository; the room service
// only reads from it.
type memBookingRepo struct {
	bookings []*models.Booking
}

func (f *memBookingRepo) CreateIfAvailable(ctx context.Context, b *models.Booking) error {
	clone := *b
	f.bookings = append(f.bookings, &clone)
	return nil
}

func (f *memBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (f *memBookingRepo) UpdateStatus(id string, status models.BookingStatus) error { return nil }

func (f *memBookingRepo) Delete(id string) error { return nil }

func (f *memBookingRepo) List(userID string, page models.PageRequest) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *memBookingRepo) FindConflicting(roomID string, checkIn, checkOut time.Time) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.IsActive() && b.Overlaps(checkIn, checkOut) {
			return b, nil
		}
	}
	return nil, nil
}

func (f *memBookingRepo) ConflictingRoomIDs(checkIn, checkOut time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, b := range f.bookings {
		if b.Status.IsActive() && b.Overlaps(checkIn, checkOut) && !seen[b.RoomID] {
			seen[b.RoomID] = true
			ids = append(ids, b.RoomID)
		}
	}
	return ids, nil
}

func (f *memBookingRepo) CountActiveForRoom(roomID string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (f *memBookingRepo) CountAll() (int64, error) { return int64(len(f.bookings)), nil }

func (f *memBookingRepo) CountActive() (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (f *memBookingRepo) CompleteExpired(now time.Time) (int64, error) { return 0, nil }

func newTestService() (*DefaultRoomService, *memRoomRepo, *memBookingRepo) {
	rooms := newMemRoomRepo()
	bookings := &memBookingRepo{}
	return &DefaultRoomService{Repo: rooms, BookingRepo: bookings}, rooms, bookings
}

func validRoomInput() RoomInput {
	return RoomInput{
		Hotel:         models.Hotel{Name: "Seaside Inn", City: "Lisbon"},
		RoomType:      "Double Bed",
		PricePerNight: 150,
		Amenities:     []string{"Free WiFi", "Pool Access"},
		Images:        []string{"https://img.example.com/1.jpg"},
	}
}

func TestCreateRoom(t *testing.T) {
	svc, _, _ := newTestService()

	r, err := svc.CreateRoom(validRoomInput())
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, models.RoomDouble, r.RoomType)
	assert.True(t, r.IsAvailable)
}

func TestCreateRoomValidation(t *testing.T) {
	svc, _, _ := newTestService()

	in := validRoomInput()
	in.Hotel.Name = ""
	_, err := svc.CreateRoom(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRoomInput()
	in.RoomType = "Penthouse"
	_, err = svc.CreateRoom(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRoomInput()
	in.PricePerNight = 0
	_, err = svc.CreateRoom(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRoomInput()
	in.Amenities = []string{"Helipad"}
	_, err = svc.CreateRoom(in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validRoomInput()
	in.Images = nil
	_, err = svc.CreateRoom(in)
	assert.ErrorAs(t, err, &InvalidInputError{})
}

func TestUpdateRoomPartial(t *testing.T) {
	svc, _, _ := newTestService()
	r, err := svc.CreateRoom(validRoomInput())
	require.NoError(t, err)

	updated, err := svc.UpdateRoom(r.ID, RoomInput{PricePerNight: 200})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.PricePerNight)
	// Untouched fields survive.
	assert.Equal(t, models.RoomDouble, updated.RoomType)
	assert.Equal(t, "Seaside Inn", updated.Hotel.Name)

	_, err = svc.UpdateRoom("missing", RoomInput{PricePerNight: 200})
	assert.ErrorAs(t, err, &NotFoundError{})
}

func TestDeleteRoomWithActiveBookings(t *testing.T) {
	svc, _, bookings := newTestService()
	r, err := svc.CreateRoom(validRoomInput())
	require.NoError(t, err)

	bookings.CreateIfAvailable(context.Background(), &models.Booking{
		ID:           "b-1",
		RoomID:       r.ID,
		Status:       models.BookingConfirmed,
		CheckInDate:  date(2026, 3, 10),
		CheckOutDate: date(2026, 3, 12),
	})

	err = svc.DeleteRoom(r.ID)
	assert.ErrorAs(t, err, &ActiveBookingsError{})

	// Terminal bookings do not block deletion.
	bookings.bookings[0].Status = models.BookingCancelled
	err = svc.DeleteRoom(r.ID)
	assert.NoError(t, err)
}

func TestSearchAvailable(t *testing.T) {
	svc, rooms, bookings := newTestService()

	rooms.Create(&models.Room{ID: "room-1", RoomType: models.RoomDouble, PricePerNight: 150})
	rooms.Create(&models.Room{ID: "room-2", RoomType: models.RoomSuite, PricePerNight: 300})

	bookings.CreateIfAvailable(context.Background(), &models.Booking{
		ID:           "b-1",
		RoomID:       "room-1",
		Status:       models.BookingConfirmed,
		CheckInDate:  date(2026, 3, 10),
		CheckOutDate: date(2026, 3, 15),
	})

	// Overlapping range excludes the booked room.
	got, err := svc.SearchAvailable(date(2026, 3, 12), date(2026, 3, 14), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "room-2", got[0].ID)

	// A range touching the existing checkout still conflicts.
	got, err = svc.SearchAvailable(date(2026, 3, 15), date(2026, 3, 17), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "room-2", got[0].ID)

	// Disjoint range frees both rooms.
	got, err = svc.SearchAvailable(date(2026, 3, 20), date(2026, 3, 22), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Room type narrows the result.
	got, err = svc.SearchAvailable(date(2026, 3, 20), date(2026, 3, 22), "Suite")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "room-2", got[0].ID)

	_, err = svc.SearchAvailable(date(2026, 3, 22), date(2026, 3, 20), "")
	assert.ErrorAs(t, err, &InvalidDateRangeError{})

	_, err = svc.SearchAvailable(date(2026, 3, 20), date(2026, 3, 22), "Penthouse")
	assert.ErrorAs(t, err, &InvalidInputError{})
}

func TestSearchAvailableNormalizesTimeOfDay(t *testing.T) {
	svc, rooms, bookings := newTestService()

	rooms.Create(&models.Room{ID: "room-1", RoomType: models.RoomDouble, PricePerNight: 150})
	rooms.Create(&models.Room{ID: "room-2", RoomType: models.RoomSuite, PricePerNight: 300})

	bookings.CreateIfAvailable(context.Background(), &models.Booking{
		ID:           "b-1",
		RoomID:       "room-1",
		Status:       models.BookingConfirmed,
		CheckInDate:  date(2026, 3, 10),
		CheckOutDate: date(2026, 3, 15),
	})

	// A 10:00 check-in on the existing checkout day is the same calendar
	// day; the room must be excluded, matching what a create would reject.
	got, err := svc.SearchAvailable(
		time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 18, 30, 0, 0, time.UTC),
		"")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "room-2", got[0].ID)

	// Same calendar day with different clock times is still an empty range.
	_, err = svc.SearchAvailable(
		time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 22, 0, 0, 0, time.UTC),
		"")
	assert.ErrorAs(t, err, &InvalidDateRangeError{})
}

func TestStats(t *testing.T) {
	svc, rooms, bookings := newTestService()

	rooms.Create(&models.Room{ID: "room-1", RoomType: models.RoomDouble, PricePerNight: 100})
	rooms.Create(&models.Room{ID: "room-2", RoomType: models.RoomDouble, PricePerNight: 201})
	rooms.Create(&models.Room{ID: "room-3", RoomType: models.RoomSuite, PricePerNight: 300})

	bookings.CreateIfAvailable(context.Background(), &models.Booking{ID: "b-1", RoomID: "room-1", Status: models.BookingPending})
	bookings.CreateIfAvailable(context.Background(), &models.Booking{ID: "b-2", RoomID: "room-2", Status: models.BookingCancelled})

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalRooms)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.ActiveBookings)
	assert.Equal(t, 200.33, stats.AvgPrice)
	assert.Equal(t, int64(2), stats.RoomsByType["Double Bed"])
	assert.Equal(t, int64(1), stats.RoomsByType["Suite"])
}

// memCache is an in-memory utils.Cache for the stats caching tests.
type memCache struct {
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", utils.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestStatsCaching(t *testing.T) {
	svc, rooms, _ := newTestService()
	svc.Cache = newMemCache()

	rooms.Create(&models.Room{ID: "room-1", RoomType: models.RoomDouble, PricePerNight: 100})

	first, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalRooms)

	// A repo write that bypasses the service is not visible until the
	// cached snapshot is dropped.
	rooms.Create(&models.Room{ID: "room-2", RoomType: models.RoomSuite, PricePerNight: 300})
	second, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.TotalRooms)

	// Catalog mutations through the service invalidate the snapshot.
	_, err = svc.CreateRoom(validRoomInput())
	require.NoError(t, err)
	third, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.TotalRooms)
}

func TestAddImage(t *testing.T) {
	svc, _, _ := newTestService()
	r, err := svc.CreateRoom(validRoomInput())
	require.NoError(t, err)

	updated, err := svc.AddImage(r.ID, "https://img.example.com/2.jpg")
	require.NoError(t, err)
	assert.Len(t, updated.Images, 2)

	_, err = svc.AddImage("missing", "https://img.example.com/2.jpg")
	assert.ErrorAs(t, err, &NotFoundError{})
}
