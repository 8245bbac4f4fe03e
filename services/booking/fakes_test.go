package booking

import (
	"context"
	"sort"
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	"stayhaven/models"
)

// fakeBookingRepo is an in-memory BookingRepository used by the service tests.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) CreateIfAvailable(ctx context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.RoomID == b.RoomID && existing.Status.IsActive() &&
			existing.Overlaps(b.CheckInDate, b.CheckOutDate) {
			return bookingRepo.ErrDateConflict
		}
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
		b.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) List(userID string, page models.PageRequest) ([]models.Booking, int64, error) {
	var all []models.Booking
	for _, b := range f.bookings {
		if userID == "" || b.UserID == userID {
			all = append(all, *b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := int(page.Skip())
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeBookingRepo) FindConflicting(roomID string, checkIn, checkOut time.Time) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.IsActive() && b.Overlaps(checkIn, checkOut) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ConflictingRoomIDs(checkIn, checkOut time.Time) ([]string, error) {
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

func (f *fakeBookingRepo) CountActiveForRoom(roomID string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CountAll() (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountActive() (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CompleteExpired(now time.Time) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status == models.BookingConfirmed && b.CheckOutDate.Before(now) {
			b.Status = models.BookingCompleted
			n++
		}
	}
	return n, nil
}

// fakeRoomRepo is an in-memory RoomRepository.
type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*models.Room)}
}

func (f *fakeRoomRepo) Create(r *models.Room) error {
	clone := *r
	f.rooms[r.ID] = &clone
	return nil
}

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRoomRepo) Update(r *models.Room) error {
	clone := *r
	f.rooms[r.ID] = &clone
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) List(filter models.RoomFilter, page models.PageRequest) ([]models.Room, int64, error) {
	var all []models.Room
	for _, r := range f.rooms {
		all = append(all, *r)
	}
	return all, int64(len(all)), nil
}

func (f *fakeRoomRepo) ListExcluding(roomType models.RoomType, excludedIDs []string) ([]models.Room, error) {
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

func (f *fakeRoomRepo) CountAll() (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) AveragePrice() (float64, error) {
	if len(f.rooms) == 0 {
		return 0, nil
	}
	var sum float64
	for _, r := range f.rooms {
		sum += r.PricePerNight
	}
	return sum / float64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) CountByType() (map[string]int64, error) {
	out := make(map[string]int64)
	for _, r := range f.rooms {
		out[string(r.RoomType)]++
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIdentifier(identifier string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.UserName == identifier {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}
