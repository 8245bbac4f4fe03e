package offer

import (
	"testing"
	"time"

	"stayhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOfferRepo is an in-memory OfferRepository used by the service tests.
type memOfferRepo struct {
	offers map[string]*models.Offer
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{offers: make(map[string]*models.Offer)}
}

func (f *memOfferRepo) Create(o *models.Offer) error {
	clone := *o
	f.offers[o.ID] = &clone
	return nil
}

func (f *memOfferRepo) GetByID(id string) (*models.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *memOfferRepo) Update(o *models.Offer) error {
	clone := *o
	f.offers[o.ID] = &clone
	return nil
}

func (f *memOfferRepo) Delete(id string) error {
	delete(f.offers, id)
	return nil
}

func (f *memOfferRepo) List(active *bool, page models.PageRequest) ([]models.Offer, int64, error) {
	now := time.Now().UTC()
	var out []models.Offer
	for _, o := range f.offers {
		if active != nil && o.ActiveAt(now) != *active {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *memOfferRepo) DeactivateExpired(now time.Time) (int64, error) {
	var n int64
	for _, o := range f.offers {
		if o.IsActive && o.EndDate.Before(now) {
			o.IsActive = false
			n++
		}
	}
	return n, nil
}

// memRoomRepo only backs the room existence check.
type memRoomRepo struct {
	rooms map[string]*models.Room
}

func (f *memRoomRepo) Create(r *models.Room) error { f.rooms[r.ID] = r; return nil }

func (f *memRoomRepo) GetByID(id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (f *memRoomRepo) Update(r *models.Room) error { return nil }
func (f *memRoomRepo) Delete(id string) error      { return nil }

func (f *memRoomRepo) List(filter models.RoomFilter, page models.PageRequest) ([]models.Room, int64, error) {
	return nil, 0, nil
}

func (f *memRoomRepo) ListExcluding(roomType models.RoomType, excludedIDs []string) ([]models.Room, error) {
	return nil, nil
}

func (f *memRoomRepo) CountAll() (int64, error)               { return 0, nil }
func (f *memRoomRepo) AveragePrice() (float64, error)         { return 0, nil }
func (f *memRoomRepo) CountByType() (map[string]int64, error) { return nil, nil }

func newTestService() (*DefaultOfferService, *memOfferRepo) {
	offers := newMemOfferRepo()
	rooms := &memRoomRepo{rooms: map[string]*models.Room{
		"room-1": {ID: "room-1", RoomType: models.RoomDouble, PricePerNight: 150},
	}}
	return &DefaultOfferService{Repo: offers, RoomRepo: rooms}, offers
}

var admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func validOfferInput() OfferInput {
	return OfferInput{
		Title:              "Spring Special",
		DiscountPercentage: 20,
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31",
		RoomID:             "room-1",
	}
}

func TestCreateOffer(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.CreateOffer(admin, validOfferInput())
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "admin-1", o.CreatedBy)
	assert.True(t, o.IsActive)
	assert.True(t, o.ActiveAt(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, o.ActiveAt(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)))
}

func TestCreateOfferValidation(t *testing.T) {
	svc, _ := newTestService()

	in := validOfferInput()
	in.Title = ""
	_, err := svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validOfferInput()
	in.DiscountPercentage = 0
	_, err = svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validOfferInput()
	in.DiscountPercentage = 101
	_, err = svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validOfferInput()
	in.StartDate = "not-a-date"
	_, err = svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidInputError{})

	in = validOfferInput()
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	_, err = svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidDateRangeError{})

	in = validOfferInput()
	in.RoomID = "missing"
	_, err = svc.CreateOffer(admin, in)
	assert.ErrorAs(t, err, &InvalidInputError{})
}

func TestUpdateOffer(t *testing.T) {
	svc, _ := newTestService()
	o, err := svc.CreateOffer(admin, validOfferInput())
	require.NoError(t, err)

	updated, err := svc.UpdateOffer(o.ID, OfferInput{DiscountPercentage: 35})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.DiscountPercentage)
	assert.Equal(t, "Spring Special", updated.Title)

	inactive := false
	updated, err = svc.UpdateOffer(o.ID, OfferInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateOffer("missing", OfferInput{DiscountPercentage: 35})
	assert.ErrorAs(t, err, &NotFoundError{})
}

func TestDeleteOffer(t *testing.T) {
	svc, _ := newTestService()
	o, err := svc.CreateOffer(admin, validOfferInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOffer(o.ID))
	assert.ErrorAs(t, svc.DeleteOffer(o.ID), &NotFoundError{})
}

func TestListOffersActiveFilter(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreateOffer(admin, OfferInput{
		Title:              "Current",
		DiscountPercentage: 10,
		StartDate:          time.Now().UTC().Add(-24 * time.Hour).Format("2006-01-02"),
		EndDate:            time.Now().UTC().Add(30 * 24 * time.Hour).Format("2006-01-02"),
		RoomID:             "room-1",
	})
	require.NoError(t, err)

	expired := &models.Offer{
		ID:                 "offer-old",
		Title:              "Expired",
		DiscountPercentage: 15,
		StartDate:          time.Now().UTC().Add(-60 * 24 * time.Hour),
		EndDate:            time.Now().UTC().Add(-30 * 24 * time.Hour),
		RoomID:             "room-1",
		IsActive:           true,
	}
	require.NoError(t, repo.Create(expired))

	active := true
	offers, pagination, err := svc.ListOffers(&active, models.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Current", offers[0].Title)
	assert.Equal(t, int64(1), pagination.Total)

	n, err := repo.DeactivateExpired(time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
