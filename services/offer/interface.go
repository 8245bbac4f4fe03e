package offer

import (
	offerRepo "stayhaven/database/repository/offer"
	roomRepo "stayhaven/database/repository/room"
	"stayhaven/models"
)

// OfferInput carries the fields of an offer create or update request.
type OfferInput struct {
	Title              string
	Description        string
	DiscountPercentage int
	StartDate          string
	EndDate            string
	RoomID             string
	IsActive           *bool
}

// OfferService manages time-bounded room discounts.
type OfferService interface {
	CreateOffer(actor models.Actor, in OfferInput) (*models.Offer, error)
	GetOffer(id string) (*models.Offer, error)
	UpdateOffer(id string, in OfferInput) (*models.Offer, error)
	DeleteOffer(id string) error

	// ListOffers returns one page, optionally filtered by whether the
	// offer is currently active.
	ListOffers(active *bool, page models.PageRequest) ([]models.Offer, models.Pagination, error)
}

// DefaultOfferService is the production implementation.
type DefaultOfferService struct {
	Repo     offerRepo.OfferRepository
	RoomRepo roomRepo.RoomRepository
}
