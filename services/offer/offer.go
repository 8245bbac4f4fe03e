package offer

import (
	"fmt"
	"time"

	"stayhaven/models"
	"stayhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOffer validates and persists a discount on an existing room.
func (s *DefaultOfferService) CreateOffer(actor models.Actor, in OfferInput) (*models.Offer, error) {
	if in.Title == "" {
		return nil, InvalidInputError{Field: "title", Reason: "title is required"}
	}
	if in.DiscountPercentage < 1 || in.DiscountPercentage > 100 {
		return nil, InvalidInputError{Field: "discountPercentage", Reason: "discount must be between 1 and 100"}
	}
	start, end, err := parseWindow(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	room, err := s.RoomRepo.GetByID(in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, InvalidInputError{Field: "roomId", Reason: fmt.Sprintf("room %s not found", in.RoomID)}
	}

	o := &models.Offer{
		ID:                 uuid.New().String(),
		Title:              in.Title,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          start,
		EndDate:            end,
		RoomID:             in.RoomID,
		CreatedBy:          actor.ID,
		IsActive:           true,
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}

	if err := s.Repo.Create(o); err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	utils.GetLogger().Info("offer created",
		zap.String("offerId", o.ID),
		zap.String("roomId", o.RoomID),
		zap.Int("discount", o.DiscountPercentage))
	return o, nil
}

// GetOffer fetches one offer by id.
func (s *DefaultOfferService) GetOffer(id string) (*models.Offer, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offer: %w", err)
	}
	if o == nil {
		return nil, NotFoundError{ID: id}
	}
	return o, nil
}

// UpdateOffer applies the provided fields to an existing offer.
func (s *DefaultOfferService) UpdateOffer(id string, in OfferInput) (*models.Offer, error) {
	o, err := s.GetOffer(id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		o.Title = in.Title
	}
	if in.Description != "" {
		o.Description = in.Description
	}
	if in.DiscountPercentage != 0 {
		if in.DiscountPercentage < 1 || in.DiscountPercentage > 100 {
			return nil, InvalidInputError{Field: "discountPercentage", Reason: "discount must be between 1 and 100"}
		}
		o.DiscountPercentage = in.DiscountPercentage
	}
	if in.StartDate != "" || in.EndDate != "" {
		startStr, endStr := in.StartDate, in.EndDate
		if startStr == "" {
			startStr = o.StartDate.Format(time.RFC3339)
		}
		if endStr == "" {
			endStr = o.EndDate.Format(time.RFC3339)
		}
		start, end, err := parseWindow(startStr, endStr)
		if err != nil {
			return nil, err
		}
		o.StartDate, o.EndDate = start, end
	}
	if in.RoomID != "" && in.RoomID != o.RoomID {
		room, err := s.RoomRepo.GetByID(in.RoomID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch room: %w", err)
		}
		if room == nil {
			return nil, InvalidInputError{Field: "roomId", Reason: fmt.Sprintf("room %s not found", in.RoomID)}
		}
		o.RoomID = in.RoomID
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}

	if err := s.Repo.Update(o); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return o, nil
}

// DeleteOffer removes an offer.
func (s *DefaultOfferService) DeleteOffer(id string) error {
	if _, err := s.GetOffer(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	utils.GetLogger().Info("offer deleted", zap.String("offerId", id))
	return nil
}

// ListOffers returns one page of offers.
func (s *DefaultOfferService) ListOffers(active *bool, page models.PageRequest) ([]models.Offer, models.Pagination, error) {
	offers, total, err := s.Repo.List(active, page)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, models.NewPagination(page.Page, page.Limit, total), nil
}

func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidInputError{Field: "startDate", Reason: "must be an RFC 3339 or YYYY-MM-DD date"}
	}
	end, err := parseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidInputError{Field: "endDate", Reason: "must be an RFC 3339 or YYYY-MM-DD date"}
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, InvalidDateRangeError{Reason: "end date must be after start date"}
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
