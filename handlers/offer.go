package handlers

import (
	"net/http"
	"strconv"

	"stayhaven/middleware"
	offerSvc "stayhaven/services/offer"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
)

// OfferHandler exposes the discount offer endpoints.
type OfferHandler struct {
	Svc offerSvc.OfferService
}

// NewOfferHandler creates a new OfferHandler instance.
func NewOfferHandler(svc offerSvc.OfferService) *OfferHandler {
	return &OfferHandler{Svc: svc}
}

type offerRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	DiscountPercentage int    `json:"discountPercentage"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	RoomID             string `json:"roomId"`
	IsActive           *bool  `json:"isActive"`
}

func (r offerRequest) toInput() offerSvc.OfferInput {
	return offerSvc.OfferInput{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		RoomID:             r.RoomID,
		IsActive:           r.IsActive,
	}
}

// ListOffersHandler handles GET /offers?active=true|false.
func (h *OfferHandler) ListOffersHandler(c *gin.Context) {
	var active *bool
	if v := c.Query("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "active must be true or false")
			return
		}
		active = &parsed
	}

	offers, pagination, err := h.Svc.ListOffers(active, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers, "pagination": pagination})
}

// GetOfferHandler handles GET /offers/:id.
func (h *OfferHandler) GetOfferHandler(c *gin.Context) {
	o, err := h.Svc.GetOffer(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": o})
}

// CreateOfferHandler handles POST /offers (admin only).
func (h *OfferHandler) CreateOfferHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	o, err := h.Svc.CreateOffer(actor, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer": o})
}

// UpdateOfferHandler handles PUT /offers/:id (admin only).
func (h *OfferHandler) UpdateOfferHandler(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	o, err := h.Svc.UpdateOffer(c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": o})
}

// DeleteOfferHandler handles DELETE /offers/:id (admin only).
func (h *OfferHandler) DeleteOfferHandler(c *gin.Context) {
	if err := h.Svc.DeleteOffer(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}
