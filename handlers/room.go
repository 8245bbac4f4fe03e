package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"stayhaven/models"
	roomSvc "stayhaven/services/room"
	"stayhaven/services/storage"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes the room catalog, availability search and stats.
type RoomHandler struct {
	Svc        roomSvc.RoomService
	StorageSvc storage.StorageService
}

// NewRoomHandler creates a new RoomHandler instance.
func NewRoomHandler(svc roomSvc.RoomService, storageSvc storage.StorageService) *RoomHandler {
	return &RoomHandler{Svc: svc, StorageSvc: storageSvc}
}

type roomRequest struct {
	Hotel         models.Hotel `json:"hotel"`
	RoomType      string       `json:"roomType"`
	PricePerNight float64      `json:"pricePerNight"`
	Amenities     []string     `json:"amenities"`
	Images        []string     `json:"images"`
	IsAvailable   *bool        `json:"isAvailable"`
	Rating        *float64     `json:"rating"`
}

func (r roomRequest) toInput() roomSvc.RoomInput {
	return roomSvc.RoomInput{
		Hotel:         r.Hotel,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		Rating:        r.Rating,
	}
}

// ListRoomsHandler handles GET /hotels with filtering, sorting and pagination.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	filter := models.RoomFilter{
		Search:   c.Query("search"),
		RoomType: models.RoomType(c.Query("roomType")),
	}
	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = p
		}
	}
	if v := c.Query("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filter.Amenities = append(filter.Amenities, a)
			}
		}
	}
	filter.SortField = c.Query("sortBy")
	filter.SortAsc = c.DefaultQuery("order", "desc") == "asc"

	rooms, pagination, err := h.Svc.ListRooms(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "pagination": pagination})
}

// AvailableRoomsHandler handles
// GET /hotels/available?checkInDate=&checkOutDate=&roomType=.
// The shorter checkIn/checkOut spellings are accepted as aliases.
func (h *RoomHandler) AvailableRoomsHandler(c *gin.Context) {
	checkInStr := c.Query("checkInDate")
	if checkInStr == "" {
		checkInStr = c.Query("checkIn")
	}
	checkOutStr := c.Query("checkOutDate")
	if checkOutStr == "" {
		checkOutStr = c.Query("checkOut")
	}
	if checkInStr == "" || checkOutStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate and checkOutDate query parameters are required")
		return
	}
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate must be an RFC 3339 or YYYY-MM-DD date")
		return
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOutDate must be an RFC 3339 or YYYY-MM-DD date")
		return
	}

	roomType := c.Query("roomType")
	rooms, err := h.Svc.SearchAvailable(checkIn, checkOut, roomType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"availableRooms": rooms,
		"searchCriteria": gin.H{
			"checkInDate":  checkInStr,
			"checkOutDate": checkOutStr,
			"roomType":     roomType,
		},
	})
}

// StatsHandler handles GET /hotels/stats.
func (h *RoomHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Svc.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetRoomHandler handles GET /hotels/:id.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	r, err := h.Svc.GetRoom(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": r})
}

// CreateRoomHandler handles POST /hotels (admin only).
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	r, err := h.Svc.CreateRoom(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": r})
}

// UpdateRoomHandler handles PUT /hotels/:id (admin only).
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	r, err := h.Svc.UpdateRoom(c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": r})
}

// DeleteRoomHandler handles DELETE /hotels/:id (admin only). Uploaded images
// are removed from cloud storage once the room itself is gone.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	r, err := h.Svc.GetRoom(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Svc.DeleteRoom(r.ID); err != nil {
		respondError(c, err)
		return
	}
	h.cleanupImages(c, r.Images)
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// cleanupImages is best effort; a stranded asset never fails the request.
func (h *RoomHandler) cleanupImages(c *gin.Context, images []string) {
	if h.StorageSvc == nil {
		return
	}
	for _, img := range images {
		publicID := storage.PublicIDFromURL(img)
		if publicID == "" {
			continue
		}
		if err := h.StorageSvc.DeleteImage(c.Request.Context(), publicID); err != nil {
			utils.GetLogger().Warn("failed to delete room image",
				zap.String("publicId", publicID), zap.Error(err))
		}
	}
}

// UploadImageHandler handles POST /hotels/:id/images (admin only). The image
// is staged to a temp file, pushed to cloud storage and attached to the room.
func (h *RoomHandler) UploadImageHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file not provided")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save uploaded file")
		return
	}
	defer os.Remove(tempFilePath)

	result, err := h.StorageSvc.UploadImage(c.Request.Context(), tempFilePath, "rooms")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image")
		return
	}

	r, err := h.Svc.AddImage(c.Param("id"), result.SecureURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": r, "imageUrl": result.SecureURL})
}
