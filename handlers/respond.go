package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"stayhaven/models"
	bookingSvc "stayhaven/services/booking"
	offerSvc "stayhaven/services/offer"
	roomSvc "stayhaven/services/room"
	userSvc "stayhaven/services/user"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the HTTP status taxonomy and writes
// the {error} envelope. Unknown errors become opaque 500s.
func respondError(c *gin.Context, err error) {
	var (
		bookingNotFound  bookingSvc.NotFoundError
		bookingInput     bookingSvc.InvalidInputError
		bookingDateRange bookingSvc.InvalidDateRangeError
		bookingConflict  bookingSvc.ConflictError
		bookingForbidden bookingSvc.ForbiddenError
		bookingState     bookingSvc.InvalidStateError

		roomNotFound  roomSvc.NotFoundError
		roomInput     roomSvc.InvalidInputError
		roomDateRange roomSvc.InvalidDateRangeError
		roomActive    roomSvc.ActiveBookingsError

		offerNotFound  offerSvc.NotFoundError
		offerInput     offerSvc.InvalidInputError
		offerDateRange offerSvc.InvalidDateRangeError

		authErr      userSvc.AuthError
		dupEmail     userSvc.DuplicateEmailError
		userInput    userSvc.InvalidInputError
		userNotFound userSvc.NotFoundError
	)

	switch {
	case errors.As(err, &bookingNotFound), errors.As(err, &roomNotFound),
		errors.As(err, &offerNotFound), errors.As(err, &userNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &bookingInput), errors.As(err, &bookingDateRange),
		errors.As(err, &bookingState),
		errors.As(err, &roomInput), errors.As(err, &roomDateRange),
		errors.As(err, &offerInput), errors.As(err, &offerDateRange),
		errors.As(err, &userInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &bookingConflict), errors.As(err, &dupEmail),
		errors.As(err, &roomActive):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.As(err, &bookingForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		utils.GetLogger().Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// pageFromQuery reads ?page and ?limit with sane defaults.
func pageFromQuery(c *gin.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return models.NormalizePage(page, limit)
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
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
