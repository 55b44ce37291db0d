package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
	"github.com/joshua-takyi/hallbook/internal/store"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// left to middleware.ErrorHandler.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, store.ErrInvalidBooking),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidQuote),
		errors.Is(err, services.ErrInvalidCard),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrUnsupportedPaymentMethod):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	default:
		_ = c.Error(err)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid id parameter"))
		return 0, false
	}
	return id, true
}
