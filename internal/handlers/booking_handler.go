package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
)

func TimeSlots(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots := b.TimeSlots()
		c.JSON(http.StatusOK, models.ListResponse(slots, len(slots)))
	}
}

func DateLimits(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(b.DateLimits(c.Query("checkIn")), ""))
	}
}

func QuoteBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		quote, err := b.Quote(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(quote, ""))
	}
}

// Checkout blocks for the simulated payment delay of the chosen method.
func Checkout(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		res, err := b.Checkout(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(res, "Booking request submitted successfully"))
	}
}

func PaymentMethods(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		methods := p.Methods()
		c.JSON(http.StatusOK, models.ListResponse(methods, len(methods)))
	}
}
