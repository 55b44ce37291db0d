package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
)

type StatusUpdateRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

func Dashboard(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(a.Dashboard(), ""))
	}
}

func ListBookings(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter services.BookingFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		bookings, err := a.FilterBookings(filter)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}

func GetBooking(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		booking, err := a.Booking(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func UpdateBookingStatus(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req StatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		booking, err := a.UpdateBookingStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

type customersPayload struct {
	Customers []services.Customer       `json:"customers"`
	Summary   *services.CustomerSummary `json:"summary"`
}

func ListCustomers(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers := a.Customers(c.Query("search"))
		c.JSON(http.StatusOK, models.ListResponse(customersPayload{
			Customers: customers,
			Summary:   a.CustomerSummary(),
		}, len(customers)))
	}
}

func AdminVenues(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := a.Venues()
		c.JSON(http.StatusOK, models.ListResponse(catalog, catalog.Total))
	}
}

type notificationsPayload struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

func ListNotifications(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifs := a.Notifications()
		c.JSON(http.StatusOK, models.ListResponse(notificationsPayload{
			Notifications: notifs,
			Unread:        a.UnreadCount(),
		}, len(notifs)))
	}
}

func MarkNotificationRead(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if !a.MarkNotificationRead(c.Request.Context(), id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("notification not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"unread": a.UnreadCount()}, "Notification marked as read"))
	}
}

func MarkAllNotificationsRead(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := a.MarkAllNotificationsRead(c.Request.Context())
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"updated": n}, "All notifications marked as read"))
	}
}
