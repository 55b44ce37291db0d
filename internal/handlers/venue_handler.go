package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
)

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog := v.Catalog()
		c.JSON(http.StatusOK, models.ListResponse(catalog, catalog.Total))
	}
}

func ListHalls(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		halls := v.Halls()
		c.JSON(http.StatusOK, models.ListResponse(halls, len(halls)))
	}
}

func ListRooms(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms := v.Rooms()
		c.JSON(http.StatusOK, models.ListResponse(rooms, len(rooms)))
	}
}

func GetHall(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		hall, found := v.Hall(id)
		if !found {
			c.JSON(http.StatusNotFound, models.ErrorResponse("hall not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(hall, ""))
	}
}

func GetRoom(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		room, found := v.Room(id)
		if !found {
			c.JSON(http.StatusNotFound, models.ErrorResponse("room not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(room, ""))
	}
}
