package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/container"
	"github.com/joshua-takyi/hallbook/internal/handlers"
	"github.com/joshua-takyi/hallbook/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	secureCookies := container.Config.IsProduction()

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(container.AuthService, container.Logger)

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "hallbook-api",
			})
		})
	}

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", handlers.Login(container.AuthService, secureCookies))
		authRoutes.POST("/logout", handlers.Logout(container.AuthService, secureCookies))
		authRoutes.GET("/session", middleware.OptionalAuth(container.AuthService), handlers.Session(container.AuthService))
	}

	venueRoutes := v1.Group("/venues")
	{
		venueRoutes.GET("", handlers.ListVenues(container.VenueService))
		venueRoutes.GET("/halls", handlers.ListHalls(container.VenueService))
		venueRoutes.GET("/halls/:id", handlers.GetHall(container.VenueService))
		venueRoutes.GET("/rooms", handlers.ListRooms(container.VenueService))
		venueRoutes.GET("/rooms/:id", handlers.GetRoom(container.VenueService))
	}

	bookingRoutes := v1.Group("/bookings")
	{
		bookingRoutes.GET("/time-slots", handlers.TimeSlots(container.BookingService))
		bookingRoutes.GET("/date-limits", handlers.DateLimits(container.BookingService))
		bookingRoutes.POST("/quote", handlers.QuoteBooking(container.BookingService))
		bookingRoutes.POST("", auth, handlers.Checkout(container.BookingService))
	}

	v1.GET("/payments/methods", handlers.PaymentMethods(container.PaymentService))

	adminRoutes := v1.Group("/admin")
	adminRoutes.Use(auth, middleware.RequireAdmin())
	{
		adminRoutes.GET("/dashboard", handlers.Dashboard(container.AdminService))
		adminRoutes.GET("/bookings", handlers.ListBookings(container.AdminService))
		adminRoutes.GET("/bookings/:id", handlers.GetBooking(container.AdminService))
		adminRoutes.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(container.AdminService))
		adminRoutes.GET("/customers", handlers.ListCustomers(container.AdminService))
		adminRoutes.GET("/venues", handlers.AdminVenues(container.AdminService))
		adminRoutes.GET("/notifications", handlers.ListNotifications(container.AdminService))
		adminRoutes.POST("/notifications/read-all", handlers.MarkAllNotificationsRead(container.AdminService))
		adminRoutes.POST("/notifications/:id/read", handlers.MarkNotificationRead(container.AdminService))
	}

	return r
}
