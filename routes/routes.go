package routes

import (
	"time"

	"littlenest/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", bh.CreateBooking)
		bookings.GET("/:id", bh.GetBooking)
		bookings.PUT("/:id/status", bh.TransitionBooking)
		bookings.POST("/:id/cancel", bh.CancelBooking)
	}

	providers := r.Group("/api/providers")
	{
		providers.GET("/:providerID/availability", bh.GetRangeAvailability)
		providers.GET("/:providerID/availability/check", bh.CheckAvailability)
		providers.GET("/:providerID/bookings", bh.ListProviderBookings)
	}

	r.GET("/api/users/:userID/bookings", bh.ListUserBookings)
}
