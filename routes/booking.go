package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingControllers "github.com/KelMarrocos/CarRental/controllers/booking"
	"github.com/KelMarrocos/CarRental/middleware"
)

// SetupBookingRoutes registers all "/api/bookings/*" endpoints.
func SetupBookingRoutes(r *gin.Engine, db *gorm.DB) {
	bookings := r.Group("/api/bookings")
	{
		// public availability search
		bookings.POST("/check-availability", bookingControllers.CheckAvailabilityHandler(db))

		protected := bookings.Group("")
		protected.Use(middleware.Protect(db))
		{
			// renter side
			protected.POST("/create", bookingControllers.CreateBookingHandler(db))
			protected.GET("/user", bookingControllers.GetUserBookingsHandler(db))

			// owner side
			protected.GET("/owner", bookingControllers.GetOwnerBookingsHandler(db))
			protected.POST("/change-status", bookingControllers.ChangeBookingStatusHandler(db))
		}
	}
}
