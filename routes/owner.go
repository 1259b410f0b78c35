package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingControllers "github.com/KelMarrocos/CarRental/controllers/booking"
	ownerControllers "github.com/KelMarrocos/CarRental/controllers/owner"
	"github.com/KelMarrocos/CarRental/middleware"
)

// SetupOwnerRoutes registers all "/api/owner/*" endpoints. All require a JWT;
// handlers that mutate or read owner data additionally check the owner role
// or record ownership themselves.
func SetupOwnerRoutes(r *gin.Engine, db *gorm.DB) {
	owner := r.Group("/api/owner")
	owner.Use(middleware.Protect(db))
	{
		// role upgrade
		owner.POST("/change-role", ownerControllers.ChangeRoleHandler(db))

		// cars
		owner.POST("/add-car", ownerControllers.AddCarHandler(db))
		owner.GET("/cars", ownerControllers.GetOwnerCarsHandler(db))
		owner.PUT("/car/:id", ownerControllers.UpdateCarHandler(db))
		owner.PATCH("/car/:id/toggle", ownerControllers.ToggleCarAvailabilityHandler(db))
		owner.DELETE("/car/:id", ownerControllers.DeleteCarHandler(db))

		// dashboard
		owner.GET("/dashboard", ownerControllers.GetDashboardHandler(db))
		owner.GET("/bookings/export", ownerControllers.ExportBookingsToExcelHandler(db))

		// live booking updates for the dashboard
		owner.GET("/ws/bookings", bookingControllers.BookingWebSocketHandler)
	}
}
