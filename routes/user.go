package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingControllers "github.com/KelMarrocos/CarRental/controllers/booking"
	userControllers "github.com/KelMarrocos/CarRental/controllers/user"
	"github.com/KelMarrocos/CarRental/middleware"
)

// SetupUserRoutes registers all "/api/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api/user")
	{
		// public
		userGroup.POST("/register", userControllers.RegisterHandler(db))
		userGroup.POST("/login", userControllers.LoginHandler(db))
		userGroup.GET("/cars", userControllers.GetCarsHandler(db))

		// protected
		userGroup.GET("/data", middleware.Protect(db), userControllers.GetUserDataHandler(db))
		userGroup.GET("/bookings", middleware.Protect(db), bookingControllers.GetUserBookingsHandler(db))
	}
}
