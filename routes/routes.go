package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up User, Booking, and Owner route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// user routes (register/login/catalog public, rest JWT-protected)
	SetupUserRoutes(r, db)

	// booking routes (availability search public, rest JWT-protected)
	SetupBookingRoutes(r, db)

	// owner routes (JWT-protected, owner-role gated inside)
	SetupOwnerRoutes(r, db)

	// prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
