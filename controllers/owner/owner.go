package ownerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelMarrocos/CarRental/middleware"
	"github.com/KelMarrocos/CarRental/models"
)

// -------- Request Structs --------
type CarPayload struct {
	Brand           string   `json:"brand" binding:"required"`
	Model           string   `json:"model" binding:"required"`
	Image           string   `json:"image" binding:"required"`
	Year            int      `json:"year" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	SeatingCapacity int      `json:"seating_capacity" binding:"required"`
	FuelType        string   `json:"fuel_type" binding:"required"`
	Transmission    string   `json:"transmission" binding:"required"`
	PricePerDay     float64  `json:"pricePerDay" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Images          []string `json:"images"`
}

// UpdateCarPayload uses pointers so absent fields are left untouched.
// Ownership and identity are never updatable.
type UpdateCarPayload struct {
	Brand           *string   `json:"brand"`
	Model           *string   `json:"model"`
	Image           *string   `json:"image"`
	Year            *int      `json:"year"`
	Category        *string   `json:"category"`
	SeatingCapacity *int      `json:"seating_capacity"`
	FuelType        *string   `json:"fuel_type"`
	Transmission    *string   `json:"transmission"`
	PricePerDay     *float64  `json:"pricePerDay"`
	Location        *string   `json:"location"`
	Description     *string   `json:"description"`
	Images          *[]string `json:"images"`
}

// -------- Helpers --------

// applyCarUpdates writes the payload's present fields onto the car and
// returns the matching column names for a selective persist. Ownership and
// identity never appear in the payload, so they cannot change here.
func applyCarUpdates(car *models.Car, req UpdateCarPayload) []string {
	var changed []string
	if req.Brand != nil {
		car.Brand = *req.Brand
		changed = append(changed, "brand")
	}
	if req.Model != nil {
		car.Model = *req.Model
		changed = append(changed, "model")
	}
	if req.Image != nil {
		car.Image = *req.Image
		changed = append(changed, "image")
	}
	if req.Year != nil {
		car.Year = *req.Year
		changed = append(changed, "year")
	}
	if req.Category != nil {
		car.Category = *req.Category
		changed = append(changed, "category")
	}
	if req.SeatingCapacity != nil {
		car.SeatingCapacity = *req.SeatingCapacity
		changed = append(changed, "seating_capacity")
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
		changed = append(changed, "fuel_type")
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
		changed = append(changed, "transmission")
	}
	if req.PricePerDay != nil {
		car.PricePerDay = *req.PricePerDay
		changed = append(changed, "price_per_day")
	}
	if req.Location != nil {
		car.Location = *req.Location
		changed = append(changed, "location")
	}
	if req.Description != nil {
		car.Description = *req.Description
		changed = append(changed, "description")
	}
	if req.Images != nil {
		car.Images = *req.Images
		changed = append(changed, "images")
	}
	return changed
}

// ownedCar loads a car and verifies it belongs to the caller.
func ownedCar(db *gorm.DB, carID, ownerID string) (*models.Car, error) {
	var car models.Car
	if err := db.First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Car not found")
		}
		return nil, err
	}
	if car.OwnerID == nil || *car.OwnerID != ownerID {
		return nil, errors.New("Unauthorized")
	}
	return &car, nil
}

// -------- Handlers --------

// POST /api/owner/change-role is a one-way upgrade from user to owner.
func ChangeRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		if err := db.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("role", models.RoleOwner).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Now you can list cars"})
	}
}

// POST /api/owner/add-car
func AddCarHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok || !user.IsOwner() {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req CarPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid car data"})
			return
		}

		ownerID := user.ID
		car := models.Car{
			ID:              uuid.NewString(),
			OwnerID:         &ownerID,
			Brand:           req.Brand,
			Model:           req.Model,
			Image:           req.Image,
			Year:            req.Year,
			Category:        req.Category,
			SeatingCapacity: req.SeatingCapacity,
			FuelType:        req.FuelType,
			Transmission:    req.Transmission,
			PricePerDay:     req.PricePerDay,
			Location:        req.Location,
			Description:     req.Description,
			IsAvailable:     true,
			Images:          req.Images,
		}
		if err := db.Create(&car).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car Added", "car": car})
	}
}

// GET /api/owner/cars
func GetOwnerCarsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		var cars []models.Car
		if err := db.Where("owner_id = ?", user.ID).Find(&cars).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cars": cars})
	}
}

// PUT /api/owner/car/:id
func UpdateCarHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		car, err := ownedCar(db, c.Param("id"), user.ID)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		var req UpdateCarPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid car data"})
			return
		}

		changed := applyCarUpdates(car, req)
		if len(changed) > 0 {
			if err := db.Model(car).Select(changed).Updates(car).Error; err != nil {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
				return
			}
		}

		// car already carries the applied updates, so the echo is never stale
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car Updated", "car": car})
	}
}

// PATCH /api/owner/car/:id/toggle
func ToggleCarAvailabilityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		car, err := ownedCar(db, c.Param("id"), user.ID)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		car.IsAvailable = !car.IsAvailable
		if err := db.Model(car).Update("is_available", car.IsAvailable).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Availability Toggled", "car": car})
	}
}

// DELETE /api/owner/car/:id soft-deletes: the owner is cleared, the row kept.
func DeleteCarHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		car, err := ownedCar(db, c.Param("id"), user.ID)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		car.Delist()
		if err := db.Model(car).
			Select("owner_id", "is_available").
			Updates(map[string]interface{}{"owner_id": nil, "is_available": false}).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Car Removed"})
	}
}

// GET /api/owner/dashboard
func GetDashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok || !user.IsOwner() {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var totalCars, totalBookings, pendingBookings, completedBookings int64

		if err := db.Model(&models.Car{}).Where("owner_id = ?", user.ID).Count(&totalCars).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}
		db.Model(&models.Booking{}).Where("owner_id = ?", user.ID).Count(&totalBookings)
		db.Model(&models.Booking{}).Where("owner_id = ? AND status = ?", user.ID, models.BookingStatusPending).Count(&pendingBookings)
		db.Model(&models.Booking{}).Where("owner_id = ? AND status = ?", user.ID, models.BookingStatusConfirmed).Count(&completedBookings)

		var recentBookings []models.Booking
		db.Preload("Car").
			Where("owner_id = ?", user.ID).
			Order("created_at desc").
			Limit(5).
			Find(&recentBookings)

		var monthlyRevenue float64
		db.Model(&models.Booking{}).
			Where("owner_id = ? AND status = ?", user.ID, models.BookingStatusConfirmed).
			Select("COALESCE(SUM(price), 0)").
			Scan(&monthlyRevenue)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"totalCars":         totalCars,
				"totalBookings":     totalBookings,
				"pendingBookings":   pendingBookings,
				"completedBookings": completedBookings,
				"recentBookings":    recentBookings,
				"monthlyRevenue":    monthlyRevenue,
			},
		})
	}
}
