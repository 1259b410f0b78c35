package bookingControllers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KelMarrocos/CarRental/models"
)

// -------- Request Structs --------
type CheckAvailabilityRequest struct {
	Location   string `json:"location" binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

// hasOverlap reports whether any live booking for the car collides with the
// requested range. Cancelled bookings no longer hold their slot. The interval
// test is pushed down to the store as the same inclusive comparison pair that
// models.Overlaps implements in-process.
func hasOverlap(db *gorm.DB, carID string, pickup, ret time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("car_id = ? AND status <> ?", carID, models.BookingStatusCancelled).
		Where("pickup_date <= ? AND return_date >= ?", ret, pickup).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CarIsFree is the availability contract for a single car and date range.
func CarIsFree(db *gorm.DB, carID string, pickup, ret time.Time) (bool, error) {
	overlap, err := hasOverlap(db, carID, pickup, ret)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

// filterAvailable runs one availability check per candidate concurrently and
// keeps the cars that come back free, preserving input order. A check that
// errors drops only that candidate instead of aborting the whole search.
func filterAvailable(cars []models.Car, isFree func(car models.Car) (bool, error)) []models.Car {
	keep := make([]bool, len(cars))
	var wg sync.WaitGroup

	for i := range cars {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			free, err := isFree(cars[i])
			if err != nil {
				log.Printf("availability check failed for car %s: %v", cars[i].ID, err)
				return
			}
			keep[i] = free
		}(i)
	}
	wg.Wait()

	available := make([]models.Car, 0, len(cars))
	for i, car := range cars {
		if keep[i] {
			available = append(available, car)
		}
	}
	return available
}

// FindAvailableCars returns the listed cars at a location with no booking
// overlapping the requested range.
func FindAvailableCars(db *gorm.DB, location string, pickup, ret time.Time) ([]models.Car, error) {
	var cars []models.Car
	err := db.
		Where("location = ? AND is_available = ? AND owner_id IS NOT NULL", location, true).
		Find(&cars).Error
	if err != nil {
		return nil, err
	}

	available := filterAvailable(cars, func(car models.Car) (bool, error) {
		return CarIsFree(db, car.ID, pickup, ret)
	})
	return available, nil
}

// -------- Handlers --------

// POST /api/bookings/check-availability
func CheckAvailabilityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "location, pickupDate, returnDate are required"})
			return
		}

		pickup, ret, err := ParseDateRange(req.PickupDate, req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		cars, err := FindAvailableCars(db, req.Location, pickup, ret)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "availableCars": cars})
	}
}
