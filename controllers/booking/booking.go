package bookingControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KelMarrocos/CarRental/middleware"
	"github.com/KelMarrocos/CarRental/models"
)

// Failure kinds surfaced to the caller as success:false messages.
var (
	ErrInvalidDate       = errors.New("Invalid date format")
	ErrInvalidRange      = errors.New("returnDate must be after pickupDate")
	ErrCarNotFound       = errors.New("Car not found")
	ErrCarUnavailable    = errors.New("Car is not available")
	ErrBookingNotFound   = errors.New("Booking not found")
	ErrUnauthorized      = errors.New("Unauthorized")
	ErrInvalidStatus     = errors.New("Invalid status")
	ErrInvalidTransition = errors.New("Status change not allowed")
)

// -------- Request Structs --------
type CreateBookingRequest struct {
	Car        string `json:"car" binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

type ChangeStatusRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// -------- Helpers --------

// parseBookingDate accepts plain calendar dates or full RFC 3339 timestamps.
func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ParseDateRange validates a pickup/return pair: both must parse and the
// return date must be strictly after the pickup date.
func ParseDateRange(pickupStr, returnStr string) (time.Time, time.Time, error) {
	pickup, err := parseBookingDate(pickupStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	ret, err := parseBookingDate(returnStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ret.After(pickup) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return pickup, ret, nil
}

// AuthorizeStatusChange gates a status change: only the booking's owner may
// move it, and only along the transition table.
func AuthorizeStatusChange(booking *models.Booking, actingOwnerID string, to models.BookingStatus) error {
	if booking.OwnerID != actingOwnerID {
		return ErrUnauthorized
	}
	if !booking.Status.CanTransition(to) {
		return ErrInvalidTransition
	}
	return nil
}

// -------- Store --------

// bookingStore is the slice of the persistence layer the booking lifecycle
// uses while it holds row locks inside a transaction. Both lock methods must
// return the row as of the lock acquisition, so every check below runs
// against state no rival request can still change.
type bookingStore interface {
	LockCar(carID string) (*models.Car, error)
	LockBooking(bookingID string) (*models.Booking, error)
	HasOverlap(carID string, pickup, ret time.Time) (bool, error)
	InsertBooking(b *models.Booking) error
	UpdateBookingStatus(b *models.Booking, status models.BookingStatus) error
}

type gormBookingStore struct {
	tx *gorm.DB
}

func (s gormBookingStore) LockCar(carID string) (*models.Car, error) {
	var car models.Car
	if err := s.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s gormBookingStore) LockBooking(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s gormBookingStore) HasOverlap(carID string, pickup, ret time.Time) (bool, error) {
	return hasOverlap(s.tx, carID, pickup, ret)
}

func (s gormBookingStore) InsertBooking(b *models.Booking) error {
	return s.tx.Create(b).Error
}

func (s gormBookingStore) UpdateBookingStatus(b *models.Booking, status models.BookingStatus) error {
	if err := s.tx.Model(b).Update("status", status).Error; err != nil {
		return err
	}
	b.Status = status
	return nil
}

// -------- Core Logic --------

// createBooking runs the availability check and insert against an
// already-locked car: the caller serializes rival requests first.
func createBooking(store bookingStore, userID, carID string, pickup, ret time.Time) (*models.Booking, error) {
	car, err := store.LockCar(carID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID == nil {
		return nil, ErrCarUnavailable
	}

	overlap, err := store.HasOverlap(carID, pickup, ret)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrCarUnavailable
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		CarID:      car.ID,
		UserID:     userID,
		OwnerID:    *car.OwnerID,
		PickupDate: pickup,
		ReturnDate: ret,
		Status:     models.BookingStatusPending,
		Price:      models.TotalPrice(car.PricePerDay, pickup, ret),
		CreatedAt:  time.Now(),
	}
	if err := store.InsertBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CreateBooking checks availability and inserts the booking in one
// transaction. The car row is locked FOR UPDATE first, so concurrent creates
// for the same car serialize on that lock and the overlap re-check sees any
// booking committed by a rival transaction: at most one of two overlapping
// requests can succeed.
func CreateBooking(db *gorm.DB, userID, carID string, pickup, ret time.Time) (*models.Booking, error) {
	var booking *models.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		b, err := createBooking(gormBookingStore{tx}, userID, carID, pickup, ret)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// changeBookingStatus authorizes and applies a transition against an
// already-locked booking row, so the transition table is evaluated on the
// status no rival request can still move.
func changeBookingStatus(store bookingStore, bookingID, actingOwnerID string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := store.LockBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeStatusChange(booking, actingOwnerID, status); err != nil {
		return nil, err
	}

	if err := store.UpdateBookingStatus(booking, status); err != nil {
		return nil, err
	}
	return booking, nil
}

// ChangeBookingStatus applies an owner-authorized status transition inside a
// transaction holding a FOR UPDATE lock on the booking row. Only the status
// column is written; every other field stays as created.
func ChangeBookingStatus(db *gorm.DB, bookingID, actingOwnerID string, status models.BookingStatus) (*models.Booking, error) {
	var booking *models.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		b, err := changeBookingStatus(gormBookingStore{tx}, bookingID, actingOwnerID, status)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// -------- Handlers --------

// POST /api/bookings/create
func CreateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "car, pickupDate, returnDate are required"})
			return
		}

		pickup, ret, err := ParseDateRange(req.PickupDate, req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		booking, err := CreateBooking(db, user.ID, req.Car, pickup, ret)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		BroadcastBookingUpdate(db, booking.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking Created"})
	}
}

// GET /api/bookings/user
func GetUserBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		var bookings []models.Booking
		if err := db.Preload("Car").
			Where("user_id = ?", user.ID).
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
	}
}

// GET /api/bookings/owner
func GetOwnerBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok || !user.IsOwner() {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var bookings []models.Booking
		if err := db.Preload("Car").Preload("User").
			Where("owner_id = ?", user.ID).
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
	}
}

// POST /api/bookings/change-status
func ChangeBookingStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		var req ChangeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "bookingId and status are required"})
			return
		}

		status, err := models.ParseBookingStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": ErrInvalidStatus.Error()})
			return
		}

		booking, err := ChangeBookingStatus(db, req.BookingID, user.ID, status)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}

		BroadcastBookingUpdate(db, booking.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status Updated"})
	}
}
