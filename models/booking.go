package models

import (
	"errors"
	"math"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // awaiting the owner's decision
	BookingStatusConfirmed BookingStatus = "confirmed" // approved by the car's owner
	BookingStatusCancelled BookingStatus = "cancelled" // rejected or withdrawn
)

var ErrInvalidBookingStatus = errors.New("invalid booking status")

// ParseBookingStatus maps a caller-supplied string to a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(BookingStatusPending):
		return BookingStatusPending, nil
	case string(BookingStatusConfirmed):
		return BookingStatusConfirmed, nil
	case string(BookingStatusCancelled):
		return BookingStatusCancelled, nil
	default:
		return "", ErrInvalidBookingStatus
	}
}

// CanTransition reports whether an owner may move a booking from one status
// to another. Re-asserting the current status is always allowed so repeated
// requests stay idempotent; otherwise pending bookings may be confirmed or
// cancelled, confirmed bookings may only be cancelled, and cancelled is final.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled
	default:
		return false
	}
}

type Booking struct {
	ID      string `gorm:"primaryKey" json:"_id"`
	CarID   string `gorm:"not null;index" json:"-"`
	Car     Car    `gorm:"foreignKey:CarID" json:"car"`
	UserID  string `gorm:"not null;index" json:"-"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	OwnerID string `gorm:"not null;index" json:"owner"` // copied from the car at creation

	PickupDate time.Time `gorm:"not null" json:"pickupDate"`
	ReturnDate time.Time `gorm:"not null" json:"returnDate"`

	Status BookingStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Price  float64       `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
}

// Overlaps is the reservation collision test: two ranges conflict when each
// starts no later than the other ends. Bounds are inclusive on both sides, so
// a same-day handoff counts as a conflict rather than a back-to-back booking.
func Overlaps(aPickup, aReturn, bPickup, bReturn time.Time) bool {
	return !aPickup.After(bReturn) && !bPickup.After(aReturn)
}

// Overlaps reports whether this booking collides with the requested range.
func (b *Booking) Overlaps(pickup, ret time.Time) bool {
	return Overlaps(b.PickupDate, b.ReturnDate, pickup, ret)
}

// RentalDays bills partial days as whole ones, with a one-day floor.
func RentalDays(pickup, ret time.Time) int {
	days := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice computes the booking price for a car over a date range.
func TotalPrice(pricePerDay float64, pickup, ret time.Time) float64 {
	return pricePerDay * float64(RentalDays(pickup, ret))
}
