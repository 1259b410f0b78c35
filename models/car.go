package models

import "time"

type Car struct {
	ID      string  `gorm:"primaryKey" json:"_id"`
	OwnerID *string `gorm:"index" json:"owner"` // nil once the car is delisted
	Owner   *User   `gorm:"foreignKey:OwnerID" json:"-"`

	Brand string `gorm:"not null" json:"brand"`
	Model string `gorm:"not null" json:"model"`
	Image string `gorm:"not null" json:"image"`

	Year     int    `gorm:"not null" json:"year"`
	Category string `gorm:"not null" json:"category"`

	SeatingCapacity int    `gorm:"not null" json:"seating_capacity"`
	FuelType        string `gorm:"not null" json:"fuel_type"`
	Transmission    string `gorm:"not null" json:"transmission"`

	PricePerDay float64 `gorm:"not null" json:"pricePerDay"`

	Location    string `gorm:"not null;index" json:"location"`
	Description string `gorm:"not null" json:"description"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	Images []string `gorm:"serializer:json" json:"images"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Delist soft-deletes the car: the record stays but loses its owner and
// drops out of every listing and availability search.
func (c *Car) Delist() {
	c.OwnerID = nil
	c.IsAvailable = false
}
