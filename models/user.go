package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"  // can browse and book cars
	RoleOwner UserRole = "owner" // can additionally list cars and manage bookings
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      UserRole  `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
