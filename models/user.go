package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Login        string    `gorm:"unique;not null;index" json:"login"`
	Email        string    `gorm:"unique;not null;index" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Wishlists    []Wishlist    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlists,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}
