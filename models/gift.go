package models

import "time"

type GiftStatus string

const (
	GiftStatusAvailable GiftStatus = "available" // open for reservation
	GiftStatusReserved  GiftStatus = "reserved"  // marked taken by the owner
)

// Gift status is a manual flag set by the wishlist owner. It is not derived
// from reservation rows; the two can drift apart on purpose (the owner may
// mark a gift reserved after an offline promise, or leave it available while
// reservations exist).
type Gift struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"gift_id"`
	WishlistID  uint       `gorm:"not null;index" json:"wishlist_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	StoreLink   string     `json:"store_link"`
	Status      GiftStatus `gorm:"type:VARCHAR(20);default:'available'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`

	Reservations []Reservation `gorm:"foreignKey:GiftID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}
