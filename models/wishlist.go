package models

import "time"

type Wishlist struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"wishlist_id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Name      string `gorm:"not null" json:"name"`
	EventDate string `json:"event_date"`
	IsPrivate bool   `gorm:"default:false" json:"is_private"`
	// Nullable so the unique index allows many link-less wishlists.
	UniqueLink *string   `gorm:"uniqueIndex" json:"unique_link"`
	CreatedAt  time.Time `json:"created_at"`

	Gifts []Gift `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"gifts,omitempty"`
}
