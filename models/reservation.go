package models

import "time"

// Reservation rows are unique per (user, gift) and never recreated: a
// cancelled reservation keeps its row (cancelled_at set) and is reactivated
// in place when the same user reserves the gift again.
type Reservation struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"reservation_id"`
	UserID       uint       `gorm:"not null;index;uniqueIndex:uq_reservations_user_gift" json:"user_id"`
	GiftID       uint       `gorm:"not null;index;uniqueIndex:uq_reservations_user_gift" json:"gift_id"`
	ReservedDate time.Time  `json:"reserved_date"`
	CancelledAt  *time.Time `json:"cancelled_at"`
}

// Active reports whether the reservation has not been cancelled.
func (r *Reservation) Active() bool {
	return r.CancelledAt == nil
}
