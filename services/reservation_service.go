package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GurrrFl/wishlist-app/models"
)

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// Reserve places, or reactivates, the actor's reservation on a gift.
//
// The whole check-then-act sequence runs in one transaction holding a row
// lock on the gift, so two concurrent reservers cannot both pass the
// availability check. The (user_id, gift_id) unique index guarantees a
// single row per pair ever exists; a cancelled row is reactivated in place
// instead of inserting a second one.
func (s *ReservationService) Reserve(userID, giftID uint) (*models.Reservation, error) {
	var reservation *models.Reservation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var gift models.Gift
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&gift, giftID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: gift not found", ErrNotFound)
		}
		if err != nil {
			return err
		}

		var wishlist models.Wishlist
		if err := tx.First(&wishlist, gift.WishlistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: wishlist not found", ErrNotFound)
			}
			return err
		}

		// Non-owners may not even see gifts on a private wishlist.
		if wishlist.IsPrivate && wishlist.UserID != userID {
			return fmt.Errorf("%w: access denied to gift", ErrPermissionDenied)
		}
		if gift.Status != models.GiftStatusAvailable {
			return fmt.Errorf("%w: gift is already reserved", ErrConflict)
		}
		if wishlist.UserID == userID {
			return fmt.Errorf("%w: cannot reserve your own gift", ErrConflict)
		}

		var existing models.Reservation
		err = tx.Where("user_id = ? AND gift_id = ?", userID, giftID).First(&existing).Error
		switch {
		case err == nil:
			if existing.CancelledAt == nil {
				return fmt.Errorf("%w: gift is already reserved by this user", ErrConflict)
			}
			// Reactivate the soft-cancelled row rather than inserting a
			// duplicate that would trip the unique index.
			updates := map[string]interface{}{
				"cancelled_at":  nil,
				"reserved_date": time.Now().UTC(),
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			reservation = &existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.Reservation{
				UserID:       userID,
				GiftID:       giftID,
				ReservedDate: time.Now().UTC(),
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			reservation = &created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Cancel soft-deletes the actor's reservation. Cancelling an already
// cancelled reservation is a no-op that keeps the original timestamp.
func (s *ReservationService) Cancel(reservationID, actorID uint) (*models.Reservation, error) {
	reservation, err := s.getByID(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != actorID {
		return nil, fmt.Errorf("%w: access denied to reservation", ErrPermissionDenied)
	}
	if reservation.CancelledAt != nil {
		return reservation, nil
	}
	now := time.Now().UTC()
	if err := s.db.Model(reservation).Update("cancelled_at", &now).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// GetForUser returns the reservation, visible only to the reserver.
func (s *ReservationService) GetForUser(reservationID, actorID uint) (*models.Reservation, error) {
	reservation, err := s.getByID(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != actorID {
		return nil, fmt.Errorf("%w: access denied to reservation", ErrPermissionDenied)
	}
	return reservation, nil
}

func (s *ReservationService) ListForUser(userID uint, offset, limit int, onlyActive bool) ([]models.Reservation, error) {
	q := s.db.Where("user_id = ?", userID)
	if onlyActive {
		q = q.Where("cancelled_at IS NULL")
	}
	var reservations []models.Reservation
	if err := q.Offset(offset).Limit(limit).Order("reserved_date").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListForGift is an owner-only view: seeing who reserved a gift is the
// wishlist owner's privilege, while reserving is reserved for non-owners.
func (s *ReservationService) ListForGift(giftID, actorID uint, offset, limit int, onlyActive bool) ([]models.Reservation, error) {
	var gift models.Gift
	if err := s.db.First(&gift, giftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gift not found", ErrNotFound)
		}
		return nil, err
	}
	var wishlist models.Wishlist
	if err := s.db.First(&wishlist, gift.WishlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wishlist not found", ErrNotFound)
		}
		return nil, err
	}
	if wishlist.UserID != actorID {
		return nil, fmt.Errorf("%w: access denied to reservations for this gift", ErrPermissionDenied)
	}

	q := s.db.Where("gift_id = ?", giftID)
	if onlyActive {
		q = q.Where("cancelled_at IS NULL")
	}
	var reservations []models.Reservation
	if err := q.Offset(offset).Limit(limit).Order("reserved_date").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// AdminDelete hard-deletes a reservation row. Exposed only behind the admin
// API-key route group; services themselves do no role checks here.
func (s *ReservationService) AdminDelete(reservationID uint) error {
	reservation, err := s.getByID(reservationID)
	if err != nil {
		return err
	}
	return s.db.Delete(reservation).Error
}

func (s *ReservationService) getByID(reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reservation not found", ErrNotFound)
		}
		return nil, err
	}
	return &reservation, nil
}
