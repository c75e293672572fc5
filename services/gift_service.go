package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/models"
)

type GiftService struct {
	db *gorm.DB
}

func NewGiftService(db *gorm.DB) *GiftService {
	return &GiftService{db: db}
}

type GiftCreateInput struct {
	WishlistID  uint               `json:"wishlist_id" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	StoreLink   string             `json:"store_link"`
	Status      *models.GiftStatus `json:"status"`
}

type GiftUpdateInput struct {
	WishlistID  *uint              `json:"wishlist_id"`
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price"`
	StoreLink   *string            `json:"store_link"`
	Status      *models.GiftStatus `json:"status"`
}

func validGiftStatus(status models.GiftStatus) bool {
	return status == models.GiftStatusAvailable || status == models.GiftStatusReserved
}

// Create adds a gift to a wishlist the actor owns.
func (s *GiftService) Create(actorID uint, input GiftCreateInput) (*models.Gift, error) {
	if err := s.ensureWishlistOwner(input.WishlistID, actorID); err != nil {
		return nil, err
	}

	status := models.GiftStatusAvailable
	if input.Status != nil {
		if !validGiftStatus(*input.Status) {
			return nil, fmt.Errorf("%w: invalid gift status %q", ErrInvalidArgument, *input.Status)
		}
		status = *input.Status
	}

	gift := models.Gift{
		WishlistID:  input.WishlistID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		StoreLink:   input.StoreLink,
		Status:      status,
	}
	if err := s.db.Create(&gift).Error; err != nil {
		return nil, err
	}
	return &gift, nil
}

// GetForOwner loads a gift, denying actors who do not own its wishlist.
func (s *GiftService) GetForOwner(giftID, actorID uint) (*models.Gift, error) {
	gift, err := s.getByID(giftID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureWishlistOwner(gift.WishlistID, actorID); err != nil {
		return nil, err
	}
	return gift, nil
}

func (s *GiftService) ListForWishlist(actorID, wishlistID uint, offset, limit int, status models.GiftStatus, search string) ([]models.Gift, error) {
	if err := s.ensureWishlistOwner(wishlistID, actorID); err != nil {
		return nil, err
	}
	q := s.db.Where("wishlist_id = ?", wishlistID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	var gifts []models.Gift
	if err := q.Offset(offset).Limit(limit).Order("created_at").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// Update applies the non-nil fields. Moving a gift to another wishlist
// additionally requires the actor to own the target wishlist.
func (s *GiftService) Update(giftID, actorID uint, input GiftUpdateInput) (*models.Gift, error) {
	gift, err := s.GetForOwner(giftID, actorID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.WishlistID != nil && *input.WishlistID != gift.WishlistID {
		if err := s.ensureWishlistOwner(*input.WishlistID, actorID); err != nil {
			return nil, err
		}
		updates["wishlist_id"] = *input.WishlistID
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.StoreLink != nil {
		updates["store_link"] = *input.StoreLink
	}
	if input.Status != nil {
		if !validGiftStatus(*input.Status) {
			return nil, fmt.Errorf("%w: invalid gift status %q", ErrInvalidArgument, *input.Status)
		}
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(gift).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return gift, nil
}

// ChangeStatus flips the owner-controlled status flag.
func (s *GiftService) ChangeStatus(giftID, actorID uint, newStatus models.GiftStatus) (*models.Gift, error) {
	gift, err := s.GetForOwner(giftID, actorID)
	if err != nil {
		return nil, err
	}
	if !validGiftStatus(newStatus) {
		return nil, fmt.Errorf("%w: invalid gift status %q", ErrInvalidArgument, newStatus)
	}
	if err := s.db.Model(gift).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	return gift, nil
}

// Delete removes a gift and its reservations. The gate is the manual status
// flag, not reservation rows: a reserved-status gift must be flipped back to
// available before deletion.
func (s *GiftService) Delete(giftID, actorID uint) error {
	gift, err := s.GetForOwner(giftID, actorID)
	if err != nil {
		return err
	}
	if gift.Status == models.GiftStatusReserved {
		return fmt.Errorf("%w: cannot delete reserved gift", ErrConflict)
	}
	return s.db.Select("Reservations").Delete(gift).Error
}

func (s *GiftService) getByID(giftID uint) (*models.Gift, error) {
	var gift models.Gift
	if err := s.db.First(&gift, giftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: gift not found", ErrNotFound)
		}
		return nil, err
	}
	return &gift, nil
}

func (s *GiftService) ensureWishlistOwner(wishlistID, actorID uint) error {
	var wishlist models.Wishlist
	if err := s.db.First(&wishlist, wishlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: wishlist not found", ErrNotFound)
		}
		return err
	}
	return CheckOwner(wishlist.UserID, actorID)
}
