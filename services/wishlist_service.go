package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

type WishlistCreateInput struct {
	Name       string  `json:"name" binding:"required"`
	EventDate  string  `json:"event_date"`
	IsPrivate  bool    `json:"is_private"`
	UniqueLink *string `json:"unique_link"`
}

type WishlistUpdateInput struct {
	Name       *string `json:"name"`
	EventDate  *string `json:"event_date"`
	IsPrivate  *bool   `json:"is_private"`
	UniqueLink *string `json:"unique_link"`
}

func newUniqueLink() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Create stores a wishlist for the owner. Public wishlists without an
// explicit link get a generated one; private wishlists never hold a link.
func (s *WishlistService) Create(ownerID uint, input WishlistCreateInput) (*models.Wishlist, error) {
	link := input.UniqueLink
	if input.IsPrivate {
		link = nil
	} else if link == nil {
		generated := newUniqueLink()
		link = &generated
	}

	wishlist := models.Wishlist{
		UserID:     ownerID,
		Name:       input.Name,
		EventDate:  input.EventDate,
		IsPrivate:  input.IsPrivate,
		UniqueLink: link,
	}
	if err := s.db.Create(&wishlist).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// GetForOwner loads a wishlist and denies actors other than its owner.
func (s *WishlistService) GetForOwner(wishlistID, actorID uint) (*models.Wishlist, error) {
	wishlist, err := s.getByID(s.db, wishlistID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwner(wishlist.UserID, actorID); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// GetPublicByLink resolves a share link. Private wishlists never resolve
// through this path, even if a stale link survived a privacy toggle.
func (s *WishlistService) GetPublicByLink(link string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := s.db.Preload("Gifts").
		Where("unique_link = ? AND is_private = ?", link, false).
		First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: wishlist not found or is private", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (s *WishlistService) ListForUser(userID uint, offset, limit int, includePrivate bool, search string) ([]models.Wishlist, error) {
	q := s.db.Where("user_id = ?", userID)
	if !includePrivate {
		q = q.Where("is_private = ?", false)
	}
	if search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	var wishlists []models.Wishlist
	if err := q.Offset(offset).Limit(limit).Order("created_at").Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// Update applies the non-nil fields. Flipping a wishlist to private always
// clears its link, whether or not the payload mentions one: a private
// wishlist must never keep a resolvable link around.
func (s *WishlistService) Update(wishlistID, actorID uint, input WishlistUpdateInput) (*models.Wishlist, error) {
	wishlist, err := s.GetForOwner(wishlistID, actorID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.EventDate != nil {
		updates["event_date"] = *input.EventDate
	}
	if input.UniqueLink != nil {
		updates["unique_link"] = *input.UniqueLink
	}
	if input.IsPrivate != nil {
		updates["is_private"] = *input.IsPrivate
		if *input.IsPrivate {
			updates["unique_link"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(wishlist).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return wishlist, nil
}

func (s *WishlistService) Delete(wishlistID, actorID uint) error {
	wishlist, err := s.GetForOwner(wishlistID, actorID)
	if err != nil {
		return err
	}
	return s.db.Select("Gifts").Delete(wishlist).Error
}

// RegenerateLink issues a fresh share link. Private wishlists may not hold
// a link, so the call fails for them.
func (s *WishlistService) RegenerateLink(wishlistID, actorID uint) (*models.Wishlist, error) {
	wishlist, err := s.GetForOwner(wishlistID, actorID)
	if err != nil {
		return nil, err
	}
	if wishlist.IsPrivate {
		return nil, fmt.Errorf("%w: cannot set unique link for private wishlist", ErrConflict)
	}
	link := newUniqueLink()
	if err := s.db.Model(wishlist).Update("unique_link", link).Error; err != nil {
		return nil, err
	}
	return wishlist, nil
}

// ClearLink nulls the share link; valid on public and private wishlists.
func (s *WishlistService) ClearLink(wishlistID, actorID uint) (*models.Wishlist, error) {
	wishlist, err := s.GetForOwner(wishlistID, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(wishlist).Update("unique_link", nil).Error; err != nil {
		return nil, err
	}
	return wishlist, nil
}

func (s *WishlistService) getByID(tx *gorm.DB, wishlistID uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := tx.First(&wishlist, wishlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wishlist not found", ErrNotFound)
		}
		return nil, err
	}
	return &wishlist, nil
}
