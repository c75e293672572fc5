package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GurrrFl/wishlist-app/models"
)

func TestCreateGiftRequiresWishlistOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewGiftService(db)

	owner := createUser(t, db, "alice")
	stranger := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)

	gift, err := svc.Create(owner.ID, GiftCreateInput{WishlistID: wishlist.ID, Name: "watch"})
	require.NoError(t, err)
	assert.Equal(t, models.GiftStatusAvailable, gift.Status)

	_, err = svc.Create(stranger.ID, GiftCreateInput{WishlistID: wishlist.ID, Name: "watch"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Create(owner.ID, GiftCreateInput{WishlistID: 999, Name: "watch"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangeGiftStatusValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGiftService(db)

	owner := createUser(t, db, "alice")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	updated, err := svc.ChangeStatus(gift.ID, owner.ID, models.GiftStatusReserved)
	require.NoError(t, err)
	assert.Equal(t, models.GiftStatusReserved, updated.Status)

	_, err = svc.ChangeStatus(gift.ID, owner.ID, "taken")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteReservedGiftConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewGiftService(db)

	owner := createUser(t, db, "alice")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusReserved)

	err := svc.Delete(gift.ID, owner.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Flip the status back and deletion goes through.
	_, err = svc.ChangeStatus(gift.ID, owner.ID, models.GiftStatusAvailable)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(gift.ID, owner.ID))

	_, err = svc.GetForOwner(gift.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// The deletion gate is the manual status flag, not reservation rows: a gift
// that still carries an active reservation deletes fine while its status
// says available.
func TestDeleteGiftIgnoresActiveReservations(t *testing.T) {
	db := newTestDB(t)
	gifts := NewGiftService(db)
	reservations := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	_, err := reservations.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)

	require.NoError(t, gifts.Delete(gift.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Where("gift_id = ?", gift.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateGiftMoveRequiresTargetOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewGiftService(db)

	owner := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	source := createWishlist(t, db, owner.ID, "birthday", false)
	target := createWishlist(t, db, owner.ID, "christmas", false)
	foreign := createWishlist(t, db, other.ID, "theirs", false)
	gift := createGift(t, db, source.ID, "watch", models.GiftStatusAvailable)

	// Moving into a foreign wishlist is denied.
	_, err := svc.Update(gift.ID, owner.ID, GiftUpdateInput{WishlistID: &foreign.ID})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Moving between own wishlists is fine.
	updated, err := svc.Update(gift.ID, owner.ID, GiftUpdateInput{WishlistID: &target.ID})
	require.NoError(t, err)
	assert.Equal(t, target.ID, updated.WishlistID)
}

func TestListGiftsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewGiftService(db)

	owner := createUser(t, db, "alice")
	stranger := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	createGift(t, db, wishlist.ID, "Red Scarf", models.GiftStatusAvailable)
	createGift(t, db, wishlist.ID, "Blue Scarf", models.GiftStatusReserved)
	createGift(t, db, wishlist.ID, "Headphones", models.GiftStatusAvailable)

	_, err := svc.ListForWishlist(stranger.ID, wishlist.ID, 0, 50, "", "")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	all, err := svc.ListForWishlist(owner.ID, wishlist.ID, 0, 50, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := svc.ListForWishlist(owner.ID, wishlist.ID, 0, 50, models.GiftStatusAvailable, "")
	require.NoError(t, err)
	assert.Len(t, available, 2)

	scarves, err := svc.ListForWishlist(owner.ID, wishlist.ID, 0, 50, "", "scarf")
	require.NoError(t, err)
	assert.Len(t, scarves, 2)

	paged, err := svc.ListForWishlist(owner.ID, wishlist.ID, 1, 1, "", "")
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}
