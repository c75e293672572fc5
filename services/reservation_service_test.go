package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GurrrFl/wishlist-app/models"
)

func TestReserveCancelReactivateLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "headphones", models.GiftStatusAvailable)

	// First reserve creates an active row.
	reservation, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)
	require.NotZero(t, reservation.ID)
	assert.True(t, reservation.Active())
	firstDate := reservation.ReservedDate

	// Double reserve by the same user is rejected, not silently accepted.
	_, err = svc.Reserve(reserver.ID, gift.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Cancel soft-deletes.
	cancelled, err := svc.Cancel(reservation.ID, reserver.ID)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)
	firstCancelledAt := *cancelled.CancelledAt

	// Cancel is idempotent: the original timestamp survives.
	again, err := svc.Cancel(reservation.ID, reserver.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CancelledAt)
	assert.True(t, firstCancelledAt.Equal(*again.CancelledAt), "cancelled_at must not be overwritten")

	// Re-reserving reuses the same row and refreshes the date.
	reactivated, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, reactivated.ID)
	assert.True(t, reactivated.Active())
	assert.False(t, reactivated.ReservedDate.Before(firstDate))

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).
		Where("user_id = ? AND gift_id = ?", reserver.ID, gift.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReserveOwnGiftConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "headphones", models.GiftStatusAvailable)

	_, err := svc.Reserve(owner.ID, gift.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Still a conflict regardless of status.
	require.NoError(t, db.Model(gift).Update("status", models.GiftStatusReserved).Error)
	_, err = svc.Reserve(owner.ID, gift.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReserveGiftNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	user := createUser(t, db, "bob")

	_, err := svc.Reserve(user.ID, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReservePrivateWishlistHiddenFromNonOwners(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	stranger := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "secret", true)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	_, err := svc.Reserve(stranger.ID, gift.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestReserveUnavailableStatusConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusReserved)

	_, err := svc.Reserve(reserver.ID, gift.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCancelOnlyByReserver(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	reservation, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)

	// The gift owner cannot cancel someone else's reservation.
	_, err = svc.Cancel(reservation.ID, owner.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestListForGiftIsOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	other := createUser(t, db, "carol")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	reservation, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)

	// Visibility is the owner's privilege; even the reserver is denied.
	_, err = svc.ListForGift(gift.ID, reserver.ID, 0, 50, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = svc.ListForGift(gift.ID, other.ID, 0, 50, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	listed, err := svc.ListForGift(gift.ID, owner.ID, 0, 50, false)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, reservation.ID, listed[0].ID)

	// only_active filter hides cancelled rows.
	_, err = svc.Cancel(reservation.ID, reserver.ID)
	require.NoError(t, err)
	active, err := svc.ListForGift(gift.ID, owner.ID, 0, 50, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestListForUserOnlyActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	first := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)
	second := createGift(t, db, wishlist.ID, "book", models.GiftStatusAvailable)

	kept, err := svc.Reserve(reserver.ID, first.ID)
	require.NoError(t, err)
	dropped, err := svc.Reserve(reserver.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Cancel(dropped.ID, reserver.ID)
	require.NoError(t, err)

	all, err := svc.ListForUser(reserver.ID, 0, 50, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListForUser(reserver.ID, 0, 50, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)
}

func TestGetForUserDeniesStrangers(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	reservation, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)

	got, err := svc.GetForUser(reservation.ID, reserver.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, got.ID)

	_, err = svc.GetForUser(reservation.ID, owner.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAdminDeleteRemovesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	owner := createUser(t, db, "alice")
	reserver := createUser(t, db, "bob")
	wishlist := createWishlist(t, db, owner.ID, "birthday", false)
	gift := createGift(t, db, wishlist.ID, "watch", models.GiftStatusAvailable)

	reservation, err := svc.Reserve(reserver.ID, gift.ID)
	require.NoError(t, err)

	require.NoError(t, svc.AdminDelete(reservation.ID))

	_, err = svc.GetForUser(reservation.ID, reserver.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.AdminDelete(reservation.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
