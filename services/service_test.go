package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GurrrFl/wishlist-app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wishlist{},
		&models.Gift{},
		&models.Reservation{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, login string) *models.User {
	t.Helper()
	user := &models.User{
		Login:        login,
		Email:        login + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createWishlist(t *testing.T, db *gorm.DB, ownerID uint, name string, private bool) *models.Wishlist {
	t.Helper()
	wishlist := &models.Wishlist{
		UserID:    ownerID,
		Name:      name,
		IsPrivate: private,
	}
	require.NoError(t, db.Create(wishlist).Error)
	return wishlist
}

func createGift(t *testing.T, db *gorm.DB, wishlistID uint, name string, status models.GiftStatus) *models.Gift {
	t.Helper()
	gift := &models.Gift{
		WishlistID: wishlistID,
		Name:       name,
		Status:     status,
	}
	require.NoError(t, db.Create(gift).Error)
	return gift
}
