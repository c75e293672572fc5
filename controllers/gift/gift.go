package giftControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/httputil"
	"github.com/GurrrFl/wishlist-app/middleware"
	"github.com/GurrrFl/wishlist-app/models"
	"github.com/GurrrFl/wishlist-app/services"
)

// POST /user/gifts
func CreateGift(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		var input services.GiftCreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		gift, err := svc.Create(middleware.ActorID(c), input)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gift)
	}
}

// GET /user/gifts/:id
func GetGift(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
			return
		}

		gift, err := svc.GetForOwner(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gift)
	}
}

// GET /user/wishlists/:id/gifts
func ListWishlistGifts(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		wishlistID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		status := models.GiftStatus(c.Query("status"))

		gifts, err := svc.ListForWishlist(middleware.ActorID(c), uint(wishlistID), offset, limit, status, c.Query("search"))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gifts)
	}
}

// PUT /user/gifts/:id
func UpdateGift(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
			return
		}

		var input services.GiftUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		gift, err := svc.Update(uint(id), middleware.ActorID(c), input)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gift)
	}
}

type changeStatusInput struct {
	Status models.GiftStatus `json:"status" binding:"required"`
}

// POST /user/gifts/:id/status
func ChangeGiftStatus(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
			return
		}

		var input changeStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		gift, err := svc.ChangeStatus(uint(id), middleware.ActorID(c), input.Status)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gift)
	}
}

// DELETE /user/gifts/:id
func DeleteGift(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewGiftService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
			return
		}

		if err := svc.Delete(uint(id), middleware.ActorID(c)); err != nil {
			httputil.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
