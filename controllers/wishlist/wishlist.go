package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/httputil"
	"github.com/GurrrFl/wishlist-app/middleware"
	"github.com/GurrrFl/wishlist-app/services"
)

// POST /user/wishlists
func CreateWishlist(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		var input services.WishlistCreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		wishlist, err := svc.Create(middleware.ActorID(c), input)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, wishlist)
	}
}

// GET /user/wishlists/:id
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}

		wishlist, err := svc.GetForOwner(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// GET /wishlists/link/:link — public, no auth
func GetWishlistByLink(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		wishlist, err := svc.GetPublicByLink(c.Param("link"))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// GET /user/wishlists
func ListWishlists(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		includePrivate := c.DefaultQuery("include_private", "true") == "true"

		wishlists, err := svc.ListForUser(middleware.ActorID(c), offset, limit, includePrivate, c.Query("search"))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlists)
	}
}

// PUT /user/wishlists/:id
func UpdateWishlist(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}

		var input services.WishlistUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		wishlist, err := svc.Update(uint(id), middleware.ActorID(c), input)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// DELETE /user/wishlists/:id
func DeleteWishlist(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}

		if err := svc.Delete(uint(id), middleware.ActorID(c)); err != nil {
			httputil.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// POST /user/wishlists/:id/regenerate-link
func RegenerateLink(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}

		wishlist, err := svc.RegenerateLink(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// POST /user/wishlists/:id/clear-link
func ClearLink(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewWishlistService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
			return
		}

		wishlist, err := svc.ClearLink(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}
