package reservationControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/httputil"
	"github.com/GurrrFl/wishlist-app/middleware"
	"github.com/GurrrFl/wishlist-app/services"
)

type reserveInput struct {
	GiftID uint `json:"gift_id" binding:"required"`
}

// POST /user/reservations
func ReserveGift(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		var input reserveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reservation, err := svc.Reserve(middleware.ActorID(c), input.GiftID)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, reservation)
	}
}

// GET /user/reservations/:id
func GetReservation(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
			return
		}

		reservation, err := svc.GetForUser(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// GET /user/reservations
func ListMyReservations(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		onlyActive := c.Query("only_active") == "true"

		reservations, err := svc.ListForUser(middleware.ActorID(c), offset, limit, onlyActive)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, reservations)
	}
}

// GET /user/gifts/:id/reservations — wishlist owner only
func ListGiftReservations(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		giftID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gift id"})
			return
		}
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		onlyActive := c.Query("only_active") == "true"

		reservations, err := svc.ListForGift(uint(giftID), middleware.ActorID(c), offset, limit, onlyActive)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, reservations)
	}
}

// POST /user/reservations/:id/cancel
func CancelReservation(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
			return
		}

		reservation, err := svc.Cancel(uint(id), middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// DELETE /admin/reservations/:id — hard delete behind the API key
func AdminDeleteReservation(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewReservationService(db)
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
			return
		}

		if err := svc.AdminDelete(uint(id)); err != nil {
			httputil.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
