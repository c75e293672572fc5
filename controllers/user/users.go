package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/httputil"
	"github.com/GurrrFl/wishlist-app/middleware"
	"github.com/GurrrFl/wishlist-app/services"
)

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		user, err := svc.GetByID(middleware.ActorID(c))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		var input services.UserUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.UpdateProfile(middleware.ActorID(c), input)
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /user
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		if err := svc.Delete(middleware.ActorID(c)); err != nil {
			httputil.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		users, err := svc.List(offset, limit, c.Query("search"))
		if err != nil {
			httputil.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
