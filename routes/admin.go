package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reservationControllers "github.com/GurrrFl/wishlist-app/controllers/reservation"
	userControllers "github.com/GurrrFl/wishlist-app/controllers/user"
	"github.com/GurrrFl/wishlist-app/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware; these are maintenance operations with no per-user owner.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.DELETE("/reservations/:id", reservationControllers.AdminDeleteReservation(db))
	}
}
