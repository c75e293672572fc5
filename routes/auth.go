package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/auth"
	wishlistControllers "github.com/GurrrFl/wishlist-app/controllers/wishlist"
)

// SetupAuthRoutes registers the public endpoints: registration, login, and
// shared-link wishlist lookup.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db)) // POST /auth/register
		authGroup.POST("/login", auth.LoginHandler(db))       // POST /auth/login
	}

	// Anyone holding a share link may view the (public) wishlist.
	r.GET("/wishlists/link/:link", wishlistControllers.GetWishlistByLink(db))
}
