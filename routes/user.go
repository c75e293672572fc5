package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	giftControllers "github.com/GurrrFl/wishlist-app/controllers/gift"
	reservationControllers "github.com/GurrrFl/wishlist-app/controllers/reservation"
	userControllers "github.com/GurrrFl/wishlist-app/controllers/user"
	wishlistControllers "github.com/GurrrFl/wishlist-app/controllers/wishlist"
	"github.com/GurrrFl/wishlist-app/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))       // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db))    // PUT /user/
		userGroup.DELETE("/", userControllers.DeleteUser(db)) // DELETE /user/

		// ──────────────── Wishlists ────────────────
		wishlistGroup := userGroup.Group("/wishlists")
		{
			wishlistGroup.POST("", wishlistControllers.CreateWishlist(db))
			wishlistGroup.GET("", wishlistControllers.ListWishlists(db))
			wishlistGroup.GET("/:id", wishlistControllers.GetWishlist(db))
			wishlistGroup.PUT("/:id", wishlistControllers.UpdateWishlist(db))
			wishlistGroup.DELETE("/:id", wishlistControllers.DeleteWishlist(db))
			wishlistGroup.POST("/:id/regenerate-link", wishlistControllers.RegenerateLink(db))
			wishlistGroup.POST("/:id/clear-link", wishlistControllers.ClearLink(db))
			wishlistGroup.GET("/:id/gifts", giftControllers.ListWishlistGifts(db))
		}

		// ──────────────── Gifts ────────────────
		giftGroup := userGroup.Group("/gifts")
		{
			giftGroup.POST("", giftControllers.CreateGift(db))
			giftGroup.GET("/:id", giftControllers.GetGift(db))
			giftGroup.PUT("/:id", giftControllers.UpdateGift(db))
			giftGroup.POST("/:id/status", giftControllers.ChangeGiftStatus(db))
			giftGroup.DELETE("/:id", giftControllers.DeleteGift(db))
			giftGroup.GET("/:id/reservations", reservationControllers.ListGiftReservations(db))
		}

		// ──────────────── Reservations ────────────────
		reservationGroup := userGroup.Group("/reservations")
		{
			reservationGroup.POST("", reservationControllers.ReserveGift(db))
			reservationGroup.GET("", reservationControllers.ListMyReservations(db))
			reservationGroup.GET("/:id", reservationControllers.GetReservation(db))
			reservationGroup.POST("/:id/cancel", reservationControllers.CancelReservation(db))
		}
	}
}
