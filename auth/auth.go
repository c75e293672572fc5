package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/services"
)

const tokenLifetime = 12 * time.Hour

// Claims binds the issued token to a user id; every protected handler
// receives the actor identity from here, never from session state.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func CreateAccessToken(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	users := services.NewUserService(db)
	return func(c *gin.Context) {
		var input services.UserCreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Register(input)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

type loginInput struct {
	Identifier string `json:"identifier" binding:"required"` // login or email
	Password   string `json:"password" binding:"required"`
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	users := services.NewUserService(db)
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Authenticate(input.Identifier, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
			return
		}

		token, err := CreateAccessToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"user_id":      user.ID,
			"login":        user.Login,
		})
	}
}
