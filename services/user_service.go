package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GurrrFl/wishlist-app/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserCreateInput struct {
	Login    string `json:"login" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserUpdateInput struct {
	Login    *string `json:"login"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register creates a user with a unique login and email.
func (s *UserService) Register(input UserCreateInput) (*models.User, error) {
	if taken, err := s.loginTaken(input.Login, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: login is already taken", ErrConflict)
	}
	if taken, err := s.emailTaken(input.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: email is already taken", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves the identifier as a login first, then as an email.
func (s *UserService) Authenticate(identifier, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("login = ?", identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("email = ?", identifier).First(&user).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List(offset, limit int, search string) ([]models.User, error) {
	q := s.db.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(login) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}
	var users []models.User
	if err := q.Offset(offset).Limit(limit).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies the non-nil fields, re-checking login/email
// uniqueness and rehashing a changed password.
func (s *UserService) UpdateProfile(userID uint, input UserUpdateInput) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Login != nil && *input.Login != user.Login {
		if taken, err := s.loginTaken(*input.Login, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, fmt.Errorf("%w: login is already taken", ErrConflict)
		}
		updates["login"] = *input.Login
	}
	if input.Email != nil && *input.Email != user.Email {
		if taken, err := s.emailTaken(*input.Email, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, fmt.Errorf("%w: email is already taken", ErrConflict)
		}
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Delete removes the user; wishlists, gifts and reservations follow via
// the store's cascade constraints.
func (s *UserService) Delete(userID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	return s.db.Select("Wishlists", "Reservations").Delete(user).Error
}

func (s *UserService) loginTaken(login string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("login = ? AND id <> ?", login, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (s *UserService) emailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}
