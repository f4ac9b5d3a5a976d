package services

import (
	"errors"

	"github.com/vfranco00/Nutri-Agent/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindByID loads a user with its profile preloaded.
func (s *UserService) FindByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Profile").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers pages through every user; admin only, enforced by the caller.
func (s *UserService) ListUsers(skip, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var users []models.User
	err := s.db.Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

// Delete soft-deletes the user; their data stays in place but becomes
// unreachable since every query goes through the owning user id.
func (s *UserService) Delete(userID uint) error {
	res := s.db.Delete(&models.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
