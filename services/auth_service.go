package services

import (
	"errors"
	"strings"

	"github.com/vfranco00/Nutri-Agent/config"
	"github.com/vfranco00/Nutri-Agent/models"
	"github.com/vfranco00/Nutri-Agent/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a new active user. A duplicate email surfaces as
// ErrEmailTaken whether it is caught by the pre-check or by the unique
// index on a concurrent register.
func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		HashedPassword: hashed,
		FullName:       fullName,
		IsActive:       true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login checks the credentials and returns a signed JWT. Inactive users
// cannot log in.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email)
}
