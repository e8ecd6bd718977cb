package services

import (
	"errors"

	"github.com/ycz425/VertTracker-API/models"
	"github.com/ycz425/VertTracker-API/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(username, password string, tipToeHeight float64) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		Password:     hashed,
		TipToeHeight: tipToeHeight,
	}
	return s.db.Create(&user).Error
}

// Authenticate checks the credentials and returns a signed access token.
// Unknown username and wrong password both yield ErrInvalidCredentials so
// the caller cannot enumerate usernames.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID)
}
