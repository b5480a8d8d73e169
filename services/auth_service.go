package services

import (
	"errors"
	"os"
	"time"

	"frontdesk-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StaffClaims is what a staff session token carries. The hotel name rides
// in the token so staff endpoints are tenant-scoped without re-reading the
// account row.
type StaffClaims struct {
	StaffID   uint   `json:"staffId"`
	Role      string `json:"role"`
	HotelName string `json:"hotelName"`
	jwt.RegisteredClaims
}

type AuthService struct {
	DB       *gorm.DB
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthService(db *gorm.DB) *AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "frontdesk-dev-secret"
	}
	return &AuthService{
		DB:       db,
		Secret:   []byte(secret),
		TokenTTL: 24 * time.Hour,
	}
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(username, password string) (string, models.Staff, error) {
	var staff models.Staff
	if err := s.DB.Where("username = ?", username).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", staff, ErrInvalidCredentials
		}
		return "", staff, err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return "", staff, ErrInvalidCredentials
	}

	now := time.Now()
	claims := StaffClaims{
		StaffID:   staff.ID,
		Role:      staff.Role,
		HotelName: staff.HotelName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", staff, err
	}
	return token, staff, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
