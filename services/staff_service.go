package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrStaffNotFound     = errors.New("staff account not found")
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) GetAll(hotelName string) ([]models.Staff, error) {
	var staff []models.Staff
	err := s.DB.Where("hotel_name = ?", hotelName).
		Order("full_name ASC").
		Find(&staff).Error
	return staff, err
}

// Create registers a staff account with a hashed password.
func (s *StaffService) Create(staff *models.Staff, password string) error {
	staff.Username = strings.TrimSpace(staff.Username)

	var hotel models.Hotel
	if err := s.DB.Where("name = ?", staff.HotelName).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff.Password = string(hash)

	if err := s.DB.Create(staff).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (s *StaffService) Delete(id uint, hotelName string) error {
	res := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).Delete(&models.Staff{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
