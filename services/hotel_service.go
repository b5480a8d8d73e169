package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

var ErrDuplicateHotel = errors.New("hotel name already exists")

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Order("name ASC").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if err := s.DB.Create(hotel).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateHotel
		}
		return err
	}
	return nil
}
