package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// GuestService is the occupancy ledger. The unique index on
// guests(hotel_name, room_number) is the authoritative double-booking
// guard; everything the handlers do before the insert is advisory.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// CheckIn inserts an active guest row. Returns ErrHotelNotFound /
// ErrRoomNotFound when the target doesn't exist and ErrRoomOccupied when
// the occupancy constraint rejects the insert.
func (s *GuestService) CheckIn(guest *models.Guest) error {
	guest.RoomNumber = strings.TrimSpace(guest.RoomNumber)
	guest.HotelName = strings.TrimSpace(guest.HotelName)

	var hotel models.Hotel
	if err := s.DB.Where("name = ?", guest.HotelName).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	var room models.Room
	if err := s.DB.Where("hotel_name = ? AND room_number = ?", guest.HotelName, guest.RoomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	if err := s.DB.Create(guest).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrRoomOccupied
		}
		return err
	}
	return nil
}

// GetAll lists a hotel's active guests, newest check-in first.
func (s *GuestService) GetAll(hotelName string) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Where("hotel_name = ?", hotelName).
		Order("check_in_at DESC").
		Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint, hotelName string) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guest, ErrGuestNotFound
	}
	return guest, err
}

// Update edits demographic fields of an active guest. Room and hotel are
// not editable here; moving a guest is a checkout plus a new check-in.
func (s *GuestService) Update(id uint, hotelName string, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "hotel_name")
	delete(updates, "hotelName")
	delete(updates, "room_number")
	delete(updates, "room")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	res := s.DB.Model(&models.Guest{}).
		Where("id = ? AND hotel_name = ?", id, hotelName).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// isDuplicateKey recognizes a unique-index violation. GORM translates
// these when TranslateError is on; the string check covers raw driver
// errors from other configurations.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
