package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll(hotelName string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("hotel_name = ?", hotelName).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint, hotelName string) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	room.HotelName = strings.TrimSpace(room.HotelName)

	var hotel models.Hotel
	if err := s.DB.Where("name = ?", room.HotelName).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRoom
		}
		return err
	}
	return nil
}

// Update edits a room's rate card. Occupied rooms are frozen: the active
// guest's bill depends on these numbers.
func (s *RoomService) Update(id uint, hotelName string, updates map[string]interface{}) error {
	room, err := s.GetByID(id, hotelName)
	if err != nil {
		return err
	}
	occupied, err := s.isOccupied(room.HotelName, room.Number)
	if err != nil {
		return err
	}
	if occupied {
		return ErrRoomOccupied
	}

	delete(updates, "id")
	delete(updates, "hotel_name")
	delete(updates, "hotelName")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRoom
		}
		return err
	}
	return nil
}

func (s *RoomService) Delete(id uint, hotelName string) error {
	room, err := s.GetByID(id, hotelName)
	if err != nil {
		return err
	}
	occupied, err := s.isOccupied(room.HotelName, room.Number)
	if err != nil {
		return err
	}
	if occupied {
		return ErrRoomOccupied
	}

	return s.DB.Delete(&models.Room{}, room.ID).Error
}

func (s *RoomService) isOccupied(hotelName, roomNumber string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Guest{}).
		Where("hotel_name = ? AND room_number = ?", hotelName, roomNumber).
		Count(&count).Error
	return count > 0, err
}
