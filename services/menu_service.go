package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// GetAll lists menu items. availableOnly is used by the public dine-in
// page; staff views see everything.
func (s *MenuService) GetAll(hotelName string, availableOnly bool) ([]models.MenuItem, error) {
	q := s.DB.Where("hotel_name = ?", hotelName)
	if availableOnly {
		q = q.Where("available = ?", true)
	}

	var items []models.MenuItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (s *MenuService) Create(item *models.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.HotelName = strings.TrimSpace(item.HotelName)

	var hotel models.Hotel
	if err := s.DB.Where("name = ?", item.HotelName).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	return s.DB.Create(item).Error
}

func (s *MenuService) Update(id uint, hotelName string, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "hotel_name")
	delete(updates, "hotelName")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	res := s.DB.Model(&models.MenuItem{}).
		Where("id = ? AND hotel_name = ?", id, hotelName).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) Delete(id uint, hotelName string) error {
	res := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
