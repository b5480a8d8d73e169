package services

import (
	"encoding/json"
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Create places a food order for a room. Item prices missing from the
// request are filled in from the hotel's menu; the order amount is always
// recomputed server-side.
func (s *OrderService) Create(hotelName, roomNumber string, items []models.OrderItem) (models.FoodOrder, error) {
	hotelName = strings.TrimSpace(hotelName)
	roomNumber = strings.TrimSpace(roomNumber)

	var room models.Room
	if err := s.DB.Where("hotel_name = ? AND room_number = ?", hotelName, roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FoodOrder{}, ErrRoomNotFound
		}
		return models.FoodOrder{}, err
	}

	var amount float64
	for i := range items {
		if items[i].Quantity <= 0 {
			items[i].Quantity = 1
		}
		if items[i].Price == 0 {
			var menuItem models.MenuItem
			err := s.DB.Where("hotel_name = ? AND name = ? AND available = ?", hotelName, items[i].Name, true).
				First(&menuItem).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.FoodOrder{}, ErrMenuItemNotFound
				}
				return models.FoodOrder{}, err
			}
			items[i].Price = menuItem.Price
		}
		amount += items[i].Price * float64(items[i].Quantity)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return models.FoodOrder{}, err
	}

	order := models.FoodOrder{
		HotelName:  hotelName,
		RoomNumber: roomNumber,
		Items:      raw,
		Amount:     amount,
		Status:     models.OrderPending,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return models.FoodOrder{}, err
	}
	return order, nil
}

// GetAll lists orders for the kitchen/delivery views. status and
// roomNumber are optional filters.
func (s *OrderService) GetAll(hotelName, status, roomNumber string) ([]models.FoodOrder, error) {
	q := s.DB.Where("hotel_name = ?", hotelName)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomNumber != "" {
		q = q.Where("room_number = ?", roomNumber)
	}

	var orders []models.FoodOrder
	err := q.Order("created_at ASC").Find(&orders).Error
	return orders, err
}

// AdvanceStatus moves an order along Pending → Prepared → Delivered.
// Anything else is rejected, including moving backwards.
func (s *OrderService) AdvanceStatus(id uint, hotelName, to string) (models.FoodOrder, error) {
	var order models.FoodOrder
	if err := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, ErrOrderNotFound
		}
		return order, err
	}

	if !models.ValidOrderTransition(order.Status, to) {
		return order, ErrInvalidTransition
	}

	if err := s.DB.Model(&order).Update("status", to).Error; err != nil {
		return order, err
	}
	order.Status = to
	return order, nil
}
