package models

import (
	"time"

	"gorm.io/datatypes"
)

// Food order lifecycle. Transitions only move forward:
// Pending → Prepared → Delivered.
const (
	OrderPending   = "Pending"
	OrderPrepared  = "Prepared"
	OrderDelivered = "Delivered"
)

// FoodOrder is keyed by room, not guest: the dine-in page only knows the
// room number. Delivered orders are folded into the bill at checkout and
// the room's orders are purged in the same transaction.
type FoodOrder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName  string `gorm:"size:150;index" json:"hotelName"`
	RoomNumber string `gorm:"size:50;column:room_number;index" json:"roomNumber"`

	// Items is a JSON list of {name, quantity, price} lines.
	Items  datatypes.JSON `gorm:"column:items" json:"items"`
	Amount float64        `json:"amount"`
	Status string         `gorm:"size:20;default:Pending" json:"status"`
}

// OrderItem is one line of FoodOrder.Items.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ValidOrderTransition reports whether a status change is allowed.
func ValidOrderTransition(from, to string) bool {
	switch from {
	case OrderPending:
		return to == OrderPrepared
	case OrderPrepared:
		return to == OrderDelivered
	default:
		return false
	}
}
