package models

import "time"

// MenuItem is what the dine-in page orders from.
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName string  `gorm:"size:150;index:idx_hotel_menu,unique" json:"hotelName"`
	Name      string  `gorm:"size:150;index:idx_hotel_menu,unique" json:"name"`
	Price     float64 `json:"price"`
	Available bool    `gorm:"default:true" json:"available"`
}
