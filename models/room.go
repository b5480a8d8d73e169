package models

import "time"

// Room carries the rate card used by billing. A room number is only
// unique within its hotel, hence the composite index.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName string `gorm:"size:150;index:idx_hotel_room,unique" json:"hotelName"`
	Number    string `gorm:"size:50;index:idx_hotel_room,unique;column:room_number" json:"roomNumber"`

	Type            string  `gorm:"size:100" json:"type"`
	CostPerHour     float64 `gorm:"column:cost_per_hour" json:"costPerHour"`
	CostPerDay      float64 `gorm:"column:cost_per_day" json:"costPerDay"`
	DiscountPercent float64 `gorm:"column:discount_percent" json:"discountPercent"`
}

// RateCard is the pricing slice of a room that billing consumes.
type RateCard struct {
	CostPerHour     float64 `json:"costPerHour"`
	CostPerDay      float64 `json:"costPerDay"`
	DiscountPercent float64 `json:"discountPercent"`
}

func (r Room) RateCard() RateCard {
	return RateCard{
		CostPerHour:     r.CostPerHour,
		CostPerDay:      r.CostPerDay,
		DiscountPercent: r.DiscountPercent,
	}
}
