package models

import "time"

// BillRecord is the immutable snapshot written at checkout. The application
// exposes no update or delete path for it.
type BillRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	HotelName  string `gorm:"size:150;index" json:"hotelName"`
	GuestName  string `gorm:"size:150" json:"guestName"`
	RoomNumber string `gorm:"size:50;column:room_number" json:"roomNumber"`

	CheckInAt  time.Time `gorm:"column:check_in_at" json:"checkIn"`
	CheckOutAt time.Time `gorm:"column:check_out_at;index" json:"checkOut"`
	TotalHours int       `gorm:"column:total_hours" json:"totalHours"`

	GrossAmount     float64 `gorm:"column:gross_amount" json:"grossAmount"`
	DiscountAmount  float64 `gorm:"column:discount_amount" json:"discountAmount"`
	AncillaryAmount float64 `gorm:"column:ancillary_amount" json:"ancillaryAmount"`
	FinalAmount     float64 `gorm:"column:final_amount" json:"finalAmount"`
}
