package models

import "time"

// Guest is an active occupant. The unique index on (hotel_name, room_number)
// is the occupancy constraint: the database, not the handler, decides who
// wins a concurrent check-in race on the same room.
type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName  string `gorm:"size:150;index:idx_hotel_occupied,unique" json:"hotelName"`
	RoomNumber string `gorm:"size:50;index:idx_hotel_occupied,unique;column:room_number" json:"room"`

	Name        string `gorm:"size:150" json:"name"`
	Age         int    `json:"age"`
	Gender      string `gorm:"size:20" json:"gender"`
	CountryCode string `gorm:"size:10" json:"countryCode"`
	Mobile      string `gorm:"size:20" json:"mobile"`
	Address     string `gorm:"type:text" json:"address"`

	VerificationIDType string `gorm:"size:50;column:verification_id_type" json:"verificationIdType"`
	VerificationID     string `gorm:"size:100;column:verification_id" json:"verificationId"`

	CheckInAt time.Time `gorm:"column:check_in_at" json:"checkIn"`
}
