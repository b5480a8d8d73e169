package models

import "time"

// Online booking request lifecycle.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking is a request made from the public booking page. Confirming it
// (OTP-gated) performs the actual check-in through the occupancy ledger.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelName  string `gorm:"size:150;index" json:"hotelName"`
	RoomNumber string `gorm:"size:50;column:room_number" json:"roomNumber"`

	GuestName   string `gorm:"size:150" json:"guestName"`
	Age         int    `json:"age"`
	Gender      string `gorm:"size:20" json:"gender"`
	CountryCode string `gorm:"size:10" json:"countryCode"`
	Mobile      string `gorm:"size:20" json:"mobile"`
	Address     string `gorm:"type:text" json:"address"`

	VerificationIDType string `gorm:"size:50;column:verification_id_type" json:"verificationIdType"`
	VerificationID     string `gorm:"size:100;column:verification_id" json:"verificationId"`

	Status string `gorm:"size:20;default:Pending" json:"status"`
}
