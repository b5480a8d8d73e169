package services

import (
	"context"
	"errors"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// BookingService handles online booking requests from the guest-facing
// page. Confirmation is OTP-gated and funnels into the same occupancy
// ledger as front-desk check-in, so it inherits the 404/409 taxonomy.
type BookingService struct {
	DB     *gorm.DB
	Guests *GuestService
	OTP    *OTPService
}

func NewBookingService(db *gorm.DB, guests *GuestService, otp *OTPService) *BookingService {
	return &BookingService{DB: db, Guests: guests, OTP: otp}
}

// Create records a Pending booking request. The room must exist, but
// availability is only decided at confirmation time.
func (s *BookingService) Create(booking *models.Booking) error {
	var hotel models.Hotel
	if err := s.DB.Where("name = ?", booking.HotelName).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}

	var room models.Room
	if err := s.DB.Where("hotel_name = ? AND room_number = ?", booking.HotelName, booking.RoomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	booking.Status = models.BookingPending
	return s.DB.Create(booking).Error
}

// Confirm verifies the OTP issued to the booking's mobile number and checks
// the guest in. The booking flips to Confirmed only after the ledger
// accepts the check-in; a RoomOccupied loss leaves it Pending for another
// room choice.
func (s *BookingService) Confirm(ctx context.Context, id uint, hotelName, otp string) (models.Guest, error) {
	var booking models.Booking
	if err := s.DB.Where("id = ? AND hotel_name = ?", id, hotelName).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrBookingNotFound
		}
		return models.Guest{}, err
	}
	if booking.Status != models.BookingPending {
		return models.Guest{}, ErrInvalidTransition
	}

	if err := s.OTP.Verify(ctx, booking.Mobile, otp); err != nil {
		return models.Guest{}, err
	}

	guest := models.Guest{
		HotelName:          booking.HotelName,
		RoomNumber:         booking.RoomNumber,
		Name:               booking.GuestName,
		Age:                booking.Age,
		Gender:             booking.Gender,
		CountryCode:        booking.CountryCode,
		Mobile:             booking.Mobile,
		Address:            booking.Address,
		VerificationIDType: booking.VerificationIDType,
		VerificationID:     booking.VerificationID,
		CheckInAt:          time.Now(),
	}
	if err := s.Guests.CheckIn(&guest); err != nil {
		return models.Guest{}, err
	}

	if err := s.DB.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
		return guest, err
	}
	return guest, nil
}

// Cancel marks a pending booking Cancelled.
func (s *BookingService) Cancel(id uint, hotelName string) error {
	res := s.DB.Model(&models.Booking{}).
		Where("id = ? AND hotel_name = ? AND status = ?", id, hotelName, models.BookingPending).
		Update("status", models.BookingCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// GetAll lists a hotel's booking requests, newest first.
func (s *BookingService) GetAll(hotelName string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("hotel_name = ?", hotelName).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
