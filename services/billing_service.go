package services

import (
	"errors"
	"log"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// BillingService owns the Active → Billed transition. Checkout runs inside
// a single transaction: history insert, guest delete and order purge either
// all land or none do.
type BillingService struct {
	DB *gorm.DB

	// Now is swappable in tests; billing always prices up to "now", so a
	// preview followed by a later checkout legitimately bills more.
	Now func() time.Time
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db, Now: time.Now}
}

// Preview computes the bill a guest would pay if checked out right now,
// without touching any state.
func (s *BillingService) Preview(guestID uint, hotelName string) (Bill, error) {
	var bill Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		guest, room, ancillary, err := s.loadBillInputs(tx, guestID, hotelName)
		if err != nil {
			return err
		}
		bill = ComputeBill(guest.CheckInAt, s.Now(), room.RateCard(), ancillary)
		return nil
	})
	return bill, err
}

// Checkout finalizes a stay: writes the immutable history record, frees the
// room by deleting the active guest row and purges the room's food orders.
func (s *BillingService) Checkout(guestID uint, hotelName string) (models.BillRecord, error) {
	var record models.BillRecord

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		guest, room, ancillary, err := s.loadBillInputs(tx, guestID, hotelName)
		if err != nil {
			return err
		}

		now := s.Now()
		bill := ComputeBill(guest.CheckInAt, now, room.RateCard(), ancillary)

		record = models.BillRecord{
			HotelName:       guest.HotelName,
			GuestName:       guest.Name,
			RoomNumber:      guest.RoomNumber,
			CheckInAt:       guest.CheckInAt,
			CheckOutAt:      now,
			TotalHours:      bill.TotalHours,
			GrossAmount:     bill.Gross,
			DiscountAmount:  bill.Discount,
			AncillaryAmount: bill.Ancillary,
			FinalAmount:     bill.Final,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		// A concurrent checkout may have removed the row after our
		// read; losing that race must not leave a second history record.
		res := tx.Delete(&models.Guest{}, guest.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGuestNotFound
		}

		// Orders delivered after this point belong to nobody; purge the
		// room's orders so the next occupant starts clean.
		if err := tx.Where("hotel_name = ? AND room_number = ?", guest.HotelName, guest.RoomNumber).
			Delete(&models.FoodOrder{}).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrGuestNotFound) && !errors.Is(err, ErrRoomNotFound) {
			log.Printf("❌ checkout failed for guest %d (%s), rolled back: %v", guestID, hotelName, err)
		}
		return models.BillRecord{}, err
	}

	return record, nil
}

// loadBillInputs gathers everything a bill needs: the active guest, the
// room's rate card and the sum of food orders already marked Delivered.
func (s *BillingService) loadBillInputs(tx *gorm.DB, guestID uint, hotelName string) (models.Guest, models.Room, float64, error) {
	var guest models.Guest
	if err := tx.Where("id = ? AND hotel_name = ?", guestID, hotelName).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, models.Room{}, 0, ErrGuestNotFound
		}
		return guest, models.Room{}, 0, err
	}

	var room models.Room
	if err := tx.Where("hotel_name = ? AND room_number = ?", guest.HotelName, guest.RoomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, room, 0, ErrRoomNotFound
		}
		return guest, room, 0, err
	}

	var ancillary float64
	if err := tx.Model(&models.FoodOrder{}).
		Where("hotel_name = ? AND room_number = ? AND status = ?", guest.HotelName, guest.RoomNumber, models.OrderDelivered).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&ancillary).Error; err != nil {
		return guest, room, 0, err
	}

	return guest, room, ancillary, nil
}
