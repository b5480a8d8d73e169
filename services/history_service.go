package services

import (
	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// HistoryService reads bill records. There are deliberately no write
// methods: records are created by checkout and never touched again.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// GetAll returns a hotel's bill history, newest checkout first.
func (s *HistoryService) GetAll(hotelName string) ([]models.BillRecord, error) {
	var records []models.BillRecord
	err := s.DB.Where("hotel_name = ?", hotelName).
		Order("check_out_at DESC").
		Find(&records).Error
	return records, err
}
