package controllers

import (
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

// GET /api/hotels: admin only.
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.Hotels.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// POST /api/hotels: admin only.
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if hotel.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := hc.Hotels.Create(&hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}
