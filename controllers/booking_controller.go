package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// POST /api/bookings: public booking page submits a request.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if booking.GuestName == "" || booking.Mobile == "" || booking.RoomNumber == "" || booking.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "guestName, mobile, roomNumber and hotelName are required")
		return
	}

	if err := bc.Bookings.Create(&booking); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type confirmBookingPayload struct {
	HotelName string `json:"hotelName"`
	OTP       string `json:"otp"`
}

// POST /api/bookings/:id/confirm: OTP-verified check-in.
func (bc *BookingController) ConfirmBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var payload confirmBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotelName and otp are required")
		return
	}

	guest, err := bc.Bookings.Confirm(c.Request.Context(), uint(id), payload.HotelName, payload.OTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed, guest checked in",
		"guest":   guest,
	})
}

// POST /api/bookings/:id/cancel
func (bc *BookingController) CancelBooking(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := bc.Bookings.Cancel(uint(id), hotelName); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// GET /api/bookings?hotelName=. Staff view of booking requests.
func (bc *BookingController) GetBookings(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	bookings, err := bc.Bookings.GetAll(hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
