package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
	OTP    *services.OTPService
}

func NewGuestController(guests *services.GuestService, otp *services.OTPService) *GuestController {
	return &GuestController{Guests: guests, OTP: otp}
}

type createGuestPayload struct {
	Name               string `json:"name"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	CountryCode        string `json:"countryCode"`
	Mobile             string `json:"mobile"`
	Room               string `json:"room"`
	CheckIn            string `json:"checkIn"`
	Address            string `json:"address"`
	HotelName          string `json:"hotelName"`
	VerificationIDType string `json:"verificationIdType"`
	VerificationID     string `json:"verificationId"`
	OTP                string `json:"otp"`
}

// parseCheckIn accepts the timestamp formats the dashboards send. An
// empty value means "now" (walk-in check-in); anything else that fails
// to parse is an error, since a wrong check-in time misprices the stay.
func parseCheckIn(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized checkIn timestamp %q", raw)
}

// ----------------------------------------------------
// POST /api/guests: check a guest in.
// Staff with the addGuests capability skip OTP verification (manual
// front-desk path); everyone else must present a valid code for their
// mobile number.
// ----------------------------------------------------
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var payload createGuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.Name == "" || payload.Room == "" || payload.HotelName == "" || payload.Mobile == "" {
		utils.JSONError(c, http.StatusBadRequest, "name, mobile, room and hotelName are required")
		return
	}

	// A staff token only waives the OTP for its own hotel.
	if !requireHotelAccess(c, payload.HotelName) {
		return
	}
	caps, staff := middleware.Caps(c)
	if !staff || !caps.AddGuests {
		if err := gc.OTP.Verify(c.Request.Context(), payload.Mobile, payload.OTP); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	checkInAt, err := parseCheckIn(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn timestamp")
		return
	}

	guest := models.Guest{
		HotelName:          payload.HotelName,
		RoomNumber:         payload.Room,
		Name:               payload.Name,
		Age:                payload.Age,
		Gender:             payload.Gender,
		CountryCode:        payload.CountryCode,
		Mobile:             payload.Mobile,
		Address:            payload.Address,
		VerificationIDType: payload.VerificationIDType,
		VerificationID:     payload.VerificationID,
		CheckInAt:          checkInAt,
	}

	if err := gc.Guests.CheckIn(&guest); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest checked in successfully",
		"guest":   guest,
	})
}

// GET /api/guests?hotelName=
func (gc *GuestController) GetGuests(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	guests, err := gc.Guests.GetAll(hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// PUT /api/guests/:id?hotelName=. Edit demographic fields.
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := gc.Guests.Update(uint(id), hotelName, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Guest updated successfully"})
}
