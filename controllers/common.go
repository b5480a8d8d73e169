package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/middleware"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinels to the API's error taxonomy:
// not-found → 404, conflicts → 409, OTP/validation → 400, everything
// else → 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrRoomOccupied),
		errors.Is(err, services.ErrDuplicateRoom),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrDuplicateHotel):
		utils.JSONError(c, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())

	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// requireHotelName pulls the mandatory hotelName query parameter and
// rejects staff asking for a tenant outside their token.
func requireHotelName(c *gin.Context) (string, bool) {
	hotelName := c.Query("hotelName")
	if hotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotelName is required")
		return "", false
	}
	if !requireHotelAccess(c, hotelName) {
		return "", false
	}
	return hotelName, true
}

// requireHotelAccess checks the caller's tenant claim against the hotel
// named in the request. Used directly by handlers that carry hotelName
// in the body instead of the query string.
func requireHotelAccess(c *gin.Context, hotelName string) bool {
	if !middleware.HotelScope(c, hotelName) {
		utils.JSONError(c, http.StatusForbidden, "permission denied")
		return false
	}
	return true
}
