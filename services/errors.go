package services

import "errors"

// Sentinel errors shared by the services. Controllers translate these to
// HTTP statuses: not-found → 404, occupied/duplicate → 409, OTP and
// validation failures → 400.
var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrRoomOccupied  = errors.New("room is already occupied")
	ErrDuplicateRoom = errors.New("room number already exists for this hotel")

	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidOTP is deliberately generic: expired, unknown and
	// mismatched codes are indistinguishable to the caller.
	ErrInvalidOTP = errors.New("invalid or expired OTP")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)
