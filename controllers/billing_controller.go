package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

type checkoutPayload struct {
	GuestID   uint   `json:"guestId"`
	HotelName string `json:"hotelName"`
}

// ----------------------------------------------------
// POST /api/billing/checkout: finalize a stay.
// The whole transition is one transaction; on any failure the guest stays
// active and no history row exists.
// ----------------------------------------------------
func (bc *BillingController) Checkout(c *gin.Context) {
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.GuestID == 0 || payload.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "guestId and hotelName are required")
		return
	}
	if !requireHotelAccess(c, payload.HotelName) {
		return
	}

	record, err := bc.Billing.Checkout(payload.GuestID, payload.HotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Checkout completed successfully",
		"finalAmount": record.FinalAmount,
	})
}

// GET /api/billing/preview?guestId=&hotelName=. Bill as of "now", no
// state change. The amount grows if the staff member waits before
// confirming the actual checkout.
func (bc *BillingController) Preview(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	guestID, err := strconv.ParseUint(c.Query("guestId"), 10, 32)
	if err != nil || guestID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "guestId is required")
		return
	}

	bill, err := bc.Billing.Preview(uint(guestID), hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}
