package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type OTPController struct {
	OTP *services.OTPService
}

func NewOTPController(otp *services.OTPService) *OTPController {
	return &OTPController{OTP: otp}
}

type issueOTPPayload struct {
	Identifier string `json:"identifier"`
}

// POST /api/otp: issue a verification code for a mobile number or email.
// The response never contains the code; delivery goes through the gateway.
func (oc *OTPController) IssueOTP(c *gin.Context) {
	var payload issueOTPPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	identifier := strings.TrimSpace(payload.Identifier)
	if identifier == "" {
		utils.JSONError(c, http.StatusBadRequest, "identifier is required")
		return
	}

	if err := oc.OTP.Issue(c.Request.Context(), identifier); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "OTP sent"})
}
