package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login: returns the session token plus the capability
// set so the dashboard can hide actions the user can't perform. Hiding is
// advisory; the server re-checks on every protected call.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	token, staff, err := ac.Auth.Login(username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":        token,
		"fullName":     staff.FullName,
		"role":         staff.Role,
		"hotelName":    staff.HotelName,
		"capabilities": models.CapabilitiesForRole(staff.Role),
	})
}
