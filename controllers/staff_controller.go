package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

// GET /api/staff?hotelName=. Admin only.
func (sc *StaffController) GetStaff(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	staff, err := sc.Staff.GetAll(hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

type createStaffPayload struct {
	HotelName string `json:"hotelName"`
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// POST /api/staff: admin only.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var payload createStaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Username == "" || payload.Password == "" || payload.HotelName == "" || payload.Role == "" {
		utils.JSONError(c, http.StatusBadRequest, "username, password, role and hotelName are required")
		return
	}

	switch payload.Role {
	case models.RoleAdmin, models.RoleReceptionist, models.RoleKitchen, models.RoleHousekeeping:
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown role")
		return
	}

	staff := models.Staff{
		HotelName: payload.HotelName,
		FullName:  payload.FullName,
		Username:  payload.Username,
		Role:      payload.Role,
	}
	if err := sc.Staff.Create(&staff, payload.Password); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// DELETE /api/staff/:id?hotelName=. Admin only.
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	if err := sc.Staff.Delete(uint(id), hotelName); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Staff account deleted"})
}
