package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// GET /api/rooms?hotelName=
func (rc *RoomController) GetRooms(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	rooms, err := rc.Rooms.GetAll(hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// POST /api/rooms: manageRooms only.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if room.Number == "" || room.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomNumber and hotelName are required")
		return
	}
	if !requireHotelAccess(c, room.HotelName) {
		return
	}

	if err := rc.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// PUT /api/rooms/:id?hotelName=. Rejected with 409 while occupied.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Rooms.Update(uint(id), hotelName, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room updated successfully"})
}

// DELETE /api/rooms/:id?hotelName=. Rejected with 409 while occupied.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := rc.Rooms.Delete(uint(id), hotelName); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
