package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type createOrderPayload struct {
	HotelName  string             `json:"hotelName"`
	RoomNumber string             `json:"roomNumber"`
	Items      []models.OrderItem `json:"items"`
}

// POST /api/orders: place a food order for a room.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.HotelName == "" || payload.RoomNumber == "" || len(payload.Items) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "hotelName, roomNumber and items are required")
		return
	}

	order, err := oc.Orders.Create(payload.HotelName, payload.RoomNumber, payload.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /api/orders?hotelName=&status=&roomNumber=
// The kitchen view polls status=Pending, delivery polls status=Prepared.
func (oc *OrderController) GetOrders(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	orders, err := oc.Orders.GetAll(hotelName, c.Query("status"), c.Query("roomNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

type orderStatusPayload struct {
	Status string `json:"status"`
}

// PUT /api/orders/:id/status?hotelName=. Forward-only transitions.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var payload orderStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	order, err := oc.Orders.AdvanceStatus(uint(id), hotelName, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
