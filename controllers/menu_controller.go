package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /api/menu?hotelName=. Public; only available items.
func (mc *MenuController) GetMenu(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	items, err := mc.Menu.GetAll(hotelName, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// GET /api/menu/all?hotelName=. Staff view including unavailable items.
func (mc *MenuController) GetFullMenu(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	items, err := mc.Menu.GetAll(hotelName, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// POST /api/menu
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if item.Name == "" || item.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and hotelName are required")
		return
	}
	if !requireHotelAccess(c, item.HotelName) {
		return
	}

	if err := mc.Menu.Create(&item); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /api/menu/:id?hotelName=
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := mc.Menu.Update(uint(id), hotelName, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Menu item updated"})
}

// DELETE /api/menu/:id?hotelName=
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}

	if err := mc.Menu.Delete(uint(id), hotelName); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Menu item deleted"})
}
