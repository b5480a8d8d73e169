package controllers

import (
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

// GET /api/history?hotelName=. Newest checkout first.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	hotelName, ok := requireHotelName(c)
	if !ok {
		return
	}

	records, err := hc.History.GetAll(hotelName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}
