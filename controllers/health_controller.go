package controllers

import (
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Health *services.HealthService
}

func NewHealthController(h *services.HealthService) *HealthController {
	return &HealthController{Health: h}
}

// GET /health-tips?query=... — nutrient lookup; the query defaults to
// "1 cup water" when absent.
func (hc *HealthController) GetTips(c *gin.Context) {
	tips, err := hc.Health.LookupTips(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}
