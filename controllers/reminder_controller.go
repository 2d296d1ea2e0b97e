package controllers

import (
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(r *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: r}
}

type scheduleReminderRequest struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// POST /reminders
func (rc *ReminderController) Schedule(c *gin.Context) {
	var req scheduleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	reminder, err := rc.Reminders.Schedule(req.Hours, req.Minutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// GET /reminders
func (rc *ReminderController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reminders": rc.Reminders.Pending()})
}

// DELETE /reminders/:id
func (rc *ReminderController) Cancel(c *gin.Context) {
	if !rc.Reminders.Cancel(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
