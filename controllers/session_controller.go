package controllers

import (
	"errors"
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions *services.SessionService
}

func NewSessionController(s *services.SessionService) *SessionController {
	return &SessionController{Sessions: s}
}

// Daily goal arrives as text, matching the client's input field; an
// unparsable value falls back to the default goal.
type loginRequest struct {
	Username  string `json:"username"`
	DailyGoal string `json:"daily_goal"`
}

// POST /auth/login
func (sc *SessionController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	token, session, err := sc.Sessions.Login(req.Username, req.DailyGoal)
	if err != nil {
		if errors.Is(err, services.ErrBlankUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "session": session})
}

// POST /auth/logout
func (sc *SessionController) Logout(c *gin.Context) {
	if err := sc.Sessions.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /session
func (sc *SessionController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Sessions.Current())
}
