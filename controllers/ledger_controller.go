package controllers

import (
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/models"
	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type LedgerController struct {
	Ledger   *services.LedgerService
	Sessions *services.SessionService
	Hub      *services.RealtimeHub
}

func NewLedgerController(l *services.LedgerService, s *services.SessionService, h *services.RealtimeHub) *LedgerController {
	return &LedgerController{Ledger: l, Sessions: s, Hub: h}
}

// Amount arrives as text, matching the client's input field.
type addEntryRequest struct {
	Amount    string `json:"amount"`
	DrinkType string `json:"drink_type"`
}

// GET /ledger/entries — the ordered sequence plus per-entry display values.
func (lc *LedgerController) ListEntries(c *gin.Context) {
	entries := lc.Ledger.Entries()
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		item := gin.H{
			"amount":    e.Amount,
			"unit":      e.Unit,
			"drinkType": e.DrinkType,
			"timestamp": e.Timestamp,
			"calories":  e.Calories(),
		}
		if pct, ok := e.HydrationPercent(); ok {
			item["hydration_percent"] = pct
		} else {
			item["hydration_percent"] = nil // undefined for a zero amount
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}

// POST /ledger/entries
func (lc *LedgerController) AddEntry(c *gin.Context) {
	var req addEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	entry, ok, err := lc.Ledger.Add(req.Amount, req.DrinkType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number"})
		return
	}

	lc.Hub.Broadcast(gin.H{"kind": "ledger.updated", "totals": lc.Ledger.Totals()})
	c.JSON(http.StatusCreated, entry)
}

// DELETE /ledger/entries — the body identifies the entry by value.
func (lc *LedgerController) RemoveEntry(c *gin.Context) {
	var entry models.FluidEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	removed, err := lc.Ledger.Remove(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}

	lc.Hub.Broadcast(gin.H{"kind": "ledger.updated", "totals": lc.Ledger.Totals()})
	c.Status(http.StatusNoContent)
}

// GET /ledger/totals — aggregates plus goal fractions.
func (lc *LedgerController) GetTotals(c *gin.Context) {
	goal := lc.Sessions.DailyGoal()
	c.JSON(http.StatusOK, gin.H{
		"totals":             lc.Ledger.Totals(),
		"daily_goal":         goal,
		"progress_fraction":  lc.Ledger.ProgressFraction(goal),
		"hydration_fraction": lc.Ledger.HydrationFraction(goal),
	})
}

// GET /ledger/drinks — the fixed catalog for pickers.
func (lc *LedgerController) ListDrinks(c *gin.Context) {
	out := make([]models.DrinkInfo, 0, len(models.DrinkNames))
	for _, name := range models.DrinkNames {
		out = append(out, models.LookupDrink(name))
	}
	c.JSON(http.StatusOK, gin.H{"drinks": out})
}
