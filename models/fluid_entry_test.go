package models

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewFluidEntryDefaults(t *testing.T) {
	before := time.Now().UnixMilli()
	e := NewFluidEntry(250, "Tea")
	after := time.Now().UnixMilli()

	if e.Amount != 250 || e.Unit != "ml" || e.DrinkType != "Tea" {
		t.Errorf("NewFluidEntry = %+v", e)
	}
	if e.Timestamp < before || e.Timestamp > after {
		t.Errorf("Timestamp %d outside [%d, %d]", e.Timestamp, before, after)
	}
}

func TestEntryDerivedValues(t *testing.T) {
	e := FluidEntry{Amount: 500, Unit: "ml", DrinkType: "Coffee"}
	if got := e.Calories(); !almostEqual(got, 10) {
		t.Errorf("Calories() = %v, want 10", got)
	}
	if got := e.Hydration(); !almostEqual(got, 400) {
		t.Errorf("Hydration() = %v, want 400", got)
	}
	pct, ok := e.HydrationPercent()
	if !ok || !almostEqual(pct, 80) {
		t.Errorf("HydrationPercent() = %v, %v, want 80, true", pct, ok)
	}
}

func TestEntryUnknownTypeUsesWater(t *testing.T) {
	e := FluidEntry{Amount: 300, Unit: "ml", DrinkType: "Smoothie"}
	if got := e.Calories(); got != 0 {
		t.Errorf("Calories() = %v, want 0", got)
	}
	if got := e.Hydration(); got != 300 {
		t.Errorf("Hydration() = %v, want 300", got)
	}
}

func TestHydrationPercentUndefinedForZeroAmount(t *testing.T) {
	e := FluidEntry{Amount: 0, Unit: "ml", DrinkType: "Water"}
	if _, ok := e.HydrationPercent(); ok {
		t.Error("HydrationPercent() defined for zero amount")
	}
}
