package models

import "time"

// FluidEntry is one recorded drink. Timestamp is milliseconds since epoch,
// matching what the mobile client stores. Entries are immutable once
// created; removal matches the first entry equal by value.
type FluidEntry struct {
	Amount    float64 `json:"amount"` // millilitres
	Unit      string  `json:"unit"`
	DrinkType string  `json:"drinkType"`
	Timestamp int64   `json:"timestamp"`
}

func NewFluidEntry(amount float64, drinkType string) FluidEntry {
	return FluidEntry{
		Amount:    amount,
		Unit:      "ml",
		DrinkType: drinkType,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Calories is the calorie contribution of this entry.
func (e FluidEntry) Calories() float64 {
	return e.Amount * LookupDrink(e.DrinkType).CaloriesPer100ml / 100
}

// Hydration is the effective hydration volume of this entry.
func (e FluidEntry) Hydration() float64 {
	return e.Amount * LookupDrink(e.DrinkType).HydrationFactor
}

// HydrationPercent is the hydration share shown next to an entry. The
// second return is false for a zero amount, which has no defined share.
func (e FluidEntry) HydrationPercent() (float64, bool) {
	if e.Amount == 0 {
		return 0, false
	}
	return e.Hydration() / e.Amount * 100, true
}
