package models

// DrinkInfo describes one drink type from the fixed product catalog.
// HydrationFactor 1.0 means the drink hydrates like plain water.
type DrinkInfo struct {
	Name             string  `json:"name"`
	CaloriesPer100ml float64 `json:"calories_per_100ml"`
	HydrationFactor  float64 `json:"hydration_factor"`
}

// DefaultDrink is the fallback for unknown drink types.
const DefaultDrink = "Water"

// DrinkNames lists the catalog in the order pickers show it.
var DrinkNames = []string{
	"Water",
	"Tea",
	"Coffee",
	"Milk",
	"Juice",
	"Soda",
	"Energy drink",
	"Alcoholic drink",
	"Sports drink",
	"Cocktail",
}

var drinkCatalog = map[string]DrinkInfo{
	"Water":           {"Water", 0, 1.0},
	"Tea":             {"Tea", 1, 0.9},
	"Coffee":          {"Coffee", 2, 0.8},
	"Milk":            {"Milk", 60, 0.9},
	"Juice":           {"Juice", 45, 0.7},
	"Soda":            {"Soda", 40, 0.6},
	"Energy drink":    {"Energy drink", 45, 0.5},
	"Alcoholic drink": {"Alcoholic drink", 70, 0.3},
	"Sports drink":    {"Sports drink", 30, 0.8},
	"Cocktail":        {"Cocktail", 150, 0.4},
}

// LookupDrink returns the catalog entry for drinkType. Unknown names fall
// back to Water so every entry has defined derived values.
func LookupDrink(drinkType string) DrinkInfo {
	if info, ok := drinkCatalog[drinkType]; ok {
		return info
	}
	return drinkCatalog[DefaultDrink]
}
