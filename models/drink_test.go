package models

import "testing"

func TestLookupDrinkKnown(t *testing.T) {
	cases := []struct {
		name     string
		calories float64
		factor   float64
	}{
		{"Water", 0, 1.0},
		{"Tea", 1, 0.9},
		{"Coffee", 2, 0.8},
		{"Milk", 60, 0.9},
		{"Juice", 45, 0.7},
		{"Soda", 40, 0.6},
		{"Energy drink", 45, 0.5},
		{"Alcoholic drink", 70, 0.3},
		{"Sports drink", 30, 0.8},
		{"Cocktail", 150, 0.4},
	}
	for _, tc := range cases {
		info := LookupDrink(tc.name)
		if info.Name != tc.name {
			t.Errorf("LookupDrink(%q).Name = %q", tc.name, info.Name)
		}
		if info.CaloriesPer100ml != tc.calories {
			t.Errorf("LookupDrink(%q).CaloriesPer100ml = %v, want %v", tc.name, info.CaloriesPer100ml, tc.calories)
		}
		if info.HydrationFactor != tc.factor {
			t.Errorf("LookupDrink(%q).HydrationFactor = %v, want %v", tc.name, info.HydrationFactor, tc.factor)
		}
	}
}

func TestLookupDrinkUnknownFallsBackToWater(t *testing.T) {
	info := LookupDrink("Smoothie")
	if info.Name != "Water" || info.CaloriesPer100ml != 0 || info.HydrationFactor != 1.0 {
		t.Errorf("LookupDrink(\"Smoothie\") = %+v, want Water", info)
	}
}

func TestDrinkNamesCoverCatalog(t *testing.T) {
	if len(DrinkNames) != 10 {
		t.Fatalf("len(DrinkNames) = %d, want 10", len(DrinkNames))
	}
	if DrinkNames[0] != DefaultDrink {
		t.Errorf("DrinkNames[0] = %q, want %q", DrinkNames[0], DefaultDrink)
	}
	for _, name := range DrinkNames {
		if LookupDrink(name).Name != name {
			t.Errorf("catalog missing %q", name)
		}
	}
}
