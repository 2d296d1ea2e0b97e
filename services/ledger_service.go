package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/JanHousa/DrinkWaterApp/models"
)

// Totals are the derived ledger aggregates. They always equal a fold over
// the current entries; nothing maintains them independently.
type Totals struct {
	Volume    float64 `json:"total_volume"`
	Calories  float64 `json:"total_calories"`
	Hydration float64 `json:"total_hydration"`
}

// LedgerService holds the ordered fluid entries for the active profile.
// Every mutation persists the full sequence before returning; a failed
// write rolls the in-memory change back so both views stay in step.
type LedgerService struct {
	mu      sync.Mutex
	prefs   *PrefStore
	entries []models.FluidEntry
}

// NewLedgerService loads the stored entry list. Missing or corrupt data
// loads as an empty ledger.
func NewLedgerService(prefs *PrefStore) *LedgerService {
	raw := prefs.GetString(KeyEntries, "[]")
	var entries []models.FluidEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		entries = nil
	}
	return &LedgerService{prefs: prefs, entries: entries}
}

// Add parses amount and appends a new entry with the current timestamp.
// Non-numeric or non-positive input blocks creation and reports false;
// the ledger is untouched.
func (l *LedgerService) Add(amount, drinkType string) (models.FluidEntry, bool, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || value <= 0 {
		return models.FluidEntry{}, false, nil
	}
	entry := models.NewFluidEntry(value, drinkType)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if err := l.persistLocked(); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		return models.FluidEntry{}, false, err
	}
	return entry, true, nil
}

// Remove drops the first entry equal by value. When duplicates exist only
// the first occurrence is removed.
func (l *LedgerService) Remove(entry models.FluidEntry) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e == entry {
			prev := make([]models.FluidEntry, len(l.entries))
			copy(prev, l.entries)
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			if err := l.persistLocked(); err != nil {
				l.entries = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Entries returns a copy of the ordered sequence, oldest first.
func (l *LedgerService) Entries() []models.FluidEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.FluidEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Totals folds over all entries.
func (l *LedgerService) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	var t Totals
	for _, e := range l.entries {
		t.Volume += e.Amount
		t.Calories += e.Calories()
		t.Hydration += e.Hydration()
	}
	return t
}

// ProgressFraction is consumed volume over the daily goal, clamped to
// [0,1] for display.
func (l *LedgerService) ProgressFraction(goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return clamp01(l.Totals().Volume / goal)
}

// HydrationFraction is effective hydration over the daily goal, clamped
// to [0,1] for display.
func (l *LedgerService) HydrationFraction(goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return clamp01(l.Totals().Hydration / goal)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (l *LedgerService) persistLocked() error {
	entries := l.entries
	if entries == nil {
		entries = []models.FluidEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return l.prefs.SetString(KeyEntries, string(raw))
}
