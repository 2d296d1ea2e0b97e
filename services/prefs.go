package services

import (
	"strconv"

	"github.com/JanHousa/DrinkWaterApp/models"

	"gorm.io/gorm"
)

// Preference keys. The key space mirrors the mobile client's shared
// preferences so exported data stays compatible.
const (
	KeyIsLoggedIn = "is_logged_in"
	KeyUsername   = "username"
	KeyDailyGoal  = "daily_goal"
	KeyEntries    = "entries"
)

const DefaultDailyGoal = 2000.0

// PrefStore is the string-keyed settings store backing session state and
// the serialized entry list. Reads fall back to the given default; they
// never fail.
type PrefStore struct {
	db *gorm.DB
}

func NewPrefStore(db *gorm.DB) *PrefStore {
	return &PrefStore{db: db}
}

func (s *PrefStore) GetString(key, fallback string) string {
	var p models.Preference
	if err := s.db.First(&p, "key = ?", key).Error; err != nil {
		return fallback
	}
	return p.Value
}

func (s *PrefStore) SetString(key, value string) error {
	p := models.Preference{Key: key, Value: value}
	return s.db.
		Where("key = ?", key).
		Assign(models.Preference{Value: value}).
		FirstOrCreate(&p).Error
}

func (s *PrefStore) GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(s.GetString(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func (s *PrefStore) SetBool(key string, value bool) error {
	return s.SetString(key, strconv.FormatBool(value))
}

func (s *PrefStore) GetFloat(key string, fallback float64) float64 {
	raw := s.GetString(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func (s *PrefStore) SetFloat(key string, value float64) error {
	return s.SetString(key, strconv.FormatFloat(value, 'f', -1, 64))
}
