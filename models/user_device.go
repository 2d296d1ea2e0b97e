package models

import "time"

// UserDevice is a mobile device registered for push delivery of drink
// reminders. The raw push token is never stored, only its hash.
type UserDevice struct {
	ID          uint   `gorm:"primaryKey"`
	Platform    string `gorm:"size:16"` // "android" | "ios"
	TokenHash   string `gorm:"size:64;uniqueIndex"`
	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
