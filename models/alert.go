package models

import "time"

type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"size:20"` // "reminder" | "info"
	Title     string `gorm:"size:100"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
