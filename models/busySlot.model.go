package models

import "gorm.io/gorm"

// BusySlot is a user-declared block of unavailable time on a given date.
// Overlapping slots are permitted.
type BusySlot struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Date      string `json:"date" gorm:"index"` // YYYY-MM-DD
	StartTime string `json:"start_time"`        // HH:MM, must be before EndTime
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	IsDeleted bool   `gorm:"default:false"`
}
