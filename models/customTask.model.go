package models

import "gorm.io/gorm"

// CustomTask is a freeform to-do item on a date. An empty Time means all day.
type CustomTask struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Date      string `json:"date" gorm:"index"` // YYYY-MM-DD
	Time      string `json:"time"`              // HH:MM or empty
	Title     string `json:"title" gorm:"not null"`
	Notes     string `json:"notes"`
	IsDeleted bool   `gorm:"default:false"`
}
