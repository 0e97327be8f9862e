package models

import "gorm.io/gorm"

// Reminder is a timed note on a date. TargetType/TargetID optionally link it
// to the entity it was created for (e.g. a course module moved with a time).
type Reminder struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Date       string `json:"date" gorm:"index"` // YYYY-MM-DD
	Time       string `json:"time"`              // HH:MM
	Text       string `json:"text"`
	TargetType string `json:"target_type"`
	TargetID   uint   `json:"target_id"`
	Notified   bool   `json:"notified" gorm:"default:false"`
	IsDeleted  bool   `gorm:"default:false"`
}
