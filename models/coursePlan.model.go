package models

import "gorm.io/gorm"

// CoursePlan is a generated multi-day study plan owned by a user
type CoursePlan struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	StartDate    string `json:"start_date"`    // YYYY-MM-DD
	DurationDays int    `json:"duration_days"` // 7-90, enforced at creation
	GenerationID string `json:"generation_id"` // uuid of the generator call
	IsDeleted    bool   `gorm:"default:false"`
}
