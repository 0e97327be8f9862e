package models

import "gorm.io/gorm"

// SavedQuiz is stored quiz text, optionally sourced from a course. Quizzes
// with a SourceCourseID are removed by the course cascade delete.
type SavedQuiz struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"index;not null"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	SourceCourseID uint   `json:"source_course_id" gorm:"index"`
	SourceModuleID uint   `json:"source_module_id"`
	IsDeleted      bool   `gorm:"default:false"`
}
