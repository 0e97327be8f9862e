package models

import "gorm.io/gorm"

// CourseModule is one day's lesson/practice/quiz content within a CoursePlan.
// DayIndex stays the authoritative ordinal within the course even when the
// module's TaskDate is later edited.
type CourseModule struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	DayIndex        int    `json:"day_index"`
	TaskDate        string `json:"task_date" gorm:"index"` // YYYY-MM-DD
	Title           string `json:"title"`
	LessonContent   string `json:"lesson_content"`
	PracticeContent string `json:"practice_content"`
	QuizContent     string `json:"quiz_content"`
	IsDeleted       bool   `gorm:"default:false"`
}
