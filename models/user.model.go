package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string         `gorm:"default:''"`
	Email     string         `gorm:"unique;not null"`
	Password  string         `gorm:"not null"`
	Settings  datatypes.JSON `json:"settings"`
	LastLogin *time.Time     `gorm:"default:NULL"`
	IsDeleted bool           `gorm:"default:false"`
}

// AccountSettings is the shape stored in User.Settings
type AccountSettings struct {
	WebSearchEnabled      bool   `json:"web_search_enabled"`
	SaveChatHistory       bool   `json:"save_chat_history"`
	StudyRemindersEnabled bool   `json:"study_reminders_enabled"`
	GradeLevel            string `json:"grade_level"`
	EducationBoard        string `json:"education_board"`
}

// DefaultAccountSettings returns the settings applied to a fresh signup
func DefaultAccountSettings() AccountSettings {
	return AccountSettings{
		WebSearchEnabled: true,
		SaveChatHistory:  true,
	}
}
