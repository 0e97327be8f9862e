package planner

import (
	"strings"
	"studyplanner/models"

	"gorm.io/gorm"
)

func clamp(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) > max {
		return text[:max]
	}
	return text
}

// CreateBusySlot validates and stores a busy slot. End must be after start.
func CreateBusySlot(db *gorm.DB, userID uint, date, startTime, endTime, title string) (*models.BusySlot, error) {
	if !IsValidDate(date) {
		return nil, validationErr("date", "invalid date, use YYYY-MM-DD")
	}
	start, err := NormalizeTime(startTime)
	if err != nil {
		return nil, validationErr("start_time", "invalid time, use HH:MM (24-hour)")
	}
	end, err := NormalizeTime(endTime)
	if err != nil {
		return nil, validationErr("end_time", "invalid time, use HH:MM (24-hour)")
	}
	if end <= start {
		return nil, validationErr("end_time", "end_time must be after start_time")
	}

	title = clamp(title, 120)
	if title == "" {
		title = "Busy"
	}

	slot := models.BusySlot{
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Title:     title,
	}
	if err := db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// CreateCustomTask validates and stores a task. An empty timeText means all day.
func CreateCustomTask(db *gorm.DB, userID uint, date, timeText, title, notes string) (*models.CustomTask, error) {
	if !IsValidDate(date) {
		return nil, validationErr("date", "invalid date, use YYYY-MM-DD")
	}
	title = clamp(title, 180)
	if title == "" {
		return nil, validationErr("title", "title is required")
	}
	if timeText != "" {
		normalized, err := NormalizeTime(timeText)
		if err != nil {
			return nil, err
		}
		timeText = normalized
	}

	task := models.CustomTask{
		UserID: userID,
		Date:   date,
		Time:   timeText,
		Title:  title,
		Notes:  clamp(notes, 1000),
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateReminder validates and stores a reminder. Date and time are required.
func CreateReminder(db *gorm.DB, userID uint, date, timeText, text, targetType string, targetID uint) (*models.Reminder, error) {
	if !IsValidDate(date) {
		return nil, validationErr("date", "invalid date, use YYYY-MM-DD")
	}
	normalized, err := NormalizeTime(timeText)
	if err != nil {
		return nil, err
	}
	text = clamp(text, 240)
	if text == "" {
		return nil, validationErr("text", "text is required")
	}

	reminder := models.Reminder{
		UserID:     userID,
		Date:       date,
		Time:       normalized,
		Text:       text,
		TargetType: clamp(targetType, 40),
		TargetID:   targetID,
	}
	if err := db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}
