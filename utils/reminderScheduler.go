package utils

import (
	"encoding/json"
	"log"
	"studyplanner/config"
	"studyplanner/database"
	"studyplanner/models"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processDueReminders finds reminders whose date/time has passed and have
// not been notified yet, and emails owners who opted into study reminders.
func processDueReminders() {
	db := database.Database.Db
	now := time.Now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var due []models.Reminder
	if err := db.Where(
		"is_deleted = ? AND notified = ? AND (date < ? OR (date = ? AND time <= ?))",
		false, false, today, today, clock,
	).Find(&due).Error; err != nil {
		logScheduler("Error fetching due reminders: " + err.Error())
		return
	}

	for _, reminder := range due {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", reminder.UserID, false).First(&user).Error; err != nil {
			continue
		}

		var settings models.AccountSettings
		if len(user.Settings) > 0 {
			if err := json.Unmarshal(user.Settings, &settings); err != nil {
				logScheduler("Bad settings JSON for user: " + err.Error())
			}
		}

		if settings.StudyRemindersEnabled && user.Email != "" {
			if err := SendReminderEmail(user.Email, reminder.Text, reminder.Date, reminder.Time); err != nil {
				logScheduler("Failed to send reminder email: " + err.Error())
				continue
			}
		}

		// Mark notified either way so disabled users are not re-scanned forever.
		if err := db.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
			Update("notified", true).Error; err != nil {
			logScheduler("Failed to mark reminder notified: " + err.Error())
		}
	}

	if len(due) > 0 {
		logScheduler("Processed due reminders")
	}
}

// StartReminderScheduler runs the due-reminder scan on the configured cron spec.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReminderCronSpec, processDueReminders)
	if err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}

	c.Start()
	logScheduler("Reminder scheduler started with spec " + config.AppConfig.ReminderCronSpec)
	return c
}
