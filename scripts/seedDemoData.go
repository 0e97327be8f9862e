package main

import (
	"encoding/json"
	"log"
	"studyplanner/config"
	"studyplanner/database"
	"studyplanner/models"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with a small schedule for local development.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ? AND is_deleted = ?", "demo@studyplanner.local", false).
		First(&existing).Error; err == nil {
		log.Fatal("Demo user already exists. Nothing to do.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	settings, _ := json.Marshal(models.AccountSettings{
		WebSearchEnabled:      true,
		SaveChatHistory:       true,
		StudyRemindersEnabled: true,
		GradeLevel:            "Grade 10",
		EducationBoard:        "General",
	})

	user := models.User{
		Name:     "Demo Student",
		Email:    "demo@studyplanner.local",
		Password: string(hashed),
		Settings: settings,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	monday := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	rows := []interface{}{
		&models.CustomTask{UserID: user.ID, Date: monday, Title: "Revise Calculus", Notes: "Chapters 3-4"},
		&models.CustomTask{UserID: user.ID, Date: monday, Time: "16:30", Title: "Flashcard session"},
		&models.BusySlot{UserID: user.ID, Date: monday, StartTime: "18:00", EndTime: "19:30", Title: "Study Group"},
		&models.Reminder{UserID: user.ID, Date: monday, Time: "08:00", Text: "Pack lab notebook"},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			log.Fatalf("Failed to seed row: %v", err)
		}
	}

	log.Printf("Seeded demo user %d (demo@studyplanner.local / demo-password)", user.ID)
}
