package planner

import (
	"fmt"
	"studyplanner/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDb opens an isolated in-memory database migrated with the planner schema.
func testDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CoursePlan{},
		&models.CourseModule{},
		&models.BusySlot{},
		&models.CustomTask{},
		&models.Reminder{},
		&models.SavedQuiz{},
	))
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).
		Where("user_id = ? AND is_deleted = ?", userID, false).Count(&n).Error)
	return n
}
