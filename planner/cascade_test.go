package planner

import (
	"errors"
	"fmt"
	"studyplanner/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCourse(t *testing.T, db *gorm.DB, userID uint) (*models.CoursePlan, []models.CourseModule, *models.SavedQuiz) {
	t.Helper()

	plan := models.CoursePlan{UserID: userID, Title: "Algebra in a Week", StartDate: "2026-02-01", DurationDays: 7}
	require.NoError(t, db.Create(&plan).Error)

	var modules []models.CourseModule
	for day := 1; day <= 7; day++ {
		modules = append(modules, models.CourseModule{
			CourseID: plan.ID, UserID: userID, DayIndex: day,
			TaskDate: fmt.Sprintf("2026-02-%02d", day), Title: "Day module",
		})
	}
	require.NoError(t, db.Create(&modules).Error)

	quiz := models.SavedQuiz{UserID: userID, Title: "Algebra Quiz", Content: "q", SourceCourseID: plan.ID}
	require.NoError(t, db.Create(&quiz).Error)

	return &plan, modules, &quiz
}

func TestDeleteCourseCascades(t *testing.T) {
	db := testDb(t)
	const userID = 1

	plan, _, quiz := seedCourse(t, db, userID)

	// Unrelated quiz must survive the cascade.
	standalone := models.SavedQuiz{UserID: userID, Title: "Standalone", Content: "s"}
	require.NoError(t, db.Create(&standalone).Error)

	require.NoError(t, DeleteCourse(db, userID, plan.ID))

	assert.Equal(t, int64(0), countRows(t, db, &models.CoursePlan{}, userID))
	assert.Equal(t, int64(0), countRows(t, db, &models.CourseModule{}, userID))
	assert.Equal(t, int64(1), countRows(t, db, &models.SavedQuiz{}, userID))

	var remaining models.SavedQuiz
	require.NoError(t, db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&remaining).Error)
	assert.Equal(t, "Standalone", remaining.Title)
	assert.NotEqual(t, quiz.ID, remaining.ID)

	// No read path may still surface the course's items.
	month, err := GetMonth(db, userID, "2026-02")
	require.NoError(t, err)
	assert.Empty(t, month.Days)
}

func TestDeleteCourseLeavesOtherUsersAlone(t *testing.T) {
	db := testDb(t)

	mine, _, _ := seedCourse(t, db, 1)
	seedCourse(t, db, 2)

	require.NoError(t, DeleteCourse(db, 1, mine.ID))

	assert.Equal(t, int64(1), countRows(t, db, &models.CoursePlan{}, 2))
	assert.Equal(t, int64(7), countRows(t, db, &models.CourseModule{}, 2))
	assert.Equal(t, int64(1), countRows(t, db, &models.SavedQuiz{}, 2))
}

func TestDeleteCourseNotFound(t *testing.T) {
	db := testDb(t)

	assert.True(t, errors.Is(DeleteCourse(db, 1, 999), ErrNotFound))

	// Deleting someone else's course reads as not-found, never as denied.
	theirs, _, _ := seedCourse(t, db, 2)
	assert.True(t, errors.Is(DeleteCourse(db, 1, theirs.ID), ErrNotFound))
	assert.Equal(t, int64(1), countRows(t, db, &models.CoursePlan{}, 2))
}

func TestDirectDeletesAreScoped(t *testing.T) {
	db := testDb(t)

	slot, err := CreateBusySlot(db, 1, "2026-02-01", "10:00", "11:00", "Club")
	require.NoError(t, err)
	task, err := CreateCustomTask(db, 1, "2026-02-01", "", "Task", "")
	require.NoError(t, err)
	reminder, err := CreateReminder(db, 1, "2026-02-01", "09:00", "Reminder", "", 0)
	require.NoError(t, err)

	// Wrong owner: not found, rows untouched.
	assert.True(t, errors.Is(DeleteBusySlot(db, 2, slot.ID), ErrNotFound))
	assert.True(t, errors.Is(DeleteTask(db, 2, task.ID), ErrNotFound))
	assert.True(t, errors.Is(DeleteReminder(db, 2, reminder.ID), ErrNotFound))

	// Right owner: deleted, second delete reports not found.
	require.NoError(t, DeleteBusySlot(db, 1, slot.ID))
	require.NoError(t, DeleteTask(db, 1, task.ID))
	require.NoError(t, DeleteReminder(db, 1, reminder.ID))
	assert.True(t, errors.Is(DeleteBusySlot(db, 1, slot.ID), ErrNotFound))

	day, err := GetDay(db, 1, "2026-02-01")
	require.NoError(t, err)
	assert.Empty(t, day.Items)
}

func TestDeleteModuleDoesNotCascade(t *testing.T) {
	db := testDb(t)

	plan, modules, _ := seedCourse(t, db, 1)

	require.NoError(t, DeleteModule(db, 1, modules[0].ID))

	assert.Equal(t, int64(1), countRows(t, db, &models.CoursePlan{}, 1))
	assert.Equal(t, int64(6), countRows(t, db, &models.CourseModule{}, 1))
	assert.Equal(t, int64(1), countRows(t, db, &models.SavedQuiz{}, 1))
	_ = plan
}
