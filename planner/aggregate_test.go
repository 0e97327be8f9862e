package planner

import (
	"studyplanner/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDayOrdering(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateReminder(db, userID, "2026-02-01", "09:00", "Review flashcards", "", 0)
	require.NoError(t, err)
	_, err = CreateBusySlot(db, userID, "2026-02-01", "10:00", "11:00", "Football practice")
	require.NoError(t, err)
	_, err = CreateCustomTask(db, userID, "2026-02-01", "", "Pack school bag", "")
	require.NoError(t, err)

	view, err := GetDay(db, userID, "2026-02-01")
	require.NoError(t, err)
	require.Len(t, view.Items, 3)

	// All-day task first, then the 09:00 reminder, then the 10:00 slot.
	assert.Equal(t, ItemCustomTask, view.Items[0].ItemType)
	assert.Equal(t, ItemReminder, view.Items[1].ItemType)
	assert.Equal(t, ItemBusySlot, view.Items[2].ItemType)
}

func TestGetDayTimedTaskSortsBetween(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateCustomTask(db, userID, "2026-02-01", "", "All day errand", "")
	require.NoError(t, err)
	_, err = CreateCustomTask(db, userID, "2026-02-01", "7:30", "Morning revision", "")
	require.NoError(t, err)
	_, err = CreateReminder(db, userID, "2026-02-01", "09:00", "Check homework", "", 0)
	require.NoError(t, err)

	view, err := GetDay(db, userID, "2026-02-01")
	require.NoError(t, err)
	require.Len(t, view.Items, 3)

	assert.Equal(t, "All day errand", view.Items[0].Title)
	assert.Equal(t, "Morning revision", view.Items[1].Title)
	assert.Equal(t, "07:30", view.Items[1].Time) // time is stored zero-padded
	assert.Equal(t, "Check homework", view.Items[2].Title)
}

func TestGetMonthOnlyDatesWithItems(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateCustomTask(db, userID, "2026-02-03", "", "Essay draft", "")
	require.NoError(t, err)
	_, err = CreateCustomTask(db, userID, "2026-03-01", "", "Next month task", "")
	require.NoError(t, err)

	view, err := GetMonth(db, userID, "2026-02")
	require.NoError(t, err)

	assert.Equal(t, "2026-02", view.Month)
	require.Len(t, view.Days, 1)
	require.Len(t, view.Days["2026-02-03"], 1)
	assert.Equal(t, "Essay draft", view.Days["2026-02-03"][0].Title)
}

func TestGetMonthMatchesDayUnion(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateCustomTask(db, userID, "2026-02-01", "", "Task A", "")
	require.NoError(t, err)
	taskB, err := CreateCustomTask(db, userID, "2026-02-10", "08:00", "Task B", "")
	require.NoError(t, err)
	_, err = CreateBusySlot(db, userID, "2026-02-10", "12:00", "13:00", "Lunch club")
	require.NoError(t, err)
	_, err = CreateReminder(db, userID, "2026-02-28", "20:00", "Submit form", "", 0)
	require.NoError(t, err)

	// Delete one entity; it must vanish from both read paths.
	require.NoError(t, DeleteTask(db, userID, taskB.ID))

	month, err := GetMonth(db, userID, "2026-02")
	require.NoError(t, err)

	type key struct {
		kind string
		id   uint
	}
	monthSet := map[key]bool{}
	for date, items := range month.Days {
		day, err := GetDay(db, userID, date)
		require.NoError(t, err)
		require.Len(t, day.Items, len(items))
		for _, it := range items {
			monthSet[key{it.ItemType, it.ID}] = true
		}
		for _, it := range day.Items {
			assert.True(t, monthSet[key{it.ItemType, it.ID}])
		}
	}

	assert.Len(t, monthSet, 3)
	assert.False(t, monthSet[key{ItemCustomTask, taskB.ID}])
}

func TestGetMonthEmptyUser(t *testing.T) {
	db := testDb(t)

	view, err := GetMonth(db, 42, "2026-02")
	require.NoError(t, err)
	assert.Empty(t, view.Days)

	day, err := GetDay(db, 42, "2026-02-01")
	require.NoError(t, err)
	assert.Empty(t, day.Items)
}

func TestGetMonthRejectsBadKey(t *testing.T) {
	db := testDb(t)

	_, err := GetMonth(db, 1, "Feb 2026")
	assert.True(t, IsValidationError(err))

	_, err = GetDay(db, 1, "01/02/2026")
	assert.True(t, IsValidationError(err))
}

func TestGetMonthScopedToUser(t *testing.T) {
	db := testDb(t)

	_, err := CreateCustomTask(db, 1, "2026-02-01", "", "Mine", "")
	require.NoError(t, err)
	_, err = CreateCustomTask(db, 2, "2026-02-01", "", "Theirs", "")
	require.NoError(t, err)

	view, err := GetMonth(db, 1, "2026-02")
	require.NoError(t, err)
	require.Len(t, view.Days["2026-02-01"], 1)
	assert.Equal(t, "Mine", view.Days["2026-02-01"][0].Title)
}

func TestGetDayModuleContentAttached(t *testing.T) {
	db := testDb(t)

	module := models.CourseModule{
		CourseID: 7, UserID: 1, DayIndex: 2, TaskDate: "2026-02-05",
		Title: "Fractions", LessonContent: "lesson", PracticeContent: "practice", QuizContent: "quiz",
	}
	require.NoError(t, db.Create(&module).Error)

	day, err := GetDay(db, 1, "2026-02-05")
	require.NoError(t, err)
	require.Len(t, day.Items, 1)
	assert.Equal(t, "lesson", day.Items[0].LessonContent)
	assert.Equal(t, uint(7), day.Items[0].CourseID)
	assert.Equal(t, 2, day.Items[0].DayIndex)

	month, err := GetMonth(db, 1, "2026-02")
	require.NoError(t, err)
	assert.Empty(t, month.Days["2026-02-05"][0].LessonContent)
}
