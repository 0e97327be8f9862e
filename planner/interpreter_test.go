package planner

import (
	"errors"
	"studyplanner/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretAddTask(t *testing.T) {
	db := testDb(t)
	const userID = 1

	msg, err := Interpret(db, userID, "add task Revise Calculus on 2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, "Added task 'Revise Calculus' on 2026-02-01.", msg)

	var tasks []models.CustomTask
	require.NoError(t, db.Where("user_id = ?", userID).Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Revise Calculus", tasks[0].Title)
	assert.Equal(t, "2026-02-01", tasks[0].Date)
	assert.Empty(t, tasks[0].Time)

	day, err := GetDay(db, userID, "2026-02-01")
	require.NoError(t, err)
	require.Len(t, day.Items, 1)
	assert.Equal(t, "Revise Calculus", day.Items[0].Title)
}

func TestInterpretAddTaskWithTime(t *testing.T) {
	db := testDb(t)

	_, err := Interpret(db, 1, "add task Revise Calculus on 2026-02-01 at 7:30")
	require.NoError(t, err)

	var task models.CustomTask
	require.NoError(t, db.Where("user_id = ?", 1).First(&task).Error)
	assert.Equal(t, "07:30", task.Time)
}

func TestInterpretMarkBusy(t *testing.T) {
	db := testDb(t)
	const userID = 1

	msg, err := Interpret(db, userID, "mark Study Group busy on 2026-02-01 from 18:00 to 19:30")
	require.NoError(t, err)
	assert.Equal(t, "Marked 'Study Group' busy on 2026-02-01 from 18:00 to 19:30.", msg)

	// End before start must fail and create nothing.
	_, err = Interpret(db, userID, "mark Study Group busy on 2026-02-01 from 19:00 to 18:30")
	assert.True(t, IsValidationError(err))

	assert.Equal(t, int64(1), countRows(t, db, &models.BusySlot{}, userID))
}

func TestInterpretMove(t *testing.T) {
	db := testDb(t)
	const userID = 1

	task, err := CreateCustomTask(db, userID, "2026-02-01", "", "Revise Calculus", "")
	require.NoError(t, err)

	msg, err := Interpret(db, userID, "move Revise Calculus to 2026-02-05")
	require.NoError(t, err)
	assert.Equal(t, "Moved 'Revise Calculus' to 2026-02-05.", msg)

	// Same row updated in place, no duplicate created.
	var moved models.CustomTask
	require.NoError(t, db.First(&moved, task.ID).Error)
	assert.Equal(t, "2026-02-05", moved.Date)
	assert.Equal(t, int64(1), countRows(t, db, &models.CustomTask{}, userID))

	_, err = Interpret(db, userID, "move Quantum Basketweaving to 2026-02-05")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInterpretMoveCourseModule(t *testing.T) {
	db := testDb(t)
	const userID = 1

	module := models.CourseModule{
		CourseID: 3, UserID: userID, DayIndex: 4, TaskDate: "2026-02-10", Title: "Algebra Basics",
	}
	require.NoError(t, db.Create(&module).Error)

	_, err := Interpret(db, userID, `move "the Algebra Basics" to 2026-03-01`)
	require.NoError(t, err)

	var moved models.CourseModule
	require.NoError(t, db.First(&moved, module.ID).Error)
	assert.Equal(t, "2026-03-01", moved.TaskDate)
	assert.Equal(t, 4, moved.DayIndex) // ordinal within the course is untouched
}

func TestInterpretMoveWithTimeCreatesReminder(t *testing.T) {
	db := testDb(t)
	const userID = 1

	module := models.CourseModule{CourseID: 3, UserID: userID, DayIndex: 1, TaskDate: "2026-02-10", Title: "Geometry"}
	require.NoError(t, db.Create(&module).Error)

	_, err := Interpret(db, userID, "move Geometry to 2026-03-01 9:15")
	require.NoError(t, err)

	var reminder models.Reminder
	require.NoError(t, db.Where("user_id = ?", userID).First(&reminder).Error)
	assert.Equal(t, "Work on Geometry", reminder.Text)
	assert.Equal(t, "2026-03-01", reminder.Date)
	assert.Equal(t, "09:15", reminder.Time)
	assert.Equal(t, ItemCourseModule, reminder.TargetType)
	assert.Equal(t, module.ID, reminder.TargetID)
}

func TestInterpretMovePrefersMostRecent(t *testing.T) {
	db := testDb(t)
	const userID = 1

	older := models.CustomTask{UserID: userID, Date: "2026-02-01", Title: "Revise notes"}
	older.CreatedAt = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&older).Error)

	newer := models.CustomTask{UserID: userID, Date: "2026-02-02", Title: "Revise formulas"}
	newer.CreatedAt = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&newer).Error)

	_, err := Interpret(db, userID, "move Revise to 2026-02-09")
	require.NoError(t, err)

	var moved models.CustomTask
	require.NoError(t, db.First(&moved, newer.ID).Error)
	assert.Equal(t, "2026-02-09", moved.Date)

	var untouched models.CustomTask
	require.NoError(t, db.First(&untouched, older.ID).Error)
	assert.Equal(t, "2026-02-01", untouched.Date)
}

func TestInterpretRemind(t *testing.T) {
	db := testDb(t)
	const userID = 1

	msg, err := Interpret(db, userID, "remind me to bring my notebook on 2026-02-01 at 8:05")
	require.NoError(t, err)
	assert.Equal(t, "Reminder set for 2026-02-01 at 08:05.", msg)

	var reminder models.Reminder
	require.NoError(t, db.Where("user_id = ?", userID).First(&reminder).Error)
	assert.Equal(t, "bring my notebook", reminder.Text)
}

func TestInterpretScheduleQuery(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateCustomTask(db, userID, "2026-02-05", "14:00", "History essay", "")
	require.NoError(t, err)

	msg, err := Interpret(db, userID, "when is History essay scheduled?")
	require.NoError(t, err)
	assert.Equal(t, "'History essay' is scheduled for Thursday, February 05, 2026 at 14:00.", msg)

	msg, err = Interpret(db, userID, "what day is the history scheduled for?")
	require.NoError(t, err)
	assert.Contains(t, msg, "February 05, 2026")

	msg, err = Interpret(db, userID, "is Piano recital scheduled?")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find anything scheduled matching 'Piano recital'.", msg)
}

func TestInterpretScheduleQuerySearchesAllStores(t *testing.T) {
	db := testDb(t)
	const userID = 1

	_, err := CreateBusySlot(db, userID, "2026-02-07", "16:00", "17:00", "Dentist appointment")
	require.NoError(t, err)

	msg, err := Interpret(db, userID, "when is Dentist scheduled?")
	require.NoError(t, err)
	assert.Contains(t, msg, "Dentist appointment")
	assert.Contains(t, msg, "Saturday, February 07, 2026")
	assert.Contains(t, msg, "16:00")
}

func TestInterpretUnrecognized(t *testing.T) {
	db := testDb(t)

	for _, cmd := range []string{
		"",
		"please reschedule everything",
		"add Revise Calculus on 2026-02-01", // missing the word "task"
		"move Revise Calculus to tomorrow",  // non-ISO date
		"mark busy on 2026-02-01",
	} {
		_, err := Interpret(db, 1, cmd)
		assert.True(t, errors.Is(err, ErrUnrecognizedCommand), "command %q", cmd)
	}

	// Nothing may have been written along the way.
	assert.Equal(t, int64(0), countRows(t, db, &models.CustomTask{}, 1))
	assert.Equal(t, int64(0), countRows(t, db, &models.BusySlot{}, 1))
}

func TestInterpretScopedToUser(t *testing.T) {
	db := testDb(t)

	_, err := CreateCustomTask(db, 2, "2026-02-01", "", "Revise Calculus", "")
	require.NoError(t, err)

	_, err = Interpret(db, 1, "move Revise Calculus to 2026-02-05")
	assert.True(t, errors.Is(err, ErrNotFound))
}
