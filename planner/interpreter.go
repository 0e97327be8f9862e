package planner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"studyplanner/models"

	"gorm.io/gorm"
)

// The closed command grammar. Anything that matches none of these patterns
// is rejected; the interpreter never guesses.
var (
	schedulePattern = regexp.MustCompile(`(?i)^(?:when\s+is|what\s+day\s+is|is)\s+(.+?)\s+scheduled(?:\s+for)?\??$`)
	movePattern     = regexp.MustCompile(`(?i)^move\s+(.+?)\s+to\s+(\d{4}-\d{2}-\d{2})(?:\s+(\d{1,2}:\d{2}))?$`)
	addTaskPattern  = regexp.MustCompile(`(?i)^add\s+task\s+(.+?)\s+on\s+(\d{4}-\d{2}-\d{2})(?:\s+at\s+(\d{1,2}:\d{2}))?$`)
	markBusyPattern = regexp.MustCompile(`(?i)^mark\s+(.+?)\s+busy\s+on\s+(\d{4}-\d{2}-\d{2})\s+from\s+(\d{1,2}:\d{2})\s+to\s+(\d{1,2}:\d{2})$`)
	remindPattern   = regexp.MustCompile(`(?i)^remind\s+me\s+to\s+(.+?)\s+on\s+(\d{4}-\d{2}-\d{2})\s+at\s+(\d{1,2}:\d{2})$`)
)

// Interpret classifies a free-text planner command into one of the five
// intents, executes it against the stores, and returns a human-readable
// confirmation. Ambiguity and unmatched input always become errors, never
// best-effort guesses.
func Interpret(db *gorm.DB, userID uint, command string) (string, error) {
	raw := strings.TrimSpace(command)
	if raw == "" {
		return "", ErrUnrecognizedCommand
	}

	if m := schedulePattern.FindStringSubmatch(raw); m != nil {
		return interpretScheduleQuery(db, userID, m[1])
	}
	if m := movePattern.FindStringSubmatch(raw); m != nil {
		return interpretMove(db, userID, m[1], m[2], m[3])
	}
	if m := addTaskPattern.FindStringSubmatch(raw); m != nil {
		return interpretAddTask(db, userID, m[1], m[2], m[3])
	}
	if m := markBusyPattern.FindStringSubmatch(raw); m != nil {
		return interpretMarkBusy(db, userID, m[1], m[2], m[3], m[4])
	}
	if m := remindPattern.FindStringSubmatch(raw); m != nil {
		return interpretRemind(db, userID, m[1], m[2], m[3])
	}

	return "", ErrUnrecognizedCommand
}

func interpretScheduleQuery(db *gorm.DB, userID uint, ident string) (string, error) {
	match, err := resolveScheduled(db, userID, ident)
	if errors.Is(err, ErrNotFound) {
		lookup := NormalizeLookupText(ident)
		return fmt.Sprintf("I couldn't find anything scheduled matching '%s'.", lookup), nil
	}
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("'%s' is scheduled for %s", match.Title, PrettyDate(match.Date))
	if match.Time != "" {
		msg += fmt.Sprintf(" at %s", match.Time)
	}
	return msg + ".", nil
}

func interpretMove(db *gorm.DB, userID uint, ident, date, timeText string) (string, error) {
	if !IsValidDate(date) {
		return "", validationErr("date", "invalid target date")
	}

	match, err := resolveMoveTarget(db, userID, ident)
	if err != nil {
		return "", err
	}

	switch match.Kind {
	case ItemCustomTask:
		err = db.Model(&models.CustomTask{}).
			Where("id = ? AND user_id = ?", match.ID, userID).
			Update("date", date).Error
	case ItemCourseModule:
		// DayIndex stays put: it is the ordinal within the course, not
		// a function of the new date.
		err = db.Model(&models.CourseModule{}).
			Where("id = ? AND user_id = ?", match.ID, userID).
			Update("task_date", date).Error
	}
	if err != nil {
		return "", err
	}

	if timeText != "" {
		if _, terr := NormalizeTime(timeText); terr == nil {
			if _, rerr := CreateReminder(db, userID, date, timeText,
				fmt.Sprintf("Work on %s", match.Title), match.Kind, match.ID); rerr != nil {
				return "", rerr
			}
		}
	}

	return fmt.Sprintf("Moved '%s' to %s.", match.Title, date), nil
}

func interpretAddTask(db *gorm.DB, userID uint, title, date, timeText string) (string, error) {
	task, err := CreateCustomTask(db, userID, date, timeText, title, "")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added task '%s' on %s.", task.Title, task.Date), nil
}

func interpretMarkBusy(db *gorm.DB, userID uint, title, date, startTime, endTime string) (string, error) {
	slot, err := CreateBusySlot(db, userID, date, startTime, endTime, title)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Marked '%s' busy on %s from %s to %s.",
		slot.Title, slot.Date, slot.StartTime, slot.EndTime), nil
}

func interpretRemind(db *gorm.DB, userID uint, text, date, timeText string) (string, error) {
	reminder, err := CreateReminder(db, userID, date, timeText, text, "", 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Reminder set for %s at %s.", reminder.Date, reminder.Time), nil
}
