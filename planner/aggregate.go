package planner

import (
	"sort"
	"studyplanner/models"
	"time"

	"gorm.io/gorm"
)

// Item type tags and their tie-break order within a day.
const (
	ItemCourseModule = "course_module"
	ItemBusySlot     = "busy_slot"
	ItemCustomTask   = "custom_task"
	ItemReminder     = "reminder"
)

var kindRank = map[string]int{
	ItemCourseModule: 0,
	ItemBusySlot:     1,
	ItemCustomTask:   2,
	ItemReminder:     3,
}

// CalendarItem is the uniform shape returned for any of the four entity
// kinds. Kind-specific fields are omitted when empty.
type CalendarItem struct {
	ItemType        string `json:"item_type"`
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	CourseID        uint   `json:"course_id,omitempty"`
	DayIndex        int    `json:"day_index,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	Time            string `json:"time,omitempty"`
	Notes           string `json:"notes,omitempty"`
	LessonContent   string `json:"lesson_content,omitempty"`
	PracticeContent string `json:"practice_content,omitempty"`
	QuizContent     string `json:"quiz_content,omitempty"`

	createdAt time.Time
}

// MonthView maps dates with at least one item to their ordered item lists.
// Dates without items are absent, not empty.
type MonthView struct {
	Month string                    `json:"month"`
	Days  map[string][]CalendarItem `json:"days"`
}

// DayView is the itemized view of a single date.
type DayView struct {
	Day   string         `json:"day"`
	Items []CalendarItem `json:"items"`
}

// effectiveTime is the chronological sort key within a day. All-day items
// (course modules, custom tasks without a time) return "" which sorts first.
func (it CalendarItem) effectiveTime() string {
	switch it.ItemType {
	case ItemBusySlot:
		return it.StartTime
	case ItemCustomTask, ItemReminder:
		return it.Time
	}
	return ""
}

func sortItems(items []CalendarItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if at, bt := a.effectiveTime(), b.effectiveTime(); at != bt {
			return at < bt
		}
		if kindRank[a.ItemType] != kindRank[b.ItemType] {
			return kindRank[a.ItemType] < kindRank[b.ItemType]
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.ID < b.ID
	})
}

// collectRange reads all four stores for one user, filtered to
// start <= date < end (ISO strings compare correctly). Full module content
// is attached only when withContent is set (day view).
func collectRange(db *gorm.DB, userID uint, start, end string, withContent bool) ([]CalendarItem, error) {
	var items []CalendarItem

	var modules []models.CourseModule
	if err := db.Where("user_id = ? AND is_deleted = ? AND task_date >= ? AND task_date < ?",
		userID, false, start, end).Find(&modules).Error; err != nil {
		return nil, err
	}
	for _, m := range modules {
		it := CalendarItem{
			ItemType:  ItemCourseModule,
			ID:        m.ID,
			Title:     m.Title,
			Date:      m.TaskDate,
			CourseID:  m.CourseID,
			DayIndex:  m.DayIndex,
			createdAt: m.CreatedAt,
		}
		if withContent {
			it.LessonContent = m.LessonContent
			it.PracticeContent = m.PracticeContent
			it.QuizContent = m.QuizContent
		}
		items = append(items, it)
	}

	var slots []models.BusySlot
	if err := db.Where("user_id = ? AND is_deleted = ? AND date >= ? AND date < ?",
		userID, false, start, end).Find(&slots).Error; err != nil {
		return nil, err
	}
	for _, s := range slots {
		items = append(items, CalendarItem{
			ItemType:  ItemBusySlot,
			ID:        s.ID,
			Title:     s.Title,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			createdAt: s.CreatedAt,
		})
	}

	var tasks []models.CustomTask
	if err := db.Where("user_id = ? AND is_deleted = ? AND date >= ? AND date < ?",
		userID, false, start, end).Find(&tasks).Error; err != nil {
		return nil, err
	}
	for _, t := range tasks {
		items = append(items, CalendarItem{
			ItemType:  ItemCustomTask,
			ID:        t.ID,
			Title:     t.Title,
			Date:      t.Date,
			Time:      t.Time,
			Notes:     t.Notes,
			createdAt: t.CreatedAt,
		})
	}

	var reminders []models.Reminder
	if err := db.Where("user_id = ? AND is_deleted = ? AND date >= ? AND date < ?",
		userID, false, start, end).Find(&reminders).Error; err != nil {
		return nil, err
	}
	for _, r := range reminders {
		items = append(items, CalendarItem{
			ItemType:  ItemReminder,
			ID:        r.ID,
			Title:     r.Text,
			Date:      r.Date,
			Time:      r.Time,
			createdAt: r.CreatedAt,
		})
	}

	return items, nil
}

// GetMonth aggregates all four stores into a month view keyed YYYY-MM.
// Every call re-reads the stores; there is no cache to invalidate.
func GetMonth(db *gorm.DB, userID uint, monthKey string) (*MonthView, error) {
	start, end, err := MonthRange(monthKey)
	if err != nil {
		return nil, err
	}

	items, err := collectRange(db, userID, start, end, false)
	if err != nil {
		return nil, err
	}

	view := &MonthView{Month: monthKey, Days: map[string][]CalendarItem{}}
	for _, it := range items {
		view.Days[it.Date] = append(view.Days[it.Date], it)
	}
	for d := range view.Days {
		sortItems(view.Days[d])
	}
	return view, nil
}

// GetDay aggregates all four stores into an ordered single-day view.
func GetDay(db *gorm.DB, userID uint, date string) (*DayView, error) {
	day, err := ParseISODate(date)
	if err != nil {
		return nil, err
	}
	start := day.Format(isoDateLayout)
	end := day.AddDate(0, 0, 1).Format(isoDateLayout)

	items, err := collectRange(db, userID, start, end, true)
	if err != nil {
		return nil, err
	}
	sortItems(items)

	return &DayView{Day: start, Items: items}, nil
}
