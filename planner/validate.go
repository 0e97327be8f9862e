package planner

import (
	"fmt"
	"sort"
	"studyplanner/models"
)

// Duration bounds for a generated course plan.
const (
	MinDurationDays = 7
	MaxDurationDays = 90
)

// GeneratedModule is one day-tagged module from the external generator.
// Decoded strictly; anything that does not fit this shape is rejected at
// this boundary.
type GeneratedModule struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Lesson   string `json:"lesson"`
	Practice string `json:"practice"`
	Quiz     string `json:"quiz"`
}

// GeneratedPlan is the full generator payload.
type GeneratedPlan struct {
	CourseTitle string            `json:"course_title"`
	Overview    string            `json:"overview"`
	Modules     []GeneratedModule `json:"modules"`
}

// ValidateDuration enforces the 7-90 day bounds on a new course plan.
func ValidateDuration(durationDays int) error {
	if durationDays < MinDurationDays || durationDays > MaxDurationDays {
		return validationErr("duration_days",
			fmt.Sprintf("must be between %d and %d", MinDurationDays, MaxDurationDays))
	}
	return nil
}

// ValidateDayDistribution checks generator output before anything persists:
// every day value within [1, durationDays], every day covered by at least
// one module, and at most 2*durationDays modules in total.
func ValidateDayDistribution(durationDays int, modules []GeneratedModule) error {
	if len(modules) == 0 {
		return validationErr("modules", "generator returned no modules")
	}
	if len(modules) > 2*durationDays {
		return validationErr("modules",
			fmt.Sprintf("too many modules: %d for %d days", len(modules), durationDays))
	}

	covered := make(map[int]bool, durationDays)
	for _, m := range modules {
		if m.Day < 1 || m.Day > durationDays {
			return validationErr("modules",
				fmt.Sprintf("module day %d outside course duration of %d days", m.Day, durationDays))
		}
		covered[m.Day] = true
	}

	var missing []int
	for day := 1; day <= durationDays; day++ {
		if !covered[day] {
			missing = append(missing, day)
		}
	}
	if len(missing) > 0 {
		return &IncompleteCoverageError{MissingDays: missing}
	}
	return nil
}

// BuildModules turns accepted generator modules into rows for the given
// plan, deriving task_date = start_date + (day - 1) and ordering by day.
func BuildModules(plan *models.CoursePlan, generated []GeneratedModule) ([]models.CourseModule, error) {
	ordered := make([]GeneratedModule, len(generated))
	copy(ordered, generated)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })

	rows := make([]models.CourseModule, 0, len(ordered))
	for _, m := range ordered {
		taskDate, err := AddDays(plan.StartDate, m.Day-1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.CourseModule{
			CourseID:        plan.ID,
			UserID:          plan.UserID,
			DayIndex:        m.Day,
			TaskDate:        taskDate,
			Title:           m.Title,
			LessonContent:   m.Lesson,
			PracticeContent: m.Practice,
			QuizContent:     m.Quiz,
		})
	}
	return rows, nil
}
