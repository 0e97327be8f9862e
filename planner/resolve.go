package planner

import (
	"regexp"
	"strings"
	"studyplanner/models"
	"time"

	"gorm.io/gorm"
)

var (
	quotePattern  = regexp.MustCompile(`^["']+|["']+$`)
	thePattern    = regexp.MustCompile(`(?i)^\s*the\s+`)
	prefixPattern = regexp.MustCompile(`(?i)^\s*(course\s+module|module|course)\s+`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// NormalizeLookupText strips surrounding quotes, a leading "the", and a
// leading course/module prefix from user-typed identifiers before matching.
func NormalizeLookupText(text string) string {
	text = quotePattern.ReplaceAllString(strings.TrimSpace(text), "")
	text = thePattern.ReplaceAllString(text, "")
	text = prefixPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// MatchCandidate is a title-bearing row loaded for fuzzy resolution.
type MatchCandidate struct {
	ID        uint
	Kind      string
	Title     string
	Date      string
	Time      string
	CreatedAt time.Time
}

// BestMatch applies the matching policy: case-insensitive substring match on
// the normalized lookup text, most recently created candidate wins ties.
// Returns nil when nothing matches. Kept pure so the policy can be swapped
// without touching the grammar or store code.
func BestMatch(candidates []MatchCandidate, lookup string) *MatchCandidate {
	needle := strings.ToLower(NormalizeLookupText(lookup))
	if needle == "" {
		return nil
	}

	var best *MatchCandidate
	for i := range candidates {
		c := &candidates[i]
		if !strings.Contains(strings.ToLower(c.Title), needle) {
			continue
		}
		if best == nil || c.CreatedAt.After(best.CreatedAt) ||
			(c.CreatedAt.Equal(best.CreatedAt) && c.ID > best.ID) {
			best = c
		}
	}
	return best
}

func taskCandidates(db *gorm.DB, userID uint) ([]MatchCandidate, error) {
	var tasks []models.CustomTask
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&tasks).Error; err != nil {
		return nil, err
	}
	out := make([]MatchCandidate, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, MatchCandidate{
			ID: t.ID, Kind: ItemCustomTask, Title: t.Title,
			Date: t.Date, Time: t.Time, CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}

func moduleCandidates(db *gorm.DB, userID uint) ([]MatchCandidate, error) {
	var modules []models.CourseModule
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&modules).Error; err != nil {
		return nil, err
	}
	out := make([]MatchCandidate, 0, len(modules))
	for _, m := range modules {
		out = append(out, MatchCandidate{
			ID: m.ID, Kind: ItemCourseModule, Title: m.Title,
			Date: m.TaskDate, CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// resolveMoveTarget finds the entity a "move" command refers to: custom
// tasks are searched first, then course modules.
func resolveMoveTarget(db *gorm.DB, userID uint, lookup string) (*MatchCandidate, error) {
	tasks, err := taskCandidates(db, userID)
	if err != nil {
		return nil, err
	}
	if match := BestMatch(tasks, lookup); match != nil {
		return match, nil
	}

	modules, err := moduleCandidates(db, userID)
	if err != nil {
		return nil, err
	}
	if match := BestMatch(modules, lookup); match != nil {
		return match, nil
	}
	return nil, ErrNotFound
}

// resolveScheduled searches all four stores for a schedule query.
func resolveScheduled(db *gorm.DB, userID uint, lookup string) (*MatchCandidate, error) {
	candidates, err := taskCandidates(db, userID)
	if err != nil {
		return nil, err
	}
	modules, err := moduleCandidates(db, userID)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, modules...)

	var slots []models.BusySlot
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&slots).Error; err != nil {
		return nil, err
	}
	for _, s := range slots {
		candidates = append(candidates, MatchCandidate{
			ID: s.ID, Kind: ItemBusySlot, Title: s.Title,
			Date: s.Date, Time: s.StartTime, CreatedAt: s.CreatedAt,
		})
	}

	var reminders []models.Reminder
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&reminders).Error; err != nil {
		return nil, err
	}
	for _, r := range reminders {
		candidates = append(candidates, MatchCandidate{
			ID: r.ID, Kind: ItemReminder, Title: r.Text,
			Date: r.Date, Time: r.Time, CreatedAt: r.CreatedAt,
		})
	}

	match := BestMatch(candidates, lookup)
	if match == nil {
		return nil, ErrNotFound
	}
	return match, nil
}
