package planner

import (
	"fmt"
	"studyplanner/models"

	"gorm.io/gorm"
)

// DeleteCourse removes a course plan, its modules, and every saved quiz
// sourced from it, as one transaction. A concurrent reader either sees the
// whole course or none of it.
func DeleteCourse(db *gorm.DB, userID, courseID uint) error {
	var plan models.CoursePlan
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&plan).Error; err != nil {
		return ErrNotFound
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SavedQuiz{}).
			Where("user_id = ? AND source_course_id = ? AND is_deleted = ?", userID, courseID, false).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.CourseModule{}).
			Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.CoursePlan{}).
			Where("id = ? AND user_id = ?", courseID, userID).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCascadeFailed, err)
	}
	return nil
}

// deleteScoped flags a single row deleted, scoped by user. A row owned by
// another user reports not-found, never a permission error.
func deleteScoped(db *gorm.DB, model interface{}, userID, id uint) error {
	result := db.Model(model).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteModule removes one course module without touching its course.
func DeleteModule(db *gorm.DB, userID, moduleID uint) error {
	return deleteScoped(db, &models.CourseModule{}, userID, moduleID)
}

// DeleteBusySlot removes one busy slot.
func DeleteBusySlot(db *gorm.DB, userID, slotID uint) error {
	return deleteScoped(db, &models.BusySlot{}, userID, slotID)
}

// DeleteTask removes one custom task.
func DeleteTask(db *gorm.DB, userID, taskID uint) error {
	return deleteScoped(db, &models.CustomTask{}, userID, taskID)
}

// DeleteReminder removes one reminder.
func DeleteReminder(db *gorm.DB, userID, reminderID uint) error {
	return deleteScoped(db, &models.Reminder{}, userID, reminderID)
}

// DeleteQuiz removes one saved quiz.
func DeleteQuiz(db *gorm.DB, userID, quizID uint) error {
	return deleteScoped(db, &models.SavedQuiz{}, userID, quizID)
}
