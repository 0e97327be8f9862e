package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/models"
	"studyplanner/planner"
	"studyplanner/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCourse calls the external generator, validates the day
// distribution, and persists the plan, its modules, and an auto-created
// quiz in one transaction. Nothing persists when validation fails.
func GenerateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedGenerate").(*struct {
		Title        string `json:"title"`
		Request      string `json:"request"`
		StartDate    string `json:"start_date"`
		DurationDays int    `json:"duration_days"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settings := loadSettings(&user)
	topic := strings.TrimSpace(reqData.Title)
	if topic == "" {
		topic = strings.TrimSpace(reqData.Request)
	}
	if topic == "" {
		topic = "General course"
	}

	generated, err := utils.GenerateCoursePlan(topic, reqData.Request,
		settings.GradeLevel, settings.EducationBoard, reqData.DurationDays)
	if err != nil {
		log.Printf("Generate course error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Course generation failed!", nil)
	}

	// Untrusted generator output stops here unless the distribution holds.
	if err := planner.ValidateDayDistribution(reqData.DurationDays, generated.Modules); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	plan := models.CoursePlan{
		UserID:       userId,
		Title:        generated.CourseTitle,
		Overview:     generated.Overview,
		StartDate:    reqData.StartDate,
		DurationDays: reqData.DurationDays,
		GenerationID: uuid.NewString(),
	}

	var moduleRows []models.CourseModule
	var quiz models.SavedQuiz
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		rows, err := planner.BuildModules(&plan, generated.Modules)
		if err != nil {
			return err
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		moduleRows = rows

		quiz = models.SavedQuiz{
			UserID:         userId,
			Title:          fmt.Sprintf("%s Quiz", plan.Title),
			Content:        assembleQuizContent(rows),
			SourceCourseID: plan.ID,
		}
		return tx.Create(&quiz).Error
	})
	if err != nil {
		log.Printf("Course save error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course generated successfully!", fiber.Map{
		"course":       plan,
		"module_count": len(moduleRows),
		"auto_quiz_id": quiz.ID,
	})
}

// assembleQuizContent builds the auto-quiz from the modules' quiz sections.
func assembleQuizContent(modules []models.CourseModule) string {
	var b strings.Builder
	for _, m := range modules {
		if strings.TrimSpace(m.QuizContent) == "" {
			continue
		}
		fmt.Fprintf(&b, "Day %d — %s\n%s\n\n", m.DayIndex, m.Title, m.QuizContent)
	}
	return strings.TrimSpace(b.String())
}

func loadSettings(user *models.User) models.AccountSettings {
	settings := models.DefaultAccountSettings()
	if len(user.Settings) > 0 {
		_ = json.Unmarshal(user.Settings, &settings)
	}
	return settings
}

func GetAllCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.CoursePlan
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var course models.CoursePlan
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userId, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []models.CourseModule
	if err := database.Database.Db.
		Where("course_id = ? AND user_id = ? AND is_deleted = ?", course.ID, userId, false).
		Order("day_index asc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}

// DeleteCourse triggers the cascade: plan, modules, sourced quizzes.
func DeleteCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := planner.DeleteCourse(database.Database.Db, userId, uint(id)); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func ListModules(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var modules []models.CourseModule
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("task_date asc, day_index asc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// UpdateModule patches a module's title and/or task_date. DayIndex is never
// touched here; it remains the ordinal within the course.
func UpdateModule(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	reqData, ok := c.Locals("validatedModulePatch").(*struct {
		Title    string `json:"title"`
		TaskDate string `json:"task_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module models.CourseModule
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userId, false).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	patch := map[string]interface{}{}
	if strings.TrimSpace(reqData.Title) != "" {
		patch["title"] = strings.TrimSpace(reqData.Title)
	}
	if strings.TrimSpace(reqData.TaskDate) != "" {
		patch["task_date"] = strings.TrimSpace(reqData.TaskDate)
	}

	if err := database.Database.Db.Model(&module).Updates(patch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

func DeleteModule(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := planner.DeleteModule(database.Database.Db, userId, uint(id)); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
