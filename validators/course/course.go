package courseValidator

import (
	"strings"
	"studyplanner/middleware"
	"studyplanner/planner"

	"github.com/gofiber/fiber/v2"
)

func GenerateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Request      string `json:"request"`
			StartDate    string `json:"start_date"`
			DurationDays int    `json:"duration_days"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !planner.IsValidDate(reqData.StartDate) {
			errors["start_date"] = "Start date must be YYYY-MM-DD!"
		}
		if err := planner.ValidateDuration(reqData.DurationDays); err != nil {
			errors["duration_days"] = "Duration must be between 7 and 90 days!"
		}
		if strings.TrimSpace(reqData.Title) == "" && strings.TrimSpace(reqData.Request) == "" {
			errors["title"] = "Provide a title or a request describing the course!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			TaskDate string `json:"task_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" && strings.TrimSpace(reqData.TaskDate) == "" {
			errors["title"] = "Provide a title or a task_date to update!"
		}
		if strings.TrimSpace(reqData.TaskDate) != "" && !planner.IsValidDate(strings.TrimSpace(reqData.TaskDate)) {
			errors["task_date"] = "Task date must be YYYY-MM-DD!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModulePatch", reqData)
		return c.Next()
	}
}
