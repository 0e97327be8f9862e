package plannerValidator

import (
	"strings"
	"studyplanner/middleware"
	"studyplanner/planner"

	"github.com/gofiber/fiber/v2"
)

func AddBusySlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Date      string `json:"date"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
			Title     string `json:"title"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !planner.IsValidDate(reqData.Date) {
			errors["date"] = "Date must be YYYY-MM-DD!"
		}
		if _, err := planner.NormalizeTime(reqData.StartTime); err != nil {
			errors["start_time"] = "Start time must be HH:MM (24-hour)!"
		}
		if _, err := planner.NormalizeTime(reqData.EndTime); err != nil {
			errors["end_time"] = "End time must be HH:MM (24-hour)!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBusySlot", reqData)
		return c.Next()
	}
}

func AddCustomTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Date  string `json:"date"`
			Time  string `json:"time"`
			Title string `json:"title"`
			Notes string `json:"notes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !planner.IsValidDate(reqData.Date) {
			errors["date"] = "Date must be YYYY-MM-DD!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		// Time is optional; empty means all day
		if reqData.Time != "" {
			if _, err := planner.NormalizeTime(reqData.Time); err != nil {
				errors["time"] = "Time must be HH:MM (24-hour)!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTask", reqData)
		return c.Next()
	}
}

func AddReminder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Date string `json:"date"`
			Time string `json:"time"`
			Text string `json:"text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !planner.IsValidDate(reqData.Date) {
			errors["date"] = "Date must be YYYY-MM-DD!"
		}
		if _, err := planner.NormalizeTime(reqData.Time); err != nil {
			errors["time"] = "Time must be HH:MM (24-hour)!"
		}
		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReminder", reqData)
		return c.Next()
	}
}

func Command() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Command string `json:"command"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Command) == "" {
			errors["command"] = "Command is required!"
		} else if len(reqData.Command) > 500 {
			errors["command"] = "Command must be at most 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCommand", reqData)
		return c.Next()
	}
}
