package controllers

import (
	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/planner"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetCalendar returns the month view. Defaults to the current month when no
// valid ?month=YYYY-MM is supplied, matching the UI's initial load.
func GetCalendar(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	monthKey := c.Query("month")
	if monthKey == "" {
		monthKey = time.Now().Format("2006-01")
	}

	view, err := planner.GetMonth(database.Database.Db, userId, monthKey)
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Calendar fetched successfully!", view)
}

// GetCalendarDay returns the ordered item list for one date.
func GetCalendarDay(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	view, err := planner.GetDay(database.Database.Db, userId, c.Params("day"))
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Day fetched successfully!", view)
}
