package controllers

import (
	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/planner"

	"github.com/gofiber/fiber/v2"
)

func AddBusySlot(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedBusySlot").(*struct {
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Title     string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slot, err := planner.CreateBusySlot(database.Database.Db, userId,
		reqData.Date, reqData.StartTime, reqData.EndTime, reqData.Title)
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Busy slot added successfully!", slot)
}

func DeleteBusySlot(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := planner.DeleteBusySlot(database.Database.Db, userId, uint(id)); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Busy slot deleted successfully!", nil)
}

func AddCustomTask(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTask").(*struct {
		Date  string `json:"date"`
		Time  string `json:"time"`
		Title string `json:"title"`
		Notes string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	task, err := planner.CreateCustomTask(database.Database.Db, userId,
		reqData.Date, reqData.Time, reqData.Title, reqData.Notes)
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task added successfully!", task)
}

func DeleteCustomTask(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := planner.DeleteTask(database.Database.Db, userId, uint(id)); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deleted successfully!", nil)
}

func AddReminder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReminder").(*struct {
		Date string `json:"date"`
		Time string `json:"time"`
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reminder, err := planner.CreateReminder(database.Database.Db, userId,
		reqData.Date, reqData.Time, reqData.Text, "", 0)
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminder added successfully!", reminder)
}

func DeleteReminder(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	if err := planner.DeleteReminder(database.Database.Db, userId, uint(id)); err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminder deleted successfully!", nil)
}

// RunCommand feeds a natural-language instruction through the interpreter.
func RunCommand(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCommand").(*struct {
		Command string `json:"command"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message, err := planner.Interpret(database.Database.Db, userId, reqData.Command)
	if err != nil {
		return middleware.PlannerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"message": message,
	})
}
