package controllers

import (
	"encoding/json"
	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/models"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	settings := models.DefaultAccountSettings()
	if len(user.Settings) > 0 {
		_ = json.Unmarshal(user.Settings, &settings)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", settings)
}

func UpdateSettings(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSettings").(*models.AccountSettings)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	raw, err := json.Marshal(reqData)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
	}

	if err := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", userId, false).
		Update("settings", raw).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully!", reqData)
}
