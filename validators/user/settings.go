package userValidator

import (
	"strings"
	"studyplanner/middleware"
	"studyplanner/models"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.AccountSettings)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.GradeLevel) > 30 {
			errors["grade_level"] = "Grade level must be at most 30 characters!"
		}
		if len(reqData.EducationBoard) > 50 {
			errors["education_board"] = "Education board must be at most 50 characters!"
		}

		reqData.GradeLevel = strings.TrimSpace(reqData.GradeLevel)
		reqData.EducationBoard = strings.TrimSpace(reqData.EducationBoard)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}
