package userRoutes

import (
	controllers "studyplanner/controllers/user"
	"studyplanner/middleware"
	validators "studyplanner/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up account settings routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/settings", middleware.JWTMiddleware, controllers.GetSettings)
	userGroup.Put("/settings", middleware.JWTMiddleware, validators.UpdateSettings(), controllers.UpdateSettings)
}
