package plannerRoutes

import (
	calendarControllers "studyplanner/controllers/calendar"
	controllers "studyplanner/controllers/planner"
	"studyplanner/middleware"
	validators "studyplanner/validators/planner"

	"github.com/gofiber/fiber/v2"
)

// SetupPlannerRoutes sets up calendar views, planner CRUD, and the command endpoint
func SetupPlannerRoutes(app *fiber.App) {
	calendarGroup := app.Group("/calendar")
	calendarGroup.Get("/", middleware.JWTMiddleware, calendarControllers.GetCalendar)
	calendarGroup.Get("/day/:day", middleware.JWTMiddleware, calendarControllers.GetCalendarDay)

	plannerGroup := app.Group("/planner")

	plannerGroup.Post("/busy", middleware.JWTMiddleware, validators.AddBusySlot(), controllers.AddBusySlot)
	plannerGroup.Delete("/busy/:id", middleware.JWTMiddleware, controllers.DeleteBusySlot)

	plannerGroup.Post("/task", middleware.JWTMiddleware, validators.AddCustomTask(), controllers.AddCustomTask)
	plannerGroup.Delete("/task/:id", middleware.JWTMiddleware, controllers.DeleteCustomTask)

	plannerGroup.Post("/reminder", middleware.JWTMiddleware, validators.AddReminder(), controllers.AddReminder)
	plannerGroup.Delete("/reminder/:id", middleware.JWTMiddleware, controllers.DeleteReminder)

	plannerGroup.Post("/command", middleware.JWTMiddleware, validators.Command(), controllers.RunCommand)
}
