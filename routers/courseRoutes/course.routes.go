package courseRoutes

import (
	controllers "studyplanner/controllers/course"
	quizControllers "studyplanner/controllers/quiz"
	"studyplanner/middleware"
	validators "studyplanner/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course generation, listing, cascade delete, and quizzes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Post("/generate", middleware.JWTMiddleware, validators.GenerateCourse(), controllers.GenerateCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/modules", middleware.JWTMiddleware, controllers.ListModules)
	courseGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetCourseDetails)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse)

	courseGroup.Patch("/module/:id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.UpdateModule)
	courseGroup.Delete("/module/:id", middleware.JWTMiddleware, controllers.DeleteModule)

	quizGroup := app.Group("/quiz")
	quizGroup.Get("/list", middleware.JWTMiddleware, quizControllers.GetAllQuizzes)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, quizControllers.DeleteQuiz)
}
