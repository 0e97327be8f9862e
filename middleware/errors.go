package middleware

import (
	"errors"
	"studyplanner/planner"

	"github.com/gofiber/fiber/v2"
)

// PlannerErrorResponse maps planner core errors onto the standard JSON
// response shape: validation and unrecognized-command errors are caller
// mistakes, not-found hides ownership, cascade failures are server faults.
func PlannerErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case planner.IsValidationError(err), planner.IsIncompleteCoverage(err):
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, planner.ErrUnrecognizedCommand):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Unrecognized command!", nil)
	case errors.Is(err, planner.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, planner.ErrCascadeFailed):
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Delete could not complete. Please retry.", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
