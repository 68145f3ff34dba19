package middleware

import (
	"errors"
	"log"

	"enrollapp/services"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errs)
}

// ErrorResponse maps a service failure to its transport status. Every
// ServiceError kind has exactly one status; anything else is a server fault.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		var statusCode int
		switch svcErr.Kind {
		case services.KindNotFound:
			statusCode = fiber.StatusNotFound
		case services.KindConflict:
			statusCode = fiber.StatusConflict
		case services.KindUnauthorized:
			statusCode = fiber.StatusUnauthorized
		case services.KindForbidden:
			statusCode = fiber.StatusForbidden
		case services.KindCapacityExceeded:
			statusCode = fiber.StatusBadRequest
		default:
			statusCode = fiber.StatusInternalServerError
		}
		return JsonResponse(c, statusCode, false, svcErr.Message, nil)
	}

	log.Printf("Unexpected error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
