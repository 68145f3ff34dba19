package enrollmentValidator

import (
	"enrollapp/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type EnrollRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "A valid course ID is required!",
			})
		}

		courseID, err := uuid.Parse(reqData.CourseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseIDParam validates the :course_id route parameter.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(c.Params("course_id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// StudentAndCourseParams validates the :student_id and :course_id route
// parameters for the admin removal route.
func StudentAndCourseParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := uuid.Parse(c.Params("student_id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}

		courseID, err := uuid.Parse(c.Params("course_id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("studentID", studentID)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}
