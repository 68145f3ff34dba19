package courseValidator

import (
	"enrollapp/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Title    string `json:"title" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0,lte=300"`
}

// UpdateCourseRequest uses pointers so absent fields stay untouched.
type UpdateCourseRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Code     *string `json:"code" validate:"omitempty,min=1"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0,lte=300"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errs := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errs["title"] = "Title is required!"
				case "Code":
					errs["code"] = "Code is required!"
				case "Capacity":
					errs["capacity"] = "Capacity must be between 1 and 300!"
				}
			}
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errs := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errs["title"] = "Title must not be empty!"
				case "Code":
					errs["code"] = "Code must not be empty!"
				case "Capacity":
					errs["capacity"] = "Capacity must be between 1 and 300!"
				}
			}
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
