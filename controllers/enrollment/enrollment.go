package enrollmentController

import (
	"enrollapp/middleware"
	"enrollapp/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Controller struct {
	service *services.EnrollmentService
}

func New(service *services.EnrollmentService) *Controller {
	return &Controller{service: service}
}

func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uuid.UUID)

	enrollment, err := ctl.service.Enroll(student.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", enrollment)
}

func (ctl *Controller) ListAll(c *fiber.Ctx) error {
	enrollments, err := ctl.service.ListAll()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

func (ctl *Controller) ListForCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	roster, err := ctl.service.ListForCourse(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course enrollments fetched successfully.", roster)
}

func (ctl *Controller) Deregister(c *fiber.Ctx) error {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uuid.UUID)

	if err := ctl.service.Deregister(student.ID, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You deregistered successfully.", fiber.Map{
		"course_id": courseID,
	})
}

func (ctl *Controller) RemoveStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uuid.UUID)
	courseID := c.Locals("courseID").(uuid.UUID)

	if err := ctl.service.RemoveStudent(studentID, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student removed successfully.", fiber.Map{
		"user_id":   studentID,
		"course_id": courseID,
	})
}
