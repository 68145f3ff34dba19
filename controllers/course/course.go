package courseController

import (
	"enrollapp/middleware"
	"enrollapp/services"
	courseValidators "enrollapp/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Controller struct {
	service *services.CourseService
}

func New(service *services.CourseService) *Controller {
	return &Controller{service: service}
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	courses, err := ctl.service.List()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	course, err := ctl.service.GetByID(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidators.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.service.Create(reqData.Title, reqData.Code, reqData.Capacity)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidators.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.service.Update(courseID, services.CourseUpdateInput{
		Title:    reqData.Title,
		Code:     reqData.Code,
		Capacity: reqData.Capacity,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

func (ctl *Controller) Activate(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	message, err := ctl.service.Activate(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"course_id": courseID,
	})
}

func (ctl *Controller) Deactivate(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	message, err := ctl.service.Deactivate(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"course_id": courseID,
	})
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	if err := ctl.service.Delete(courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}
