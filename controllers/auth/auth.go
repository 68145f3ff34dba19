package authController

import (
	"fmt"

	"enrollapp/middleware"
	"enrollapp/services"
	authValidators "enrollapp/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Controller struct {
	service *services.AuthService
	guard   *middleware.AuthGuard
}

func New(service *services.AuthService, guard *middleware.AuthGuard) *Controller {
	return &Controller{service: service, guard: guard}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidators.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.service.Register(services.RegisterInput{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

// Login exchanges form-encoded credentials for a bearer token.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.service.Login(reqData.Username, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := ctl.guard.GenerateJWT(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ctl *Controller) Profile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Profile of %s (%s)", user.Name, user.Role), user)
}

func (ctl *Controller) Activate(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uuid.UUID)

	message, err := ctl.service.ActivateUser(targetID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"user_id": targetID,
	})
}

func (ctl *Controller) Deactivate(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID := c.Locals("targetUserID").(uuid.UUID)

	message, err := ctl.service.DeactivateUser(admin.ID, targetID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"user_id":               targetID,
		"performed_by_admin_id": admin.ID,
	})
}
