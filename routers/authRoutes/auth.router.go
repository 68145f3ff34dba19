package authRoutes

import (
	authControllers "enrollapp/controllers/auth"
	"enrollapp/middleware"
	"enrollapp/models"
	authValidators "enrollapp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authControllers.Controller, guard *middleware.AuthGuard) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), ctl.Register)
	authGroup.Post("/token", authValidators.Login(), ctl.Login)
	authGroup.Get("/profile", guard.Authenticate(), ctl.Profile)

	// Account activation toggles are admin only
	authGroup.Patch("/:id/activate", guard.Authenticate(), guard.Require(models.RoleAdmin), authValidators.UserID(), ctl.Activate)
	authGroup.Patch("/:id/deactivate", guard.Authenticate(), guard.Require(models.RoleAdmin), authValidators.UserID(), ctl.Deactivate)
}
