package courseRoutes

import (
	courseControllers "enrollapp/controllers/course"
	"enrollapp/middleware"
	"enrollapp/models"
	courseValidators "enrollapp/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctl *courseControllers.Controller, guard *middleware.AuthGuard) {
	courseGroup := app.Group("/courses")

	// Browsing is open to any authenticated active user
	courseGroup.Get("/", guard.Authenticate(), guard.Require(""), ctl.List)
	courseGroup.Get("/:id", guard.Authenticate(), guard.Require(""), courseValidators.CourseID(), ctl.Get)

	// Management is admin only
	courseGroup.Post("/", guard.Authenticate(), guard.Require(models.RoleAdmin), courseValidators.CreateCourse(), ctl.Create)
	courseGroup.Patch("/:id/activate", guard.Authenticate(), guard.Require(models.RoleAdmin), courseValidators.CourseID(), ctl.Activate)
	courseGroup.Patch("/:id/deactivate", guard.Authenticate(), guard.Require(models.RoleAdmin), courseValidators.CourseID(), ctl.Deactivate)
	courseGroup.Patch("/:id", guard.Authenticate(), guard.Require(models.RoleAdmin), courseValidators.CourseID(), courseValidators.UpdateCourse(), ctl.Update)
	courseGroup.Delete("/:id", guard.Authenticate(), guard.Require(models.RoleAdmin), courseValidators.CourseID(), ctl.Delete)
}
