package enrollmentRoutes

import (
	enrollmentControllers "enrollapp/controllers/enrollment"
	"enrollapp/middleware"
	"enrollapp/models"
	enrollmentValidators "enrollapp/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App, ctl *enrollmentControllers.Controller, guard *middleware.AuthGuard) {
	enrollmentGroup := app.Group("/enrollments")

	// Students enroll themselves and deregister themselves
	enrollmentGroup.Post("/", guard.Authenticate(), guard.Require(models.RoleStudent), enrollmentValidators.Enroll(), ctl.Enroll)
	enrollmentGroup.Delete("/:course_id", guard.Authenticate(), guard.Require(models.RoleStudent), enrollmentValidators.CourseIDParam(), ctl.Deregister)

	// Admin views and removals
	enrollmentGroup.Get("/", guard.Authenticate(), guard.Require(models.RoleAdmin), ctl.ListAll)
	enrollmentGroup.Get("/:course_id/enrollments", guard.Authenticate(), guard.Require(models.RoleAdmin), enrollmentValidators.CourseIDParam(), ctl.ListForCourse)
	enrollmentGroup.Delete("/:student_id/:course_id", guard.Authenticate(), guard.Require(models.RoleAdmin), enrollmentValidators.StudentAndCourseParams(), ctl.RemoveStudent)
}
