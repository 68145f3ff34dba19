package main

import (
	"log"

	"enrollapp/config"
	authControllers "enrollapp/controllers/auth"
	courseControllers "enrollapp/controllers/course"
	enrollmentControllers "enrollapp/controllers/enrollment"
	"enrollapp/database"
	"enrollapp/middleware"
	"enrollapp/routers/authRoutes"
	"enrollapp/routers/courseRoutes"
	"enrollapp/routers/enrollmentRoutes"
	"enrollapp/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	guard := middleware.NewAuthGuard(db, cfg)
	authService := services.NewAuthService(db, cfg)
	courseService := services.NewCourseService(db)
	enrollmentService := services.NewEnrollmentService(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment Application", nil)
	})

	authRoutes.SetupAuthRoutes(app, authControllers.New(authService, guard), guard)
	courseRoutes.SetupCourseRoutes(app, courseControllers.New(courseService), guard)
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentControllers.New(enrollmentService), guard)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
