package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestioncursos/config"
	"gestioncursos/controllers"
	"gestioncursos/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Liveness probe, the only data-free unauthenticated route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Auth routes
	authController := controllers.NewAuthController(cfg)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	app.Get("/api/auth/verify", authMiddleware, authController.Verify)

	// State lookup
	statesController := controllers.NewStatesController(db)
	app.Get("/api/estados", authMiddleware, statesController.ListStates)

	// Course routes
	coursesController := controllers.NewCoursesController(db)
	cursos := app.Group("/api/cursos", authMiddleware)
	cursos.Get("/", coursesController.ListCourses)
	cursos.Get("/:id", coursesController.GetCourse)
	cursos.Post("/", coursesController.CreateCourse)
	cursos.Put("/:id", coursesController.UpdateCourse)
	cursos.Delete("/:id", coursesController.DeleteCourse)

	// Cycle routes
	cyclesController := controllers.NewCyclesController(db)
	ciclos := app.Group("/api/ciclos", authMiddleware)
	ciclos.Get("/", cyclesController.ListCycles)
	ciclos.Get("/:id", cyclesController.GetCycle)
	ciclos.Post("/", cyclesController.CreateCycle)
	ciclos.Put("/:id", cyclesController.UpdateCycle)
	ciclos.Delete("/:id", cyclesController.DeleteCycle)

	// Dashboard statistics
	statsController := controllers.NewStatsController(db)
	app.Get("/api/estadisticas", authMiddleware, statsController.GetStats)
}
