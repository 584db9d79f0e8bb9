package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()
	cfg := loadConfig()

	engine := html.New("./templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
		ServerHeader: "Study-Planner",
	})

	// Middleware
	app.Use(recover.New()) // Prevent panics from killing connections
	app.Use(logger.New())
	app.Use(cors.New())

	srv := &Server{cfg: cfg}

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "study-planner"})
	})

	// FORM ROUTES
	// Render the empty form / generate and render a plan
	app.Get("/", srv.handleIndex)
	app.Post("/", srv.handleGenerate)

	// API ROUTES
	// Same plan as JSON for programmatic callers
	app.Post("/api/plan", srv.handleAPIPlan)

	// DOWNLOAD ROUTES
	// Regenerate deterministically and stream an artifact
	app.Post("/download/pdf", srv.handleDownloadPDF)
	app.Post("/download/ics", srv.handleDownloadICS)

	app.Listen(":" + cfg.Port)
}
