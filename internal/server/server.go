package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// New builds the fiber app with the middleware chain and every trivia route.
func New(cfg config.Config, trivia *handler.TriviaHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORSHeaders())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,PUT,POST,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,true",
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	trivia.RegisterRoutes(app)

	return app
}
