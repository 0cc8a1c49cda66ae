package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares installs the app-wide middleware chain, ordered so
// the recover handler sees everything below it.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
