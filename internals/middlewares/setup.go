package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "condominiogt_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain, order matters:
// recovery first so a panic anywhere below still yields a response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
