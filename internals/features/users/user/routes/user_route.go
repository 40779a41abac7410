package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/users/user/controller"
	"condominiogt_backend/internals/middlewares"
)

// AuthRoutes: public register/login with strict limiters.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// UserRoutes: authenticated self-service endpoints.
func UserRoutes(private fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)
	private.Get("/users/me", ctl.Me)
}
