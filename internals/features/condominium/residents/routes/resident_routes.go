package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/condominium/residents/controller"
)

func ResidentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewResidentController(db)

	g := admin.Group("/residents")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
