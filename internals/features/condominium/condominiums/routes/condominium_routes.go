package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/condominium/condominiums/controller"
)

func CondominiumAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewCondominiumController(db)

	g := admin.Group("/condominiums")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

func CondominiumUserRoutes(private fiber.Router, db *gorm.DB) {
	ctl := controller.NewCondominiumController(db)

	g := private.Group("/condominiums")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
