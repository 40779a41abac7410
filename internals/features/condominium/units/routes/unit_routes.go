package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/condominium/units/controller"
)

func UnitAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUnitController(db)

	g := admin.Group("/units")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

func UnitUserRoutes(private fiber.Router, db *gorm.DB) {
	ctl := controller.NewUnitController(db)

	g := private.Group("/units")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
