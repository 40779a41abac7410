package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/operations/maintenance/controller"
)

func MaintenanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceController(db)

	group := api.Group("/maintenance")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
	group.Patch("/:id", ctl.Patch)
	group.Post("/:id/status", ctl.Transition)
	group.Delete("/:id", ctl.Delete)
}

// MaintenanceUserRoutes lets residents open and follow their own tickets.
func MaintenanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceController(db)

	group := api.Group("/maintenance")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
}
