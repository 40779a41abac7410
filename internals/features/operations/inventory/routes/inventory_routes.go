package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/operations/inventory/controller"
)

func InventoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInventoryController(db)

	group := api.Group("/inventory")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
	group.Patch("/:id", ctl.Patch)
	group.Delete("/:id", ctl.Delete)
}

func InventoryUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInventoryController(db)

	group := api.Group("/inventory")
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
}
