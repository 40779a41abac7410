package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/suppliers/contracts/controller"
)

// ContractAdminRoutes registers the management surface for supplier contracts.
func ContractAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewContractController(db)

	group := api.Group("/contracts")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
	group.Patch("/:id", ctl.Patch)
	group.Delete("/:id", ctl.Delete)
}

// ContractUserRoutes exposes read-only contract listing to residents.
func ContractUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewContractController(db)

	group := api.Group("/contracts")
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
}
