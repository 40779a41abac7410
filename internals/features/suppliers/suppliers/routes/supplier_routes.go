package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/suppliers/suppliers/controller"
)

func SupplierAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSupplierController(db)

	g := admin.Group("/suppliers")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
