package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/operations/documents/controller"
)

func DocumentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDocumentController(db)

	group := api.Group("/documents")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
	group.Patch("/:id", ctl.Patch)
	group.Delete("/:id", ctl.Delete)
}

func DocumentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDocumentController(db)

	group := api.Group("/documents")
	group.Get("/", ctl.List)
	group.Get("/:id", ctl.GetByID)
}
