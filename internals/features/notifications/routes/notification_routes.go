package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/notifications/controller"
)

func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	group := api.Group("/notifications")
	group.Post("/", ctl.Create)
	group.Get("/", ctl.List)
	group.Post("/:id/read", ctl.MarkRead)
	group.Delete("/:id", ctl.Delete)
}

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	group := api.Group("/notifications")
	group.Get("/", ctl.List)
	group.Post("/:id/read", ctl.MarkRead)
}
