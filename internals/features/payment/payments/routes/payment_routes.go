package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/payment/payments/controller"
	service "condominiogt_backend/internals/features/payment/payments/service"
)

// PaymentAdminRoutes: full lifecycle, mounted behind auth + role check.
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB, svc *service.PaymentService) {
	ctl := controller.NewPaymentController(db, svc)

	g := admin.Group("/payments")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)

	g.Post("/:id/pay", ctl.Pay)
	g.Post("/:id/cancel", ctl.Cancel)
	g.Post("/:id/mark-overdue", ctl.MarkOverdue)
}

// PaymentUserRoutes: a resident can see charges and open a checkout.
func PaymentUserRoutes(private fiber.Router, db *gorm.DB, svc *service.PaymentService) {
	ctl := controller.NewPaymentController(db, svc)

	g := private.Group("/payments")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/:id/checkout", ctl.Checkout)
}

// PaymentPublicRoutes: the gateway webhook, skipped by auth.
func PaymentPublicRoutes(public fiber.Router, db *gorm.DB, svc *service.PaymentService) {
	ctl := controller.NewPaymentController(db, svc)
	public.Post("/payments/notification", ctl.Webhook)
}
