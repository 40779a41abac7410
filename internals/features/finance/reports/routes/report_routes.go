package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "condominiogt_backend/internals/features/finance/reports/controller"
)

// ReportAdminRoutes exposes the financial reports to managers.
func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	group := api.Group("/reports")
	group.Get("/summary", ctl.Summary)
	group.Get("/delinquency", ctl.Delinquency)
	group.Get("/cost-per-unit", ctl.CostPerUnit)
	group.Get("/trend", ctl.Trend)
	group.Get("/cashflow", ctl.CashFlow)
	group.Get("/forecast", ctl.Forecast)

	api.Get("/dashboard", ctl.Dashboard)
}
