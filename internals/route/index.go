// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"condominiogt_backend/internals/constants"
	authMiddleware "condominiogt_backend/internals/middlewares/auth"

	condominiumRoutes "condominiogt_backend/internals/features/condominium/condominiums/routes"
	residentRoutes "condominiogt_backend/internals/features/condominium/residents/routes"
	unitRoutes "condominiogt_backend/internals/features/condominium/units/routes"
	reportRoutes "condominiogt_backend/internals/features/finance/reports/routes"
	notificationRoutes "condominiogt_backend/internals/features/notifications/routes"
	notificationService "condominiogt_backend/internals/features/notifications/service"
	documentRoutes "condominiogt_backend/internals/features/operations/documents/routes"
	inventoryRoutes "condominiogt_backend/internals/features/operations/inventory/routes"
	maintenanceRoutes "condominiogt_backend/internals/features/operations/maintenance/routes"
	paymentRoutes "condominiogt_backend/internals/features/payment/payments/routes"
	paymentService "condominiogt_backend/internals/features/payment/payments/service"
	contractRoutes "condominiogt_backend/internals/features/suppliers/contracts/routes"
	supplierRoutes "condominiogt_backend/internals/features/suppliers/suppliers/routes"
	userRoutes "condominiogt_backend/internals/features/users/user/routes"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoutes.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT, webhook and health live here
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE → any authenticated user
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → admin or síndico only
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.RoleAdmin, constants.RoleSindico),
	)

	// payment transitions write in-app notifications
	svc := paymentService.NewPaymentService(db, notificationService.NewNotificationService(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	userRoutes.UserRoutes(private, db)

	log.Println("[INFO] Mounting Condominium routes...")
	condominiumRoutes.CondominiumAdminRoutes(admin, db)
	condominiumRoutes.CondominiumUserRoutes(private, db)
	unitRoutes.UnitAdminRoutes(admin, db)
	unitRoutes.UnitUserRoutes(private, db)
	residentRoutes.ResidentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Supplier routes...")
	supplierRoutes.SupplierAdminRoutes(admin, db)
	contractRoutes.ContractAdminRoutes(admin, db)
	contractRoutes.ContractUserRoutes(private, db)

	log.Println("[INFO] Mounting Operation routes...")
	inventoryRoutes.InventoryAdminRoutes(admin, db)
	inventoryRoutes.InventoryUserRoutes(private, db)
	maintenanceRoutes.MaintenanceAdminRoutes(admin, db)
	maintenanceRoutes.MaintenanceUserRoutes(private, db)
	documentRoutes.DocumentAdminRoutes(admin, db)
	documentRoutes.DocumentUserRoutes(private, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoutes.NotificationAdminRoutes(admin, db)
	notificationRoutes.NotificationUserRoutes(private, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoutes.PaymentAdminRoutes(admin, db, svc)
	paymentRoutes.PaymentUserRoutes(private, db, svc)
	paymentRoutes.PaymentPublicRoutes(public, db, svc)

	log.Println("[INFO] Mounting Report routes...")
	reportRoutes.ReportAdminRoutes(admin, db)
}
