package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/middleware"
	"asset-tracker/services"
	"asset-tracker/storage"
	"asset-tracker/wms/master/category"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies are the shared collaborators every route group is built from.
type Dependencies struct {
	DB         *gorm.DB
	Invoices   storage.InvoiceStore
	Mailer     services.MailSender
	Recipients []string
}

// NewApp builds the fiber application with CORS and every route group registered.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})
	config.SetupCORS(app)
	SetupRoutes(app, deps)
	return app
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	authService := services.NewAuthService(deps.DB)
	auth := middleware.NewAuthMiddleware(authService)
	history := controllers.NewHistoryController(deps.DB)

	SetupAuthRoutes(app, authService, auth)
	SetupUserRoutes(app, deps.DB, auth)
	SetupDashboardRoutes(app, deps.DB, auth)
	SetupLocationRoutes(app, deps.DB, auth)
	category.SetupCategoryRoutes(app, deps.DB, auth)
	SetupConsignmentRoutes(app, deps, auth)
	SetupReceivingRoutes(app, deps.DB, auth, history)
	SetupAssetRoutes(app, deps.DB, auth, history)
	SetupDispatchRoutes(app, deps.DB, auth, history)
}
