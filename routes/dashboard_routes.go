package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", auth)
	api.Get("/", dashboardController.GetDashboard)
}
