package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssetRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler, history *controllers.HistoryController) {
	assetController := controllers.NewAssetController(services.NewAssetService(db))

	api := app.Group(config.MAIN_ROUTES+"/assets", auth)
	api.Get("/", assetController.GetAllAssets)
	api.Get("/receiving-options", assetController.GetReceivingOptions)
	api.Get("/export", assetController.ExportAssets)
	api.Post("/", assetController.CreateAsset)
	api.Get("/:id", assetController.GetAssetByID)
	api.Get("/:id/history", history.ForRef("asset"))
	api.Patch("/:id/status", assetController.UpdateAssetStatus)
	api.Delete("/:id", assetController.DeleteAsset)
}
