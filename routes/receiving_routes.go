package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReceivingRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler, history *controllers.HistoryController) {
	receivingController := controllers.NewReceivingController(services.NewReceivingService(db))

	api := app.Group(config.MAIN_ROUTES+"/receivings", auth)
	api.Get("/", receivingController.GetAllReceivings)
	api.Post("/", receivingController.CreateReceiving)
	api.Post("/import", receivingController.ImportReceivings)
	api.Get("/:id", receivingController.GetReceivingByID)
	api.Get("/:id/history", history.ForRef("receiving"))
	api.Put("/:id", receivingController.UpdateReceiving)
	api.Patch("/:id/status", receivingController.UpdateReceivingStatus)
	api.Delete("/:id", receivingController.DeleteReceiving)
}
