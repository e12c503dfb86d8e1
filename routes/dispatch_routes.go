package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDispatchRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler, history *controllers.HistoryController) {
	dispatchController := controllers.NewDispatchController(services.NewDispatchService(db))

	api := app.Group(config.MAIN_ROUTES+"/dispatches", auth)
	api.Get("/", dispatchController.GetAllDispatches)
	api.Post("/", dispatchController.CreateDispatch)
	api.Get("/:id", dispatchController.GetDispatchByID)
	api.Get("/:id/history", history.ForRef("dispatch"))
	api.Patch("/:id/status", dispatchController.UpdateDispatchStatus)
	api.Delete("/:id", dispatchController.DeleteDispatch)
}
