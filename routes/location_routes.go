package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler) {
	locationController := controllers.NewLocationController(services.NewLocationService(db))

	// Reads are open; writes need a token.
	api := app.Group(config.MAIN_ROUTES + "/locations")
	api.Get("/", locationController.GetAllLocations)
	api.Get("/:id", locationController.GetLocationByID)
	api.Post("/", auth, locationController.CreateLocation)
	api.Put("/:id", auth, locationController.UpdateLocation)
	api.Delete("/:id", auth, locationController.DeleteLocation)
}
