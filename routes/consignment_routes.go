package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupConsignmentRoutes(app *fiber.App, deps Dependencies, auth fiber.Handler) {
	service := services.NewConsignmentService(deps.DB, deps.Invoices, deps.Mailer, deps.Recipients)
	consignmentController := controllers.NewConsignmentController(service)

	api := app.Group(config.MAIN_ROUTES + "/consignments")
	api.Get("/", consignmentController.GetAllConsignments)
	api.Get("/next-code", auth, consignmentController.GetNextCode)
	api.Get("/:id", auth, consignmentController.GetConsignmentByID)
	api.Post("/", auth, consignmentController.CreateConsignment)
	api.Put("/:id", auth, consignmentController.UpdateConsignment)
	api.Delete("/:id", auth, consignmentController.DeleteConsignment)
}
