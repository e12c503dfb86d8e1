package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/repositories"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler) {
	userController := controllers.NewUserController(services.NewUserService(repositories.NewUserRepository(db)))

	api := app.Group(config.MAIN_ROUTES+"/users", auth)
	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)

	profile := app.Group(config.MAIN_ROUTES+"/user", auth)
	profile.Get("/profile", userController.GetProfile)
}
