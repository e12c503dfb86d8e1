package routes

import (
	"asset-tracker/config"
	"asset-tracker/controllers"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService, auth fiber.Handler) {
	authController := controllers.NewAuthController(authService)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Get("/logout", auth, authController.Logout)
}
