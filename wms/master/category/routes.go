package category

import (
	"asset-tracker/config"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCategoryRoutes registers the category endpoints. Reads are open; writes need auth.
func SetupCategoryRoutes(app *fiber.App, db *gorm.DB, auth fiber.Handler) {
	handler := NewCategoryHandler(services.NewCategoryService(db))

	api := app.Group(config.MAIN_ROUTES + "/categories")
	api.Get("/", handler.GetAllCategories)
	api.Get("/:id", handler.GetCategoryByID)
	api.Post("/", auth, handler.CreateCategory)
	api.Put("/:id", auth, handler.UpdateCategory)
	api.Delete("/:id", auth, handler.DeleteCategory)
}
