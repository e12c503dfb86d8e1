package category

import (
	"asset-tracker/controllers"
	"asset-tracker/services"
	"asset-tracker/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func categoryID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.NewValidationError("id", ctx.Params("id"), "A valid integer is required.")
	}
	return uint(id), nil
}

func userID(ctx *fiber.Ctx) uint {
	id, _ := ctx.Locals("userID").(uint)
	return id
}

func (h *CategoryHandler) GetAllCategories(ctx *fiber.Ctx) error {
	categories, err := h.service.GetAll()
	if err != nil {
		return controllers.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

func (h *CategoryHandler) GetCategoryByID(ctx *fiber.Ctx) error {
	id, err := categoryID(ctx)
	if err != nil {
		return controllers.RespondError(ctx, err)
	}

	category, err := h.service.Get(id)
	if err != nil {
		return controllers.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

func (h *CategoryHandler) CreateCategory(ctx *fiber.Ctx) error {
	var input services.CatalogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	category, err := h.service.Create(input, userID(ctx))
	if err != nil {
		return controllers.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := categoryID(ctx)
	if err != nil {
		return controllers.RespondError(ctx, err)
	}

	var input services.CatalogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	category, err := h.service.Update(id, input, userID(ctx))
	if err != nil {
		return controllers.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := categoryID(ctx)
	if err != nil {
		return controllers.RespondError(ctx, err)
	}

	if err := h.service.Delete(id); err != nil {
		return controllers.RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}
