package controllers

import (
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

type LocationController struct {
	service *services.LocationService
}

func NewLocationController(service *services.LocationService) *LocationController {
	return &LocationController{service: service}
}

// CREATE
func (lc *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var input services.CatalogInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	location, err := lc.service.Create(input, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Location created successfully",
		"data":    location,
	})
}

// READ ALL
func (lc *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	locations, err := lc.service.GetAll()
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    locations,
	})
}

// READ BY ID
func (lc *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	location, err := lc.service.Get(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    location,
	})
}

// UPDATE
func (lc *LocationController) UpdateLocation(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	var input services.CatalogInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	location, err := lc.service.Update(id, input, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Location updated successfully",
		"data":    location,
	})
}

// DELETE
func (lc *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	if err := lc.service.Delete(id); err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Location deleted successfully",
	})
}
