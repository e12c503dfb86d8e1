package controllers

import (
	"asset-tracker/repositories"
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

type DispatchController struct {
	service *services.DispatchService
}

func NewDispatchController(service *services.DispatchService) *DispatchController {
	return &DispatchController{service: service}
}

func (c *DispatchController) GetAllDispatches(ctx *fiber.Ctx) error {
	rows, err := c.service.List(repositories.DispatchFilter{Q: ctx.Query("q"), Status: ctx.Query("status")})
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

func (c *DispatchController) GetDispatchByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	d, err := c.service.Get(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    d,
	})
}

// CreateDispatch records the caller as the requesting user.
func (c *DispatchController) CreateDispatch(ctx *fiber.Ctx) error {
	var input services.DispatchInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	d, err := c.service.Create(input, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Dispatch created successfully",
		"data":    d,
	})
}

func (c *DispatchController) UpdateDispatchStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}
	status, err := parseStatus(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	d, err := c.service.UpdateStatus(id, status, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Dispatch status updated",
		"data":    d,
	})
}

func (c *DispatchController) DeleteDispatch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Dispatch deleted successfully",
	})
}
