package controllers

import (
	"asset-tracker/repositories"
	"asset-tracker/services"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ConsignmentController struct {
	service *services.ConsignmentService
}

func NewConsignmentController(service *services.ConsignmentService) *ConsignmentController {
	return &ConsignmentController{service: service}
}

func (c *ConsignmentController) GetAllConsignments(ctx *fiber.Ctx) error {
	rows, err := c.service.List(repositories.ConsignmentFilter{Q: ctx.Query("q")})
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

func (c *ConsignmentController) GetConsignmentByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	consignment, err := c.service.Get(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    consignment,
	})
}

func (c *ConsignmentController) GetNextCode(ctx *fiber.Ctx) error {
	code, err := c.service.NextCode()
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"slk_id": code},
	})
}

// CreateConsignment accepts JSON or multipart form data; the form may carry an "invoice" file.
func (c *ConsignmentController) CreateConsignment(ctx *fiber.Ctx) error {
	var input services.ConsignmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	var invoice *services.Attachment
	if strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, err := ctx.FormFile("invoice")
		if err == nil {
			f, err := file.Open()
			if err != nil {
				return RespondError(ctx, err)
			}
			defer f.Close()
			invoice = &services.Attachment{Filename: file.Filename, Content: f}
		}
	}

	consignment, err := c.service.Create(ctx.UserContext(), input, invoice, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Consignment created successfully",
		"data":    consignment,
	})
}

func (c *ConsignmentController) UpdateConsignment(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	var input services.ConsignmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	consignment, err := c.service.Update(id, input)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Consignment updated successfully",
		"data":    consignment,
	})
}

func (c *ConsignmentController) DeleteConsignment(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Consignment deleted successfully",
	})
}
