package controllers

import (
	"asset-tracker/repositories"
	"asset-tracker/services"
	"asset-tracker/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ReceivingController struct {
	service *services.ReceivingService
}

func NewReceivingController(service *services.ReceivingService) *ReceivingController {
	return &ReceivingController{service: service}
}

func (c *ReceivingController) GetAllReceivings(ctx *fiber.Ctx) error {
	categoryID, err := queryUint(ctx, "category_id")
	if err != nil {
		return RespondError(ctx, err)
	}

	rows, err := c.service.List(repositories.ReceivingFilter{
		Q:          ctx.Query("q"),
		Status:     ctx.Query("status"),
		CategoryID: categoryID,
	})
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

func (c *ReceivingController) GetReceivingByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	rec, err := c.service.Get(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rec,
	})
}

func (c *ReceivingController) CreateReceiving(ctx *fiber.Ctx) error {
	var input services.ReceivingInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	rec, err := c.service.Create(input)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Receiving created successfully",
		"data":    rec,
	})
}

func (c *ReceivingController) UpdateReceiving(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	var input services.ReceivingInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	rec, err := c.service.Update(id, input)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Receiving updated successfully",
		"data":    rec,
	})
}

func (c *ReceivingController) UpdateReceivingStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}
	status, err := parseStatus(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	rec, err := c.service.UpdateStatus(id, status, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Receiving status updated",
		"data":    rec,
	})
}

func (c *ReceivingController) DeleteReceiving(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Receiving deleted successfully",
	})
}

// ImportReceivings loads receivings from an uploaded .xlsx file. Either every row is stored or none.
func (c *ReceivingController) ImportReceivings(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return RespondError(ctx, utils.NewValidationError("file", nil, "No file uploaded or invalid file"))
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		return RespondError(ctx, utils.NewValidationError("file", file.Filename, "Invalid file format. Only .xlsx files are allowed"))
	}

	if file.Size > 10*1024*1024 {
		return RespondError(ctx, utils.NewValidationError("file", file.Filename, "File size exceeds maximum limit of 10MB"))
	}

	fileHeader, err := file.Open()
	if err != nil {
		return RespondError(ctx, err)
	}
	defer fileHeader.Close()

	result, err := c.service.Import(fileHeader)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Receivings imported successfully",
		"data":    result,
	})
}
