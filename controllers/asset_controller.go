package controllers

import (
	"asset-tracker/repositories"
	"asset-tracker/services"
	"bytes"

	"github.com/gofiber/fiber/v2"
)

type AssetController struct {
	service *services.AssetService
}

func NewAssetController(service *services.AssetService) *AssetController {
	return &AssetController{service: service}
}

func assetFilter(ctx *fiber.Ctx) repositories.AssetFilter {
	return repositories.AssetFilter{Q: ctx.Query("q"), Status: ctx.Query("status")}
}

func (c *AssetController) GetAllAssets(ctx *fiber.Ctx) error {
	rows, err := c.service.List(assetFilter(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

func (c *AssetController) GetAssetByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	asset, err := c.service.Get(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    asset,
	})
}

// GetReceivingOptions lists the receivings an asset can be created from.
func (c *AssetController) GetReceivingOptions(ctx *fiber.Ctx) error {
	rows, err := c.service.ReceivingOptions()
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

func (c *AssetController) CreateAsset(ctx *fiber.Ctx) error {
	var input services.AssetInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	asset, err := c.service.Create(input)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Asset created successfully",
		"data":    asset,
	})
}

func (c *AssetController) UpdateAssetStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}
	status, err := parseStatus(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	asset, err := c.service.UpdateStatus(id, status, currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Asset status updated",
		"data":    asset,
	})
}

func (c *AssetController) DeleteAsset(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	if err := c.service.Delete(id); err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Asset deleted successfully",
	})
}

func (c *AssetController) ExportAssets(ctx *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := c.service.Export(&buf, assetFilter(ctx)); err != nil {
		return RespondError(ctx, err)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+services.ExportFilename())
	return ctx.Send(buf.Bytes())
}
