package controllers

import (
	"asset-tracker/controllers/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(DB *gorm.DB) *HistoryController {
	return &HistoryController{DB: DB}
}

// ForRef returns a handler listing the status history of the refType record named by :id.
func (c *HistoryController) ForRef(refType string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramID(ctx)
		if err != nil {
			return RespondError(ctx, err)
		}

		rows, err := helpers.GetTransactionHistory(c.DB, refType, id)
		if err != nil {
			return RespondError(ctx, err)
		}
		return ctx.JSON(fiber.Map{
			"success": true,
			"data":    rows,
		})
	}
}
