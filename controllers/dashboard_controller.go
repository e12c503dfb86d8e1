package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type StatusCount struct {
	Entity string `json:"entity"`
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// GetDashboard counts records per lifecycle stage and status.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	sql := `SELECT 'consignment' AS entity, '' AS status, COUNT(*) AS total FROM consignments
		UNION ALL
		SELECT 'receiving' AS entity, status, COUNT(*) AS total FROM receivings GROUP BY status
		UNION ALL
		SELECT 'asset' AS entity, status, COUNT(*) AS total FROM assets GROUP BY status
		UNION ALL
		SELECT 'dispatch' AS entity, status, COUNT(*) AS total FROM dispatches GROUP BY status`

	counts := []StatusCount{}
	if err := c.DB.Raw(sql).Scan(&counts).Error; err != nil {
		return RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dashboard found", "data": fiber.Map{"counts": counts}})
}
