package controllers

import (
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetAllUsers lists users in the compact form used to pick dispatch approvers.
func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.service.GetUserOptions()
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    users,
	})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	user, err := c.service.GetUserByID(id)
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	user, err := c.service.GetUserByID(currentUserID(ctx))
	if err != nil {
		return RespondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}
