package controllers

import (
	"asset-tracker/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var input services.RegisterInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	session, err := c.service.Register(input)
	if err != nil {
		return RespondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    session,
	})
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input services.LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return badPayload(ctx, err)
	}

	session, err := c.service.Login(input)
	if err != nil {
		return RespondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    session,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, _ := ctx.Locals("sessionID").(string)
	if err := c.service.Logout(sessionID); err != nil {
		return RespondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}
