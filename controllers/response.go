package controllers

import (
	"asset-tracker/config"
	"asset-tracker/utils"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RespondError writes err in the standard envelope with the status that matches its kind.
func RespondError(ctx *fiber.Ctx, err error) error {
	var (
		vErr  *utils.ValidationError
		vErrs utils.ValidationErrors
		pErr  *utils.PreconditionError
		aErr  *utils.AuthError
		nErr  *utils.NotFoundError
	)

	switch {
	case errors.As(err, &vErrs):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  vErrs,
		})
	case errors.As(err, &vErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": vErr.Message,
			"errors":  utils.ValidationErrors{vErr},
		})
	case errors.As(err, &pErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": pErr.Message,
		})
	case errors.As(err, &aErr):
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": aErr.Message,
		})
	case errors.As(err, &nErr):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": nErr.Error(),
		})
	}

	config.LogError(config.GetLogger(), "http", ctx.Route().Path, ctx.Method(), ctx.OriginalURL(), err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

func badPayload(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid payload",
		"error":   err.Error(),
	})
}

func paramID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.NewValidationError("id", ctx.Params("id"), "A valid integer is required.")
	}
	return uint(id), nil
}

// queryUint reads an optional positive integer query parameter.
func queryUint(ctx *fiber.Ctx, key string) (*uint, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, utils.NewValidationError(key, raw, "A valid integer is required.")
	}
	out := uint(v)
	return &out, nil
}

// currentUserID is the authenticated caller, set by the auth middleware.
func currentUserID(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

type statusPayload struct {
	Status string `json:"status" validate:"required"`
}

func parseStatus(ctx *fiber.Ctx) (string, error) {
	var payload statusPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return "", utils.NewValidationError("", nil, "Invalid payload")
	}
	if err := utils.ValidateStruct(payload); err != nil {
		return "", err
	}
	return payload.Status, nil
}
