package middleware

import (
	"asset-tracker/controllers"
	"asset-tracker/services"
	"asset-tracker/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware guards a route with "Authorization: Bearer <token>". On success the caller's
// user id and session id are stored in ctx.Locals as "userID" (uint) and "sessionID".
func NewAuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return controllers.RespondError(ctx, utils.NewAuthError("Authentication credentials were not provided."))
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return controllers.RespondError(ctx, utils.NewAuthError("Invalid Authorization header format"))
		}

		session, err := auth.Authenticate(tokenParts[1])
		if err != nil {
			return controllers.RespondError(ctx, err)
		}

		ctx.Locals("userID", session.UserID)
		ctx.Locals("sessionID", session.SessionID)
		return ctx.Next()
	}
}
