package middleware

import (
	"strings"

	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

// cookie names accepted for the access token, oldest client first
var accessTokenCookies = []string{"access_token", "jwt", "token"}

func RequireAuth(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var tokenStr string
		for _, name := range accessTokenCookies {
			if v := strings.TrimSpace(ctx.Cookies(name)); v != "" {
				tokenStr = v
				break
			}
		}
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyAccessToken(tokenStr)
		if err != nil {
			return utils.ResponseAppError(ctx, err)
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("role", claims.Role)
		return ctx.Next()
	}
}

// RequireRole gates a route on the role claim set by RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, ok := ctx.Locals("userID").(uint)
		if !ok || userID == 0 {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}
		if ctx.Locals("role") != role {
			return utils.ResponseError(ctx, fiber.StatusForbidden, role+" access required")
		}
		return ctx.Next()
	}
}

// CurrentUserID reads the authenticated subject set by RequireAuth.
func CurrentUserID(ctx *fiber.Ctx) (uint, bool) {
	userID, ok := ctx.Locals("userID").(uint)
	return userID, ok && userID != 0
}
