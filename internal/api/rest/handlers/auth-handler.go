package handlers

import (
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves login/refresh for one role; three instances are
// mounted under /api/student, /api/tutor and /api/admin.
type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(group fiber.Router) {
	group.Post("/login", h.Login)
	group.Post("/refresh-token", h.Refresh)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	if err := dto.Validate(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	resp, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Refresh(ctx *fiber.Ctx) error {
	var requestBody dto.RefreshRequest
	// body is optional; the token may arrive via cookie or header instead
	_ = ctx.BodyParser(&requestBody)

	token := requestBody.RefreshToken
	// cookie and Authorization header are accepted as fallbacks
	if token == "" {
		token = ctx.Cookies("refreshToken")
	}
	if token == "" {
		token = ctx.Get("Authorization")
	}
	if token == "" {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "refresh token is required")
	}

	resp, err := h.svc.Refresh(token)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}
