package handlers

import (
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler covers user management and the dashboard listings.
// Login/refresh for admins is served by the shared AuthHandler.
type AdminHandler struct {
	svc services.AdminService
}

func NewAdminHandler(svc services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) SetupRoutes(group fiber.Router) {
	group.Get("/users", h.GetUsers)
	group.Patch("/block-unblock/:userId", h.BlockUnblock)
	group.Get("/students", h.GetStudents)
	group.Get("/tutors", h.GetTutors)
	group.Get("/courses", h.GetCourses)
}

func (h *AdminHandler) GetUsers(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	search := ctx.Query("search")

	users, total, totalStudents, err := h.svc.GetUsers(page, limit, search)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.UserListResponse{
		Users:         users,
		Total:         total,
		TotalStudents: totalStudents,
	})
}

func (h *AdminHandler) BlockUnblock(ctx *fiber.Ctx) error {
	userID, err := parseUintParam(ctx, "userId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var requestBody dto.BlockUnblockRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.IsBlocked == nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "is_blocked is required")
	}

	user, svcErr := h.svc.BlockUnblock(userID, *requestBody.IsBlocked)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *AdminHandler) GetStudents(ctx *fiber.Ctx) error {
	students, err := h.svc.GetStudents()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, students)
}

func (h *AdminHandler) GetTutors(ctx *fiber.Ctx) error {
	tutors, err := h.svc.GetTutors()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, tutors)
}

func (h *AdminHandler) GetCourses(ctx *fiber.Ctx) error {
	courses, err := h.svc.GetCourses()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, courses)
}
