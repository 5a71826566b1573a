package handlers

import (
	"github.com/StudyHive/course_service/internal/api/rest/middleware"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	svc  services.LeaveService
	auth helper.Auth
}

func NewLeaveHandler(svc services.LeaveService, auth helper.Auth) *LeaveHandler {
	return &LeaveHandler{svc: svc, auth: auth}
}

func (h *LeaveHandler) SetupRoutes(group fiber.Router) {
	authed := middleware.RequireAuth(h.auth)
	studentOnly := middleware.RequireRole(helper.RoleStudent)
	adminOnly := middleware.RequireRole(helper.RoleAdmin)

	group.Post("/apply", authed, studentOnly, h.ApplyLeave)
	group.Get("/my-leaves", authed, studentOnly, h.GetMyLeaves)

	group.Get("/pending", authed, adminOnly, h.GetPendingLeaves)
	group.Get("/calendar", authed, adminOnly, h.GetCalendarLeaves)
	group.Put("/:leaveId", authed, adminOnly, h.UpdateLeaveStatus)
}

func (h *LeaveHandler) ApplyLeave(ctx *fiber.Ctx) error {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.ApplyLeaveRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	leave, err := h.svc.ApplyLeave(studentID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, leave)
}

func (h *LeaveHandler) GetMyLeaves(ctx *fiber.Ctx) error {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	leaves, total, err := h.svc.GetUserLeaves(studentID, page, limit)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LeaveListResponse{
		Leaves: leaves,
		Total:  total,
	})
}

func (h *LeaveHandler) GetPendingLeaves(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	leaves, total, err := h.svc.GetPendingLeaves(page, limit)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LeaveListResponse{
		Leaves: leaves,
		Total:  total,
	})
}

func (h *LeaveHandler) UpdateLeaveStatus(ctx *fiber.Ctx) error {
	leaveID, err := parseUintParam(ctx, "leaveId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid leave id")
	}

	var requestBody dto.UpdateLeaveStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	leave, svcErr := h.svc.UpdateLeaveStatus(leaveID, requestBody)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, leave)
}

func (h *LeaveHandler) GetCalendarLeaves(ctx *fiber.Ctx) error {
	leaves, err := h.svc.GetCalendarLeaves()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, leaves)
}
