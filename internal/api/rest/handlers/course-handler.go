package handlers

import (
	"strconv"

	"github.com/StudyHive/course_service/internal/api/rest/middleware"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CourseHandler is the admin-scoped catalog CRUD.
type CourseHandler struct {
	svc services.CourseService
}

func NewCourseHandler(svc services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) SetupRoutes(group fiber.Router) {
	group.Post("/add", h.AddCourse)
	group.Get("/list/:adminId", h.ListCourses)
	group.Get("/:courseId", h.GetCourse)
	group.Put("/:courseId", h.EditCourse)
	group.Delete("/:courseId", h.DeleteCourse)
}

func (h *CourseHandler) AddCourse(ctx *fiber.Ctx) error {
	adminID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.AddCourseRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	course, err := h.svc.AddCourse(adminID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, course)
}

func (h *CourseHandler) ListCourses(ctx *fiber.Ctx) error {
	adminID, err := parseUintParam(ctx, "adminId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid admin id")
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	search := ctx.Query("search")

	courses, total, svcErr := h.svc.ListAdminCourses(adminID, page, limit, search)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.CourseListResponse{
		Courses: courses,
		Total:   total,
	})
}

func (h *CourseHandler) GetCourse(ctx *fiber.Ctx) error {
	courseID, err := parseUintParam(ctx, "courseId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	course, svcErr := h.svc.GetCourse(courseID)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, course)
}

func (h *CourseHandler) EditCourse(ctx *fiber.Ctx) error {
	courseID, err := parseUintParam(ctx, "courseId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	var requestBody dto.EditCourseRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	course, svcErr := h.svc.EditCourse(courseID, requestBody)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(ctx *fiber.Ctx) error {
	courseID, err := parseUintParam(ctx, "courseId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	removed, svcErr := h.svc.DeleteCourse(courseID)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	if !removed {
		return utils.ResponseAppError(ctx, helper.ErrNotFound("course not found"))
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": true})
}

func parseUintParam(ctx *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil || v == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(v), nil
}
