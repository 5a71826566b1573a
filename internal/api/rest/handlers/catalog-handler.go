package handlers

import (
	"github.com/StudyHive/course_service/internal/api/rest/middleware"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler is the student-facing side: public browsing plus the
// paid enrollment flow.
type CatalogHandler struct {
	courseSvc services.CourseService
	enrollSvc services.EnrollmentService
	auth      helper.Auth
}

func NewCatalogHandler(courseSvc services.CourseService, enrollSvc services.EnrollmentService, auth helper.Auth) *CatalogHandler {
	return &CatalogHandler{courseSvc: courseSvc, enrollSvc: enrollSvc, auth: auth}
}

func (h *CatalogHandler) SetupRoutes(group fiber.Router) {
	group.Get("/", h.ListCourses)

	authed := middleware.RequireAuth(h.auth)
	studentOnly := middleware.RequireRole(helper.RoleStudent)
	group.Post("/create-order", authed, studentOnly, h.CreateOrder)
	group.Get("/me/enrollments", authed, studentOnly, h.GetMyEnrollments)
	group.Post("/:courseId/enroll", authed, studentOnly, h.EnrollCourse)

	// keep the wildcard last so it cannot shadow the routes above
	group.Get("/:courseId", h.GetCourse)
}

func (h *CatalogHandler) ListCourses(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	search := ctx.Query("search")

	courses, total, err := h.courseSvc.ListPublicCourses(page, limit, search)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.CourseListResponse{
		Courses: courses,
		Total:   total,
	})
}

func (h *CatalogHandler) GetCourse(ctx *fiber.Ctx) error {
	courseID, err := parseUintParam(ctx, "courseId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	course, svcErr := h.courseSvc.GetCourse(courseID)
	if svcErr != nil {
		return utils.ResponseAppError(ctx, svcErr)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, course)
}

func (h *CatalogHandler) CreateOrder(ctx *fiber.Ctx) error {
	var requestBody dto.CreateOrderRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "course id and amount are required")
	}
	if err := dto.Validate(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "course id and amount are required")
	}

	order, err := h.enrollSvc.CreateOrder(ctx.UserContext(), requestBody.CourseID, requestBody.Amount)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *CatalogHandler) EnrollCourse(ctx *fiber.Ctx) error {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	courseID, err := parseUintParam(ctx, "courseId")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	var requestBody dto.EnrollRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid payment details")
	}

	if err := h.enrollSvc.EnrollCourse(studentID, courseID, requestBody); err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"enrolled": true})
}

func (h *CatalogHandler) GetMyEnrollments(ctx *fiber.Ctx) error {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	enrollments, err := h.enrollSvc.GetUserEnrollments(studentID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, enrollments)
}
