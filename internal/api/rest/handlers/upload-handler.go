package handlers

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper/utils"
	"github.com/StudyHive/course_service/internal/interfaces"
	pkgutils "github.com/StudyHive/course_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type UploadHandler struct {
	uploader interfaces.Uploader
}

func NewUploadHandler(uploader interfaces.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) SetupRoutes(group fiber.Router) {
	group.Post("/upload-image", h.UploadCourseImage)
}

// POST /api/courses/upload-image
// form-data: file=<image>
func (h *UploadHandler) UploadCourseImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "only jpg/jpeg/png/webp allowed")
	}
	if file.Size > maxImageSize {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	b, err := pkgutils.ReadAllLimit(f, maxImageSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	uploadCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	publicID := uuid.NewString()
	url, err := h.uploader.UploadBytes(uploadCtx, "studyhive/courses", publicID, b)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "image upload failed")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.UploadResponse{
		URL:      url,
		PublicID: publicID,
	})
}
