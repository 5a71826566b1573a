package utils

import (
	"log"

	"github.com/StudyHive/course_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// create a generic response function for success
func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseAppError maps a service error to its HTTP status by kind.
// Internal errors are logged and replaced with a generic message.
func ResponseAppError(ctx *fiber.Ctx, err error) error {
	appErr := helper.AsAppError(err)
	if appErr.Kind == helper.KindInternal {
		log.Printf("internal error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ResponseError(ctx, appErr.Kind.HTTPStatus(), "something went wrong")
	}
	return ResponseError(ctx, appErr.Kind.HTTPStatus(), appErr.Message)
}
