package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies an AppError so handlers can map it to an HTTP
// status without matching on message text.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindIntegrity // signature / amount mismatch
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind ErrorKind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func WrapAppError(kind ErrorKind, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func ErrValidation(msg string) *AppError      { return NewAppError(KindValidation, msg) }
func ErrUnauthenticated(msg string) *AppError { return NewAppError(KindUnauthenticated, msg) }
func ErrForbidden(msg string) *AppError       { return NewAppError(KindForbidden, msg) }
func ErrNotFound(msg string) *AppError        { return NewAppError(KindNotFound, msg) }
func ErrIntegrity(msg string) *AppError       { return NewAppError(KindIntegrity, msg) }
func ErrInternal(msg string, err error) *AppError {
	return WrapAppError(KindInternal, msg, err)
}

// HTTPStatus maps an error kind to its response status.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation, KindIntegrity:
		return fiber.StatusBadRequest
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// AsAppError unwraps err to an *AppError; unknown errors come back as
// an internal kind so callers never leak raw messages.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: "something went wrong", Err: err}
}
