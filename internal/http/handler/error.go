package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/inference"
	"medscanapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps service sentinel errors onto HTTP statuses. Anything
// unrecognized becomes a 500 without leaking the underlying error.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, service.ErrAccountInactive):
		return writeError(c, fiber.StatusForbidden, "ACCOUNT_INACTIVE", "account is not active")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrProfileNotFound):
		return writeError(c, fiber.StatusNotFound, "PROFILE_NOT_FOUND", "profile not found")
	case errors.Is(err, service.ErrNoModel):
		return writeError(c, fiber.StatusBadRequest, "NO_MODEL", "no model available for this examination type and body region")
	case errors.Is(err, service.ErrNoResults):
		return writeError(c, fiber.StatusNotFound, "NO_RESULTS", "no analysis results available yet")
	case errors.Is(err, service.ErrNoFields):
		return writeError(c, fiber.StatusBadRequest, "NO_FIELDS", "no fields to update")
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrNotPublished):
		return writeError(c, fiber.StatusBadRequest, "NOT_PUBLISHED", "report is not published")
	case errors.Is(err, service.ErrJobNotFound):
		return writeError(c, fiber.StatusNotFound, "JOB_NOT_FOUND", "job not found or expired")
	case errors.Is(err, service.ErrJobForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "job belongs to another user")
	case errors.Is(err, inference.ErrRAGTimeout):
		return writeError(c, fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "response taking too long; use the async chat endpoint")
	case errors.Is(err, inference.ErrRAGUnavailable):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "assistant temporarily unavailable")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "missing or invalid credentials")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "insufficient permissions")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
