package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} errorPayload
// @Router /api/auth/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_CREDENTIALS", "email and password are required")
		}

		result, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(result)
	}
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
//
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

// Me returns the authenticated account.
//
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errorPayload
// @Router /api/auth/me [get]
func Me(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.CurrentUser(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
