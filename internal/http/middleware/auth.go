package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"medscanapi/internal/auth"
)

const (
	// UserIDLocalKey is the context locals key for the authenticated user id.
	UserIDLocalKey = "user_id"
	// UserRoleLocalKey is the context locals key for the authenticated role.
	UserRoleLocalKey = "user_role"
)

// Auth verifies the Authorization bearer token and stores the caller's
// identity in context locals. Requests without a valid token get 401 via the
// global error handler.
func Auth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.ErrUnauthorized
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := auth.Parse(secret, token)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(UserIDLocalKey, claims.Subject)
		c.Locals(UserRoleLocalKey, claims.Role)
		return c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the allow
// list. It must run after Auth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(UserRoleLocalKey).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}
