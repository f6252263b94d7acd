package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscanapi/internal/auth"
)

var testSecret = []byte("middleware-test-secret")

func authedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{Auth(testSecret)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(UserIDLocalKey),
			"role":    c.Locals(UserRoleLocalKey),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		app := authedApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		app := authedApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Token abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		app := authedApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.Sign([]byte("other-secret"), "user-1", "patient", time.Hour)
		require.NoError(t, err)

		app := authedApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token populates locals", func(t *testing.T) {
		token, err := auth.Sign(testSecret, "user-1", "patient", time.Hour)
		require.NoError(t, err)

		app := authedApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	token, err := auth.Sign(testSecret, "user-1", "patient", time.Hour)
	require.NoError(t, err)

	t.Run("allowed role passes", func(t *testing.T) {
		app := authedApp(RequireRole("patient"))
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("other role rejected", func(t *testing.T) {
		app := authedApp(RequireRole("radiologist"))
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
