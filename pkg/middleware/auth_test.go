package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"ayurrag/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProtectedApp(t *testing.T, jwtManager *auth.JWTManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(jwtManager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, time.Hour)
	app := newProtectedApp(t, jwtManager)

	token, err := jwtManager.GenerateToken("user-1", "vaidya", "vaidya@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, time.Hour)
	app := newProtectedApp(t, jwtManager)

	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, time.Hour)
	app := newProtectedApp(t, jwtManager)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
