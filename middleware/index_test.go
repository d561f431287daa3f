package middleware

import (
	"net/http/httptest"
	"restaurant_pos/constants"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"accountId": float64(1),
		"username":  "mozo1",
		"role":      role,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", Protected(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", Protected(), RequireRole(constants.ROLE_ADMIN), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestProtectedMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProtectedBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, constants.ROLE_MESERO))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestProtectedCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Cookie", "access_token="+signToken(t, constants.ROLE_MESERO))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestProtectedInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProtectedWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-different-secret")
	app := testApp()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"accountId": float64(1),
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireRoleAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, constants.ROLE_ADMIN))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRequireRoleRejectsWaiter(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, constants.ROLE_MESERO))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
