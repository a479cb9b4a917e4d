package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func userClaims(isAdmin bool) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":  float64(7),
		"username": "ash",
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
}

func testApp(handler fiber.Handler, mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", mw, handler)
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestJWTMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	Init("test-secret")
	app := testApp(func(c *fiber.Ctx) error {
		if c.Locals("user_id").(uint64) != 7 {
			t.Error("user_id claim not injected")
		}
		if c.Locals("username").(string) != "ash" {
			t.Error("username claim not injected")
		}
		return c.SendString("ok")
	}, JWTMiddleware)

	resp := doGet(t, app, signToken(t, "test-secret", userClaims(false)))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 for a token signed with the configured secret", resp.StatusCode)
	}
}

func TestJWTMiddlewareRejectsOtherSecret(t *testing.T) {
	Init("test-secret")
	app := testApp(func(c *fiber.Ctx) error { return c.SendString("ok") }, JWTMiddleware)

	resp := doGet(t, app, signToken(t, "some-other-secret", userClaims(false)))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a token signed with another secret", resp.StatusCode)
	}
}

func TestJWTMiddlewareRejectsMissingClaims(t *testing.T) {
	Init("test-secret")
	app := testApp(func(c *fiber.Ctx) error { return c.SendString("ok") }, JWTMiddleware)

	claims := jwt.MapClaims{
		"username": "ash", // no user_id
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	resp := doGet(t, app, signToken(t, "test-secret", claims))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when user_id is missing", resp.StatusCode)
	}
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	Init("test-secret")
	app := testApp(func(c *fiber.Ctx) error { return c.SendString("ok") }, JWTMiddleware)

	claims := userClaims(false)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	resp := doGet(t, app, signToken(t, "test-secret", claims))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for an expired token", resp.StatusCode)
	}
}

func TestAdminMiddlewareRequiresAdminClaim(t *testing.T) {
	Init("test-secret")
	app := testApp(func(c *fiber.Ctx) error { return c.SendString("ok") }, JWTAdminMiddleware)

	resp := doGet(t, app, signToken(t, "test-secret", userClaims(false)))
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for a non-admin token", resp.StatusCode)
	}

	resp = doGet(t, app, signToken(t, "test-secret", userClaims(true)))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 for an admin token", resp.StatusCode)
	}
}
