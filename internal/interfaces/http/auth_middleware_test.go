package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ihttp "github.com/jhoicas/ids-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/ids-inventory-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// newProtectedApp monta una app mínima con el middleware de auth y una ruta
// que refleja la identidad extraída a Locals.
func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", ihttp.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  ihttp.GetUserID(c),
			"username": ihttp.GetUsername(c),
		})
	})
	return app
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer token-falso")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate("otro-secreto", 42, "ana", "ids-inventory", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoExponeIdentidad(t *testing.T) {
	app := fiber.New()
	var gotID int64
	var gotName string
	app.Get("/protegida", ihttp.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		gotID = ihttp.GetUserID(c)
		gotName = ihttp.GetUsername(c)
		return c.SendStatus(fiber.StatusOK)
	})

	token, err := jwt.Generate(testSecret, 42, "ana", "ids-inventory", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(42), gotID, "el actor sale del token, no del cuerpo")
	assert.Equal(t, "ana", gotName)
}
