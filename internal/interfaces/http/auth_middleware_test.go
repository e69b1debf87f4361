package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventasve/pedidos-api/internal/domain/entity"
	apphttp "github.com/ventasve/pedidos-api/internal/interfaces/http"
	pkgjwt "github.com/ventasve/pedidos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pedidos-api-test"
	testExpMin    = 60
)

// fakeUserRepo repositorio de usuarios en memoria para los tests del middleware.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Username] = u; return nil }
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}

// buildTestApp construye una aplicación Fiber mínima con el AuthMiddleware
// delante de un handler dummy que devuelve el username autenticado.
func buildTestApp() (*fiber.App, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"johndoe": {Username: "johndoe", HashedPassword: "x", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		"alice":   {Username: "alice", HashedPassword: "x", Disabled: true},
	}}
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"username": apphttp.GetUsername(c)})
		},
	)
	return app, repo
}

// tokenFor genera un JWT para el username indicado.
func tokenFor(t *testing.T, username string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Caso 1: usuario activo con token válido → HTTP 200 y username en locals.
func TestAuthMiddleware_UsuarioActivoAccede(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "johndoe"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "johndoe",
		"el handler debe ver el username extraído del token")
}

// Caso 2: usuario deshabilitado con token vigente → HTTP 400 INACTIVE_USER.
// El token en sí es válido; lo que bloquea es la bandera en base de datos.
func TestAuthMiddleware_UsuarioInactivoRetorna400(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "alice"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"usuario deshabilitado debe recibir 400, no 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INACTIVE_USER")
}

// Caso 3: token de un usuario que ya no existe → HTTP 401 UNKNOWN_USER.
func TestAuthMiddleware_UsuarioDesconocidoRetorna401(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, tokenFor(t, "ghost"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_USER")
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeaderRetorna401(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 6: header sin esquema Bearer → HTTP 401.
func TestAuthMiddleware_EsquemaIncorrectoRetorna401(t *testing.T) {
	app, _ := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
