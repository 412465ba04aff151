package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/domain/entity"
	apphttp "github.com/jhoicas/manager-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/manager-api/pkg/jwt"
)

// Caso 1: sin header → 401 "no token" y el handler no se ejecuta.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/manager", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
	assert.Equal(t, "Not authorized, no token", body.Message)
}

// Caso 2: header con otro esquema → 401 "no token".
func TestAuthMiddleware_EsquemaNoBearer(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	for _, h := range []string{"Basic dXNlcjpwYXNz", "Bearer", "bearer" + token[len("Bearer"):]} {
		resp := env.do(t, http.MethodGet, "/api/manager", h, nil)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		assert.Equal(t, "Not authorized, no token", body.Message, h)
	}
}

// Caso 3: token malformado, con firma ajena, expirado o separado por más de un espacio → 401 "token failed".
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	admin, err := env.authUC.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	foreign, err := pkgjwt.Generate("otro-secret", admin.ID, time.Hour)
	require.NoError(t, err)
	expired, err := pkgjwt.Generate(testJWTSecret, admin.ID, -time.Hour)
	require.NoError(t, err)

	for name, h := range map[string]string{
		"malformado":    "Bearer no.es.jwt",
		"ajeno":         "Bearer " + foreign,
		"expirado":      "Bearer " + expired,
		"truncado":      token[:len(token)-4],
		"doble espacio": "Bearer  " + token[len("Bearer "):],
	} {
		resp := env.do(t, http.MethodGet, "/api/manager", h, nil)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		assert.Equal(t, "Not authorized, token failed", body.Message, name)
	}
}

// Caso 4: token válido de un id que no existe → 401 "admin not found".
func TestAuthMiddleware_AdminInexistente(t *testing.T) {
	env := newTestEnv(t)
	tok, err := pkgjwt.Generate(testJWTSecret, "00000000-0000-0000-0000-000000000001", time.Hour)
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/api/manager", "Bearer "+tok, nil)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, admin not found", body.Message)
}

// Caso 5: desactivar la cuenta invalida sus tokens existentes.
func TestAuthMiddleware_AdminInactivo(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")

	resp := env.do(t, http.MethodGet, "/api/manager", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := env.authUC.SetStatus(context.Background(), "a@x.com", false)
	require.NoError(t, err)

	resp = env.do(t, http.MethodGet, "/api/manager", token, nil)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ADMIN_INACTIVE", body.Code)
	assert.Equal(t, "Not authorized, admin is inactive", body.Message)
}

type stubResolver struct {
	admin *entity.Admin
	err   error
}

func (s stubResolver) Identify(context.Context, string) (*entity.Admin, error) { return s.admin, s.err }

func gateApp(resolver stubResolver) *fiber.App {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "gate-test", CORSOrigins: "*"}, zerolog.Nop())
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, resolver), func(c *fiber.Ctx) error {
		a := apphttp.GetAdmin(c)
		return c.JSON(fiber.Map{"email": a.Email, "hash": a.PasswordHash})
	})
	return app
}

// Caso 6: identidad válida → se adjunta al contexto sin el hash.
func TestAuthMiddleware_AdjuntaIdentidad(t *testing.T) {
	app := gateApp(stubResolver{admin: &entity.Admin{ID: "1", Email: "a@x.com", Status: true}})
	tok, err := pkgjwt.Generate(testJWTSecret, "1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", body["email"])
	assert.Empty(t, body["hash"])
}

// Caso 7: fallo del store al resolver la identidad → 500 genérico, sin detalles internos.
func TestAuthMiddleware_FalloDelStore(t *testing.T) {
	app := gateApp(stubResolver{err: errors.New("connection refused")})
	tok, err := pkgjwt.Generate(testJWTSecret, "1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Server error", body.Message)
}
