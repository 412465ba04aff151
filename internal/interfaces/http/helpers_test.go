package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manager-api/internal/application/auth"
	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/application/manager"
	"github.com/jhoicas/manager-api/internal/infrastructure/memory"
	"github.com/jhoicas/manager-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/manager-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// testEnv aplicación completa sobre el store en memoria.
type testEnv struct {
	app    *fiber.App
	authUC *auth.AuthUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	admins := memory.NewAdminRepository()
	managers := memory.NewManagerRepository()
	authUC := auth.NewAuthUseCase(admins, auth.JWTConfig{Secret: testJWTSecret})

	app := apphttp.NewApp(apphttp.AppConfig{Name: "manager-api-test", CORSOrigins: "*"}, zerolog.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		ManagerUC: manager.NewManagerUseCase(managers),
		ExportUC:  manager.NewExportUseCase(managers, pdf.NewMarotoRosterGenerator("manager-api-test")),
		JWTSecret: testJWTSecret,
	})
	return &testEnv{app: app, authUC: authUC}
}

// register da de alta un admin y devuelve "Bearer <token>".
func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()
	out, err := e.authUC.Register(context.Background(), dto.RegisterRequest{
		Username: "admin", Email: email, Password: "p1", ConfirmPassword: "p1",
	})
	require.NoError(t, err)
	return "Bearer " + out.Token
}

// do lanza la petición con cuerpo JSON opcional y devuelve la respuesta.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
