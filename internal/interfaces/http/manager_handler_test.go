package http_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manager-api/internal/application/dto"
)

func managerBody(name, email string) map[string]any {
	return map[string]any{"name": name, "email": email, "salary": "50000", "designation": "Lead"}
}

func (e *testEnv) createManager(t *testing.T, token string, body map[string]any) dto.ManagerResponse {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/manager", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ManagerResponse](t, resp)
}

func seedHTTP(t *testing.T, env *testEnv, token string, n int) []dto.ManagerResponse {
	t.Helper()
	out := make([]dto.ManagerResponse, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, env.createManager(t, token, managerBody(fmt.Sprintf("Manager %02d", i), fmt.Sprintf("m%02d@corp.com", i))))
	}
	return out
}

func TestManager_CreateYBuscar(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	seedHTTP(t, env, token, 3)

	body := managerBody("Zoe Kowalski", "zoe@corp.com")
	body["phone"] = "555-0199"
	created := env.createManager(t, token, body)
	assert.True(t, created.Status)
	assert.Equal(t, "555-0199", created.Phone)

	resp := env.do(t, http.MethodGet, "/api/manager/search?q=KOWAL", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]dto.ManagerResponse](t, resp)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	resp = env.do(t, http.MethodGet, "/api/manager/search?q=nadie", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, "[]", string(raw))

	resp = env.do(t, http.MethodGet, "/api/manager/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please provide search query", decode[dto.ErrorResponse](t, resp).Message)
}

func TestManager_CreateErrores(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	env.createManager(t, token, managerBody("Ana", "ana@corp.com"))

	resp := env.do(t, http.MethodPost, "/api/manager", token, map[string]any{"name": "Sin email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please fill all required fields", decode[dto.ErrorResponse](t, resp).Message)

	resp = env.do(t, http.MethodPost, "/api/manager", token, managerBody("Otra Ana", "ana@corp.com"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Manager already exists with this email", decode[dto.ErrorResponse](t, resp).Message)
}

func TestManager_ListYPagination(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	seedHTTP(t, env, token, 25)

	resp := env.do(t, http.MethodGet, "/api/manager?page=2&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ManagerListResponse](t, resp)
	assert.Len(t, list.Managers, 10)
	assert.EqualValues(t, 25, list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 3, list.Pages)
	assert.Equal(t, "Manager 10", list.Managers[0].Name)

	// Sin parámetros: page=1, limit=10.
	resp = env.do(t, http.MethodGet, "/api/manager", token, nil)
	list = decode[dto.ManagerListResponse](t, resp)
	assert.Equal(t, 1, list.Page)
	assert.Len(t, list.Managers, 10)

	resp = env.do(t, http.MethodGet, "/api/manager/pagination?page=3&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.ManagerPageResponse](t, resp)
	assert.Len(t, page.Managers, 5)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 3, page.Pages)

	resp = env.do(t, http.MethodGet, "/api/manager/pagination?page=0&limit=10", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Page and limit must be positive numbers", decode[dto.ErrorResponse](t, resp).Message)

	resp = env.do(t, http.MethodGet, "/api/manager?page=-1&limit=0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decode[dto.ManagerListResponse](t, resp)
	assert.Equal(t, 1, list.Page)
	assert.Len(t, list.Managers, 10)
}

func TestManager_UpdateParcial(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	ms := seedHTTP(t, env, token, 2)

	resp := env.do(t, http.MethodPut, "/api/manager/"+ms[0].ID, token, map[string]any{"designation": "Director", "status": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ManagerResponse](t, resp)
	assert.Equal(t, "Director", updated.Designation)
	assert.False(t, updated.Status)
	assert.Equal(t, ms[0].Name, updated.Name)
	assert.Equal(t, ms[0].Email, updated.Email)

	resp = env.do(t, http.MethodPut, "/api/manager/"+ms[0].ID, token, map[string]any{"email": ms[1].Email})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already in use", decode[dto.ErrorResponse](t, resp).Message)

	resp = env.do(t, http.MethodPut, "/api/manager/no-existe", token, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Manager not found", decode[dto.ErrorResponse](t, resp).Message)
}

func TestManager_Delete(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	ms := seedHTTP(t, env, token, 1)

	resp := env.do(t, http.MethodDelete, "/api/manager/"+ms[0].ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Manager deleted successfully", decode[dto.MessageResponse](t, resp).Message)

	resp = env.do(t, http.MethodDelete, "/api/manager/"+ms[0].ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestManager_DeleteMultiple(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	ms := seedHTTP(t, env, token, 3)

	ids := []string{ms[0].ID, ms[1].ID, "ya-borrado"}
	resp := env.do(t, http.MethodPost, "/api/manager/delete-multiple", token, map[string]any{"ids": ids})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DeleteManyResponse](t, resp)
	assert.EqualValues(t, 2, out.DeletedCount)
	assert.Equal(t, "2 managers deleted successfully", out.Message)

	for _, body := range []map[string]any{{"ids": []string{}}, {}, {"ids": "no-es-array"}} {
		resp := env.do(t, http.MethodPost, "/api/manager/delete-multiple", token, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Please provide array of manager IDs", decode[dto.ErrorResponse](t, resp).Message)
	}

	resp = env.do(t, http.MethodGet, "/api/manager", token, nil)
	list := decode[dto.ManagerListResponse](t, resp)
	assert.EqualValues(t, 1, list.Total)
}

func TestManager_ExportPDF(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	seedHTTP(t, env, token, 3)

	resp := env.do(t, http.MethodGet, "/api/manager/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), `attachment; filename="managers_`))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestManager_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")

	req := httptest.NewRequest(http.MethodPost, "/api/manager", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRutaInexistente(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/nada", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestManager_PaginasExtremas(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")
	seedHTTP(t, env, token, 3)

	resp := env.do(t, http.MethodGet, "/api/manager?page=922337203685477582&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ManagerListResponse](t, resp)
	assert.Empty(t, list.Managers)
	assert.Equal(t, 1, list.Pages)

	resp = env.do(t, http.MethodGet, "/api/manager/pagination?page=1&limit=9223372036854775807", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.ManagerPageResponse](t, resp)
	assert.Len(t, page.Managers, 3)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, dto.MaxLimit, page.Limit)
}

func TestManager_SalarioNumerico(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@x.com")

	body := managerBody("Ana", "ana@corp.com")
	body["salary"] = 50000
	created := env.createManager(t, token, body)
	assert.Equal(t, "50000", created.Salary)

	resp := env.do(t, http.MethodPut, "/api/manager/"+created.ID, token, map[string]any{"salary": 61250.5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "61250.5", decode[dto.ManagerResponse](t, resp).Salary)

	body = managerBody("Bob", "bob@corp.com")
	body["salary"] = true
	resp = env.do(t, http.MethodPost, "/api/manager", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}
