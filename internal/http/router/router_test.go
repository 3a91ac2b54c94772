package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanLB1405/records-api/internal/config"
	"github.com/IvanLB1405/records-api/internal/storage/sqlite"
	"github.com/IvanLB1405/records-api/internal/types"
	"github.com/IvanLB1405/records-api/internal/utils/response"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store, err := sqlite.New(&config.Config{StoragePath: filepath.Join(t.TempDir(), "records.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestAccounts_DepositWithdrawScenario(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/accounts", `{"owner":"Ivan"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(1), decode[map[string]int64](t, w)["id"])

	w = do(t, h, http.MethodPost, "/api/accounts/1/deposit", `{"amount":100}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[types.AccountOutcome](t, w)
	assert.Equal(t, int64(100), out.Account.Balance)
	assert.Equal(t, "applied", out.Outcome.Status)
	assert.Equal(t, "new balance: 100", out.Outcome.Notice)

	w = do(t, h, http.MethodPost, "/api/accounts/1/withdraw", `{"amount":100}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(0), decode[types.AccountOutcome](t, w).Account.Balance)

	w = do(t, h, http.MethodPost, "/api/accounts/1/withdraw", `{"amount":10}`)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	out = decode[types.AccountOutcome](t, w)
	assert.Equal(t, "rejected", out.Outcome.Status)
	assert.Equal(t, "insufficient funds", out.Outcome.Reason)
	assert.Equal(t, int64(0), out.Account.Balance)

	w = do(t, h, http.MethodGet, "/api/accounts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), decode[types.Account](t, w).Balance)
}

func TestAccounts_DepositOverflowIsRejected(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/accounts", `{"owner":"Ivan","balance":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/accounts/1/deposit", `{"amount":9223372036854775807}`)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	out := decode[types.AccountOutcome](t, w)
	assert.Equal(t, "rejected", out.Outcome.Status)
	assert.Equal(t, "value would overflow", out.Outcome.Reason)
	assert.Equal(t, "balance", out.Outcome.Label)
	assert.Equal(t, int64(1), out.Account.Balance)

	w = do(t, h, http.MethodGet, "/api/accounts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[types.Account](t, w).Balance)
}

func TestAccounts_BadRequests(t *testing.T) {
	h := setupTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		code    int
		wantErr string
	}{
		{"empty body", http.MethodPost, "/api/accounts", "", http.StatusBadRequest, "request body is empty"},
		{"malformed json", http.MethodPost, "/api/accounts", `{"owner":`, http.StatusBadRequest, ""},
		{"missing owner", http.MethodPost, "/api/accounts", `{"balance":5}`, http.StatusBadRequest, "field Owner is required"},
		{"negative balance", http.MethodPost, "/api/accounts", `{"owner":"Ivan","balance":-1}`, http.StatusBadRequest, "field Balance must be >= 0"},
		{"non-integer id", http.MethodGet, "/api/accounts/abc", "", http.StatusBadRequest, "invalid id: must be an integer"},
		{"unknown id", http.MethodGet, "/api/accounts/42", "", http.StatusNotFound, "not found"},
		{"zero amount", http.MethodPost, "/api/accounts/1/deposit", `{"amount":0}`, http.StatusBadRequest, "field Amount must be > 0"},
		{"deposit unknown", http.MethodPost, "/api/accounts/42/deposit", `{"amount":1}`, http.StatusNotFound, "not found"},
		{"delete unknown", http.MethodDelete, "/api/accounts/42", "", http.StatusNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())

			resp := decode[response.Response](t, w)
			assert.Equal(t, response.StatusError, resp.Status)
			if tt.wantErr != "" {
				assert.Contains(t, resp.Error, tt.wantErr)
			}
		})
	}
}

func TestAccounts_ListAndDelete(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodGet, "/api/accounts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	do(t, h, http.MethodPost, "/api/accounts", `{"owner":"Ivan","balance":5}`)
	do(t, h, http.MethodPost, "/api/accounts", `{"owner":"Barbara"}`)

	w = do(t, h, http.MethodGet, "/api/accounts", "")
	accounts := decode[[]types.Account](t, w)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(5), accounts[0].Balance)

	w = do(t, h, http.MethodDelete, "/api/accounts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "deleted", decode[map[string]string](t, w)["status"])

	w = do(t, h, http.MethodGet, "/api/accounts/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCars_BrakeWhenStopped(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/cars", `{"brand":"Renault","model":"Clio","year":2020}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/cars/1/accelerate", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(10), decode[types.CarOutcome](t, w).Car.Speed)

	w = do(t, h, http.MethodPost, "/api/cars/1/brake", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/cars/1/brake", "")
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	out := decode[types.CarOutcome](t, w)
	assert.Equal(t, "already stopped", out.Outcome.Reason)
	assert.Equal(t, int64(0), out.Car.Speed)

	w = do(t, h, http.MethodGet, "/api/cars", "")
	cars := decode[[]types.Car](t, w)
	require.Len(t, cars, 1)
	assert.Equal(t, "Clio", cars[0].Model)

	w = do(t, h, http.MethodPost, "/api/cars", `{"brand":"Renault","model":"Clio"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodDelete, "/api/cars/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodGet, "/api/cars/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudents_Average(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/students", `{"name":"Ivan","surname":"Fernandez"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/students/1/average", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Equal(t, "student has no grades", decode[response.Response](t, w).Error)

	w = do(t, h, http.MethodPut, "/api/students/1/grades", `{"grades":[1,2,3,4,5,6,7,8,9]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	student := decode[types.Student](t, w)
	require.NotNil(t, student.Average)
	assert.Equal(t, 5.0, *student.Average)

	w = do(t, h, http.MethodGet, "/api/students/1/average", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5.0, decode[map[string]float64](t, w)["average"])

	w = do(t, h, http.MethodPut, "/api/students/1/grades", `{"grades":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = do(t, h, http.MethodPut, "/api/students/9/grades", `{"grades":[1]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/students", "")
	require.Len(t, decode[[]types.Student](t, w), 1)

	w = do(t, h, http.MethodDelete, "/api/students/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStudents_HugeGradesStayReadable(t *testing.T) {
	h := setupTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/students", `{"name":"Ivan","surname":"Fernandez","grades":[1e308,1e308]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, path := range []string{"/api/students/1", "/api/students/1/average", "/api/students"} {
		w = do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		require.NotEmpty(t, w.Body.String(), path)
	}

	w = do(t, h, http.MethodGet, "/api/students/1/average", "")
	assert.InDelta(t, 1e308, decode[map[string]float64](t, w)["average"], 1e293)
}
