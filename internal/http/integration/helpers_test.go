package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/staffportal/internal/config"
	"github.com/geocoder89/staffportal/internal/domain/user"
	apphttp "github.com/geocoder89/staffportal/internal/http"
	"github.com/geocoder89/staffportal/internal/observability"
	"github.com/geocoder89/staffportal/internal/repo/memory"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@portal.com"
	adminPassword = "adminpassword"
)

func testConfig() config.Config {
	return config.Config{
		Env:                "test",
		Host:               "127.0.0.1",
		Port:               0,
		ServiceName:        "staffportal-test",
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
		SeedAdmin: config.SeedAdmin{
			Email:     adminEmail,
			Password:  adminPassword,
			FirstName: "Admin",
			LastName:  "User",
		},
	}
}

type testApp struct {
	router http.Handler
	store  *memory.Store
	reg    *prometheus.Registry
}

// newTestApp builds a router over a fresh store holding only the seeded admin.
func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	store := memory.NewStore(prom)
	require.NoError(t, memory.EnsureAdminUser(context.Background(), store.Users, cfg.SeedAdmin))

	return &testApp{
		router: apphttp.NewRouter(logger, cfg, store, prom, reg),
		store:  store,
		reg:    reg,
	}
}

func (a *testApp) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))

	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	return w
}

type messageBody struct {
	Message   string     `json:"message"`
	Code      string     `json:"code"`
	RequestID string     `json:"requestId"`
	User      *user.User `json:"user"`
	Locked    *bool      `json:"locked"`
}

func mustReadJSON[T any](t *testing.T, w *httptest.ResponseRecorder, out *T) {
	t.Helper()

	err := json.Unmarshal(w.Body.Bytes(), out)
	require.NoErrorf(t, err, "body=%s", w.Body.String())
}

func readMessage(t *testing.T, w *httptest.ResponseRecorder) messageBody {
	t.Helper()

	var body messageBody
	mustReadJSON(t, w, &body)

	return body
}

func listUsers(t *testing.T, a *testApp) []user.User {
	t.Helper()

	w := a.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []user.User
	mustReadJSON(t, w, &users)

	return users
}

func createBody(email string) string {
	return `{
		"firstName": "Jane",
		"lastName": "Smith",
		"email": "` + email + `",
		"password": "password123",
		"details": {
			"designation": "Software Engineer",
			"phone": "555-0100",
			"altPhone": "",
			"address": "1 Main St",
			"assets": {
				"assetType": "Laptop",
				"serialNumber": "SN-001",
				"cpu": "i7",
				"ram": "16GB",
				"networkIp": "10.0.0.5",
				"monitors": "2",
				"keyboard": true,
				"mouse": false
			}
		}
	}`
}
