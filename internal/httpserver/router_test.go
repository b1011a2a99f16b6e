package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"servicehub/internal/api/handlers"
	"servicehub/internal/config"
	"servicehub/internal/metrics"
	"servicehub/internal/models"
	"servicehub/internal/repository"
	"servicehub/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	repo := repository.NewInMemoryRepository([]models.Service{
		{ID: 1, Name: "Locate Us", Description: "Awesomeness is HERE!", Versions: 3},
		{ID: 2, Name: "Contact Us", Description: "How can I find you?!", Versions: 2},
	})
	m := metrics.New()
	info := services.NewInfoService("test", time.Now(), config.BackendMemory)
	h := handlers.NewHandlers(repository.Share(repo), info, m)
	return SetupRouter(h, m, config.Defaults()), m
}

func do(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"List", http.MethodGet, "/services", http.StatusOK},
		{"Get", http.MethodGet, "/service/2", http.StatusOK},
		{"Missing", http.MethodGet, "/service/3", http.StatusNotFound},
		{"Bad ID", http.MethodGet, "/service/abc", http.StatusBadRequest},
		{"Out Of Range ID", http.MethodGet, "/service/4294967296", http.StatusBadRequest},
		{"Health", http.MethodGet, "/health", http.StatusOK},
		{"Info", http.MethodGet, "/api/info", http.StatusOK},
		{"Metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"Unknown Route", http.MethodGet, "/nope", http.StatusNotFound},
		{"Wrong Method", http.MethodPost, "/services", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, tt.method, tt.target)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestGetServiceThroughRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/service/1")
	require.Equal(t, http.StatusOK, rr.Code)

	var svc models.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &svc))
	assert.Equal(t, models.Service{ID: 1, Name: "Locate Us", Description: "Awesomeness is HERE!", Versions: 3}, svc)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := do(t, router, http.MethodGet, "/nope")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Route not found."}`, rr.Body.String())
}

func TestRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("Generated", func(t *testing.T) {
		rr := do(t, router, http.MethodGet, "/health")
		_, err := ulid.Parse(rr.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "upstream-id")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, "upstream-id", rr.Header().Get(RequestIDHeader))
	})
}

func TestRequestMetricsUseRouteTemplate(t *testing.T) {
	router, m := newTestRouter(t)

	do(t, router, http.MethodGet, "/service/1")
	do(t, router, http.MethodGet, "/service/2")
	do(t, router, http.MethodGet, "/service/9")

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))

	rr := do(t, router, http.MethodGet, "/metrics")
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `route="/service/{id}"`))
	assert.True(t, strings.Contains(body, `status="404"`))
	assert.False(t, strings.Contains(body, `route="/service/1"`))
}
