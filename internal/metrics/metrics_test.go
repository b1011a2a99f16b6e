package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryFault(t *testing.T) {
	m := New()
	m.RepositoryFault("services")
	m.RepositoryFault("services")
	m.RepositoryFault("service")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RepositoryFaults.WithLabelValues("services")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepositoryFaults.WithLabelValues("service")))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/service/{id}", http.MethodGet, http.StatusNotFound, 5*time.Millisecond)
	m.ObserveRequest("/services", http.MethodGet, http.StatusOK, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestInstancesDoNotShareRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RepositoryFault("service")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `servicehub_repository_server_errors_total{operation="service"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
