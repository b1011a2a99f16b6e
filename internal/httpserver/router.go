package httpserver

import (
	"net/http"
	"servicehub/internal/api/handlers"
	"servicehub/internal/config"
	"servicehub/internal/metrics"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router with the catalog, operational and
// documentation endpoints.
func SetupRouter(h *handlers.Handlers, m *metrics.Metrics, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.Use(requestIDMiddleware)
	if cfg.Logging.AccessLog {
		r.Use(accessLogMiddleware)
	}
	if m != nil {
		r.Use(metricsMiddleware(m))
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}

	// Operational endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addServiceRoutes(r, h)

	return r
}

// addServiceRoutes configures the read-only catalog routes.
func addServiceRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/services", h.GetServices).Methods("GET")
	r.HandleFunc("/service/{id}", h.GetService).Methods("GET")
}
