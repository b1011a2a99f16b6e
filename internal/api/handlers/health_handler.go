// internal/api/handlers/health_handler.go
package handlers

import (
	"fmt"
	"net/http"
)

// HealthCheck is a simple public endpoint to confirm the server is running.
// @Summary Health check
// @Description Returns OK when the server is running.
// @Tags Info
// @Produce  plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
