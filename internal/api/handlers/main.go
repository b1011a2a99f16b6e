// filepath: internal/api/handlers/main.go
package handlers

import (
	"servicehub/internal/metrics"
	"servicehub/internal/repository"
	"servicehub/internal/services"
)

// Handlers holds the shared dependencies of the API handlers.
type Handlers struct {
	Repo    repository.Repository
	Info    services.InfoService
	Metrics *metrics.Metrics
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(repo repository.Repository, info services.InfoService, m *metrics.Metrics) *Handlers {
	return &Handlers{
		Repo:    repo,
		Info:    info,
		Metrics: m,
	}
}
