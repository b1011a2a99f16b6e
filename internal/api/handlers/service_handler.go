// filepath: internal/api/handlers/service_handler.go
package handlers

import (
	"errors"
	"net/http"
	"servicehub/internal/logging"
	"servicehub/internal/shared"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// @Summary List services
// @Description Returns every service in the catalog.
// @Tags Services
// @Produce  json
// @Success 200 {array} models.Service
// @Failure 500 {object} ErrorResponse "Repository unavailable"
// @Router /services [get]
func (h *Handlers) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.Services(r.Context())
	if err != nil {
		h.serverFault(r, "services", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve services.")
		return
	}
	respondWithJSON(w, http.StatusOK, services)
}

// @Summary Get a service
// @Description Returns the service with the given id.
// @Tags Services
// @Produce  json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Repository unavailable"
// @Router /service/{id} [get]
func (h *Handlers) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := parseServiceID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.Repo.Service(r.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrMissing) {
			respondWithError(w, http.StatusNotFound, "Service not found.")
			return
		}
		h.serverFault(r, "service", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve service.")
		return
	}
	respondWithJSON(w, http.StatusOK, svc)
}

// serverFault is the single place where repository failures are reported as
// operational faults. Missing records never get here.
func (h *Handlers) serverFault(r *http.Request, operation string, err error) {
	logging.Log.WithFields(logrus.Fields{
		"operation": operation,
		"path":      r.URL.Path,
		"error":     err.Error(),
	}).Error("repository server error")
	if h.Metrics != nil {
		h.Metrics.RepositoryFault(operation)
	}
}
