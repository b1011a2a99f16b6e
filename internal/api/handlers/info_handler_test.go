// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"net/http"
	"servicehub/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	testInfo := models.Info{
		ServiceName: "servicehub",
		Version:     "v1.2.3-test",
		UptimeSince: time.Now().UTC().Truncate(time.Second),
		Backend:     "memory",
	}

	h, _, info := newTestHandlers()
	info.On("GetInfo").Return(testInfo)

	rr := serve(h.GetInfo, "/api/info", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.Info
	decodeBody(t, rr, &response)
	assert.Equal(t, testInfo, response)
}

func TestHealthCheck(t *testing.T) {
	h, _, _ := newTestHandlers()
	rr := serve(h.HealthCheck, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK\n", rr.Body.String())
}
