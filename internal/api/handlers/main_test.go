// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"servicehub/internal/metrics"
	repomocks "servicehub/internal/repository/mocks"
	"servicehub/internal/services/mocks"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() (*Handlers, *repomocks.MockRepository, *mocks.MockInfoService) {
	repo := new(repomocks.MockRepository)
	info := new(mocks.MockInfoService)
	return NewHandlers(repo, info, metrics.New()), repo, info
}

// serve runs handler for a request carrying the given mux path variables.
func serve(handler http.HandlerFunc, target string, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}
