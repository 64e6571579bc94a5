package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHealthServer() *HealthServer {
	return NewHealthServer(":0", slog.New(slog.DiscardHandler))
}

func decodeStatus(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp healthResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Status
}

func TestHandleLiveness(t *testing.T) {
	h := testHealthServer()

	rec := httptest.NewRecorder()
	h.handleLiveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeStatus(t, rec.Body))
}

func TestHandleReadiness_NotReadyByDefault(t *testing.T) {
	h := testHealthServer()

	rec := httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready", decodeStatus(t, rec.Body))
}

func TestHandleReadiness_Ready(t *testing.T) {
	h := testHealthServer()
	h.SetReady(true)

	rec := httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeStatus(t, rec.Body))
}

func TestHandleReadiness_ToggleBack(t *testing.T) {
	h := testHealthServer()
	h.SetReady(true)
	h.SetReady(false)

	rec := httptest.NewRecorder()
	h.handleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
