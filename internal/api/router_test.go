package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leetdeck/internal/api/handler"
	"leetdeck/internal/app/service"
	"leetdeck/internal/app/worker"
	"leetdeck/internal/platform/cardsink"
	"leetdeck/internal/platform/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLLM struct{ llm.Client }

func newRouterForTest(t *testing.T) http.Handler {
	t.Helper()
	svc := service.NewSubmissionService(noopLLM{}, cardsink.NoopSink{})
	dispatcher := worker.NewDispatcher()
	return NewRouter(
		handler.NewSubmissionHandler(svc, dispatcher),
		handler.NewHealthHandler("leetdeck backend running"),
		handler.NewFrontendHandler(t.TempDir()),
	)
}

func TestRouter_Health(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "leetdeck backend running", resp["message"])
}

func TestRouter_UnknownAPIPathIsJSONNotFound(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Not found", resp["error"])
}

func TestRouter_NonAPIPathHitsFrontend(t *testing.T) {
	// Frontend dist is empty in this test, so the SPA fallback is the
	// fixed "not built" notice.
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "frontend not built", resp["error"])
}

func TestRouter_FramingAllowed(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "frame-ancestors *", rec.Header().Get("Content-Security-Policy"))
	assert.Empty(t, rec.Header().Get("X-Frame-Options"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_OpenAPISpecServed(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/data")
}
