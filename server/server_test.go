package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative_prompt_service/generator"
	"creative_prompt_service/logger"
	"creative_prompt_service/store"
)

func newTestServer(t *testing.T) (*Server, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	mem := store.NewMemory()
	svc := generator.NewService(nil, generator.NewRotation(mem, log), generator.NewSanitizer(log), log)
	srv, err := New(svc, mem, log)
	require.NoError(t, err)
	return srv, mem
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	routes := srv.Routes()

	w := doJSON(t, routes, http.MethodPost, "/api/generate/writing", map[string]any{
		"genres": []string{"Fantasy"},
		"userId": "u1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res generator.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.Title)
	assert.NotEmpty(t, res.Body)
	assert.Equal(t, "template", res.Metadata["source"])
}

func TestGenerateRejectsEmptySelection(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv.Routes(), http.MethodPost, "/api/generate/writing", map[string]any{
		"genres": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv.Routes(), http.MethodPost, "/api/generate/pottery", map[string]any{
		"categories": []string{"Fantasy"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHTMLFormat(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv.Routes(), http.MethodPost, "/api/generate/sound?format=html", map[string]any{
		"categories": []string{"Ambient"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>")
}

func TestFeedbackEndpoint(t *testing.T) {
	srv, mem := newTestServer(t)
	w := doJSON(t, srv.Routes(), http.MethodPost, "/api/feedback", map[string]any{
		"promptId": "p1",
		"rating":   5,
		"userId":   "u1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := mem.Get(context.Background(), "feedback:p1:u1")
	require.NoError(t, err)
	var record feedbackRecord
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, 5, record.Rating)
	assert.NotEmpty(t, record.Timestamp)
}

func TestFeedbackRequiresPromptID(t *testing.T) {
	srv, _ := newTestServer(t)
	w := doJSON(t, srv.Routes(), http.MethodPost, "/api/feedback", map[string]any{"rating": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv, mem := newTestServer(t)
	routes := srv.Routes()

	w := doJSON(t, routes, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	mem.FailGets = true
	w = doJSON(t, routes, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
