package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"rso-assistant-be/internal/bootstrap"
	"rso-assistant-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "test.log"),
			CorsAllowedOrigins: "*",
			Version:            "test",
		},
		Database: config.DatabaseConfig{
			PassageTable: "banking_handbook",
			MatchRPC:     "match_banking_handbook",
		},
		Embed: config.EmbedConfig{
			BaseURL:   "http://localhost:11434",
			Model:     "intfloat/multilingual-e5-base",
			Dimension: 768,
		},
		Gemini: config.GeminiConfig{
			Model:           "gemini-2.0-flash",
			Temperature:     0.2,
			MaxOutputTokens: 1024,
		},
		Retrieve: config.RetrieveConfig{
			TopK:             5,
			RetrievalTimeout: time.Second,
			ModelTimeout:     time.Second,
		},
		Ingest: config.IngestConfig{DataDir: t.TempDir()},
	}

	return New(cfg, bootstrap.NewContainer(cfg))
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.GetApp().Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "gemini-2.0-flash", body["model"])

	resp = doJSON(t, srv, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "intfloat/multilingual-e5-base", body["embed_model"])
}

func TestChat_MissingFieldsRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/chat/v1", map[string]any{
		"session_id": "s1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/chat/v1", map[string]any{
		"user_message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChat_WhitespaceMessageRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/chat/v1", map[string]any{
		"user_message": "   ",
		"session_id":   "s1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestChat_WithoutStoreIsInternalError(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/chat/v1", map[string]any{
		"user_message": "when are budgets due",
		"session_id":   "s1",
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Error generating response.", body["message"])
}

func TestClubEndpoints_WithoutStore(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/api/club/v1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/api/club/v1/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
