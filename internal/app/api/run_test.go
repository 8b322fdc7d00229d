package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	encyclopediaserver "github.com/Apurer/pet-encyclopedia/go"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewHandlerServesHealthz(t *testing.T) {
	handler := NewHandler(Config{CORSAllowedOrigins: []string{"*"}}, encyclopediaserver.ApiHandleFunctions{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandlerAnswersCORSPreflight(t *testing.T) {
	handler := NewHandler(Config{CORSAllowedOrigins: []string{"https://web.example"}}, encyclopediaserver.ApiHandleFunctions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/gallery/videos", nil)
	req.Header.Set("Origin", "https://web.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	assert.Equal(t, "https://web.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandlerRejectsUnknownOrigin(t *testing.T) {
	handler := NewHandler(Config{CORSAllowedOrigins: []string{"https://web.example"}}, encyclopediaserver.ApiHandleFunctions{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandlerAllowsCrossOriginCancel(t *testing.T) {
	handler := NewHandler(Config{CORSAllowedOrigins: []string{"https://web.example"}}, encyclopediaserver.ApiHandleFunctions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/gallery/videos/job-1", nil)
	req.Header.Set("Origin", "https://web.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	assert.Equal(t, "https://web.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}
