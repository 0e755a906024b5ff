package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantBody string
	}{
		{apperrors.ErrInvalidRegNo, http.StatusBadRequest, `{"success":false,"message":"Invalid registration number."}`},
		{apperrors.ErrStudentNotFound, http.StatusNotFound, `{"success":false,"message":"Student not found."}`},
		{fmt.Errorf("wrapped: %w", apperrors.ErrRegNoExists), http.StatusConflict, `{"success":false,"message":"Registration number already exists."}`},
		{apperrors.ErrResourceNotFound, http.StatusNotFound, `{"success":false,"message":"Not Found"}`},
		{errors.New("pq: connection refused at 10.0.0.3"), http.StatusInternalServerError, `{"success":false,"message":"Server error."}`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

		HandleAPIError(c, tt.err)

		assert.Equal(t, tt.wantCode, w.Code, tt.err.Error())
		assert.JSONEq(t, tt.wantBody, w.Body.String())
	}
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error."}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/api/stats", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/stats", nil)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "http://frontend.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFilesThenNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o644))

	router := gin.New()
	router.NoRoute(StaticFiles(dir), NotFound())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/css/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home")

	for _, path := range []string{"/css", "/missing.js", "/api/css/site.css", "/../css/site.css"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"success":false,"message":"Route not found."}`, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/css/site.css", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticFilesWithoutDirectory(t *testing.T) {
	router := gin.New()
	router.NoRoute(StaticFiles(""), NotFound())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
