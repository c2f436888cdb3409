//go:build unit

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"netcard-manager/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	l := newLogger(cfg, &buf)

	r := gin.New()
	r.Use(l.LoggingMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		c.Set(ctxClaimsKey, map[string]any{"user_id": "u-1", "role": "admin"})
		c.String(http.StatusOK, GetRequestID(c))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	t.Run("propagates the request id and logs the session", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(requestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Body.String())
		assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))

		out := buf.String()
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, "request_id=req-123")
		assert.Contains(t, out, "user_id=u-1")
		assert.Contains(t, out, "role=admin")
		assert.NotContains(t, out, "Request started")
	})

	t.Run("generates a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Len(t, rec.Header().Get(requestIDHeader), 36)
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Contains(t, buf.String(), "level=WARN")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARN").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}
