package logger_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kongnyuysido/portfolio/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("whatever"))
}

func TestSetDebug(t *testing.T) {
	logger.SetupLogger("info", &bytes.Buffer{})
	logger.SetDebug(false)
	assert.Equal(t, slog.LevelInfo, logger.ProgramLevel.Level())
	logger.SetDebug(true)
	assert.Equal(t, slog.LevelDebug, logger.ProgramLevel.Level())
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(logger.Middleware(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "pong") })

	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rw.Code)
	assert.Contains(t, buf.String(), "path=/ping")
	assert.Contains(t, buf.String(), "status=418")
}
