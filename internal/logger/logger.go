package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ProgramLevel = new(slog.LevelVar)

// SetupLogger installs a JSON slog logger writing to w as the default.
// A nil w means stdout.
func SetupLogger(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	ProgramLevel.Set(ParseLevel(level))

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ProgramLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// SetDebug lowers the level to debug when debug is true.
func SetDebug(debug bool) {
	if debug {
		ProgramLevel.Set(slog.LevelDebug)
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Middleware logs one line per request through logger.
func Middleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
