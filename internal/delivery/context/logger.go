package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerFrom returns the request logger carried by ctx, or nil.
func LoggerFrom(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger carried by ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFrom(ctx); logger != nil {
		return logger
	}

	return fallback
}

// EnrichLogger adds attrs to the request logger of c. It is a no-op when
// the request carries no logger.
func EnrichLogger(c echo.Context, attrs ...any) {
	ctx := c.Request().Context()
	logger := LoggerFrom(ctx)
	if logger == nil {
		return
	}
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger.With(attrs...))))
}
