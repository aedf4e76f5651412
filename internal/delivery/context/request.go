// Package context carries request-scoped values between the echo layer and
// the use cases: the request id and a logger already tagged with it.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"

	// HeaderXRequestID is read from and echoed back on every request.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores id on c and on the request's context.
func SetRequestID(c echo.Context, id string) {
	c.Set(string(keyRequestID), id)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), id)))
}

// RequestID returns the id stored by SetRequestID, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}
