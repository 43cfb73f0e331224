package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	applog "github.com/janisto/greeting-playground/internal/platform/logging"
)

const (
	HeaderXRequestID = "X-Request-ID"

	maxRequestIDLength = 128
)

// validRequestID accepts 1-128 bytes of printable ASCII, which keeps
// client-supplied IDs from injecting line breaks into logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// RequestID returns Echo middleware that reuses a valid incoming X-Request-ID
// or generates a UUIDv4, echoes it on the response, and stores it under
// logging.RequestIDKey for the request logger.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(HeaderXRequestID)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			c.Set(applog.RequestIDKey, id)
			c.Response().Header().Set(HeaderXRequestID, id)
			return next(c)
		}
	}
}
