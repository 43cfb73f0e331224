package logging

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
)

// RequestIDKey is the Echo context key under which the request ID middleware
// stores the current request ID.
const RequestIDKey = "request_id"

// RequestLogger returns Echo middleware that puts a request-scoped logger
// carrying Cloud Trace metadata and the request ID into the request context.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			req := c.Request()
			reqID, _ := c.Get(RequestIDKey).(string)
			project := projectID()

			var attrs []slog.Attr
			traceID := reqID
			if tc, ok := parseTraceparent(req.Header.Get(traceparentHeader)); ok && project != "" {
				attrs = tc.attrs(project)
				traceID = tc.Resource(project)
			}
			if reqID != "" {
				attrs = append(attrs, slog.String("requestId", reqID))
			}

			ctx := WithLogger(req.Context(), Logger())
			ctx = WithAttrs(ctx, attrs...)
			ctx = withTraceID(ctx, traceID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// AccessLogger returns Echo middleware that logs one summary per request.
// Server errors log at ERROR and client errors at WARNING.
func AccessLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			var status, size int
			if resp, unwrapErr := echo.UnwrapResponse(c.Response()); unwrapErr == nil {
				status, size = resp.Status, int(resp.Size)
				if !resp.Committed && err != nil {
					status = statusOf(err)
				}
			}

			lvl := slog.LevelInfo
			switch {
			case status >= 500:
				lvl = slog.LevelError
			case status >= 400:
				lvl = slog.LevelWarn
			}

			ctx := c.Request().Context()
			LoggerFromContext(ctx).LogAttrs(ctx, lvl, "request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("route", c.Path()),
				slog.Int("status", status),
				slog.Int("bytes", size),
				slog.Duration("duration", time.Since(start)),
			)
			return err
		}
	}
}

// statusOf reports the status the error handler will write for err.
func statusOf(err error) int {
	var sc echo.HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
