package logging

import (
	"context"
	"log/slog"
	"os"
)

type (
	loggerKey  struct{}
	traceIDKey struct{}
)

// LoggerFromContext returns the request-scoped logger, or the process-wide
// logger when ctx carries none.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Logger()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithAttrs returns a copy of ctx whose logger always emits attrs.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithLogger(ctx, LoggerFromContext(ctx).With(args...))
}

// TraceIDFromContext returns the correlation identifier (trace resource or
// request ID), or "" when none was recorded.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

func withTraceID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey{}, id)
}

func LogDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func LogInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func LogWarn(ctx context.Context, msg string, attrs ...slog.Attr) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// LogError logs at error severity. A non-nil err is attached as "error".
func LogError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelError, msg, withError(attrs, err)...)
}

// LogFatal logs at emergency severity and exits the process with status 1.
func LogFatal(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	LoggerFromContext(ctx).LogAttrs(ctx, LevelEmergency, msg, withError(attrs, err)...)
	os.Exit(1)
}

func withError(attrs []slog.Attr, err error) []slog.Attr {
	if err == nil {
		return attrs
	}
	return append(attrs, slog.Any("error", err))
}
