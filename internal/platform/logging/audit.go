package logging

import (
	"context"
	"log/slog"
)

// AuditEvent describes a security-relevant state change.
type AuditEvent struct {
	Action       string
	UserID       string
	ResourceType string
	ResourceID   string
	Result       string
	Details      map[string]any
}

func (ev AuditEvent) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("audit.action", ev.Action),
		slog.String("audit.user_id", ev.UserID),
		slog.String("audit.resource_type", ev.ResourceType),
		slog.String("audit.resource_id", ev.ResourceID),
		slog.String("audit.result", ev.Result),
	}
	if len(ev.Details) > 0 {
		attrs = append(attrs, slog.Any("audit.details", ev.Details))
	}
	return attrs
}

// LogAuditEvent writes ev at info severity through the request logger.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "audit event", ev.attrs()...)
}
