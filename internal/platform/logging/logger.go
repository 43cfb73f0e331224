package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/janisto/greeting-playground/internal/platform/timeutil"
)

// Extra severities above slog.LevelError, as understood by Cloud Logging.
const (
	LevelCritical  = slog.LevelError + 4
	LevelAlert     = slog.LevelError + 8
	LevelEmergency = slog.LevelError + 12
)

var severities = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARNING",
	slog.LevelError: "ERROR",
	LevelCritical:   "CRITICAL",
	LevelAlert:      "ALERT",
	LevelEmergency:  "EMERGENCY",
}

var (
	loggerOnce sync.Once
	baseLogger *slog.Logger
	level      slog.LevelVar
)

// utcHandler normalizes record times to UTC before they reach the JSON handler.
type utcHandler struct {
	slog.Handler
}

func (h utcHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Time = r.Time.UTC()
	return h.Handler.Handle(ctx, r)
}

func (h utcHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return utcHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h utcHandler) WithGroup(name string) slog.Handler {
	return utcHandler{Handler: h.Handler.WithGroup(name)}
}

// replaceAttr renames the built-in keys to the Cloud Logging structured payload names.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.String("timestamp", a.Value.Time().UTC().Format(timeutil.RFC3339Micros))
	case slog.LevelKey:
		lvl, _ := a.Value.Any().(slog.Level)
		name, ok := severities[lvl]
		if !ok {
			name = "DEFAULT"
		}
		return slog.String("severity", name)
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// ParseLevel maps LOG_LEVEL values onto slog levels. Unknown values yield INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, lvl slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: replaceAttr,
	})
	return slog.New(utcHandler{Handler: h})
}

// Logger returns the process-wide slog.Logger instance. Its minimum level
// comes from LOG_LEVEL and can be changed later with SetLevel.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		level.Set(ParseLevel(os.Getenv("LOG_LEVEL")))
		baseLogger = newLogger(os.Stdout, &level)
	})
	return baseLogger
}

// SetLevel changes the minimum level of the process-wide logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}
