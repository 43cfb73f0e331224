package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

const traceparentHeader = "traceparent"

// traceContext is a parsed W3C traceparent header:
// {version}-{trace-id}-{parent-id}-{trace-flags}.
type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// parseTraceparent parses a version 00 style traceparent. Version ff and
// all-zero trace or span IDs are invalid.
func parseTraceparent(header string) (traceContext, bool) {
	parts := strings.Split(strings.TrimSpace(header), "-")
	if len(parts) != 4 {
		return traceContext{}, false
	}
	version, traceID, spanID, flags := parts[0], parts[1], parts[2], parts[3]
	if !isHex(version, 2) || strings.EqualFold(version, "ff") ||
		!isHex(traceID, 32) || !isHex(spanID, 16) || !isHex(flags, 2) {
		return traceContext{}, false
	}
	if allZero(traceID) || allZero(spanID) {
		return traceContext{}, false
	}
	return traceContext{
		TraceID: strings.ToLower(traceID),
		SpanID:  strings.ToLower(spanID),
		Sampled: hexNibble(flags[1])&1 == 1,
	}, true
}

// Resource returns the Cloud Trace resource name for projectID.
func (tc traceContext) Resource(projectID string) string {
	return "projects/" + projectID + "/traces/" + tc.TraceID
}

func (tc traceContext) attrs(projectID string) []slog.Attr {
	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", tc.Resource(projectID)),
		slog.String("logging.googleapis.com/spanId", tc.SpanID),
		slog.Bool("logging.googleapis.com/trace_sampled", tc.Sampled),
	}
}

func isHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexNibble(s[i]) > 15 {
			return false
		}
	}
	return true
}

func hexNibble(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0xff
}

func allZero(s string) bool {
	return strings.Trim(s, "0") == ""
}

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// projectID resolves the GCP project from the usual environment variables.
func projectID() string {
	projectIDOnce.Do(func() {
		for _, key := range []string{
			"FIREBASE_PROJECT_ID",
			"GOOGLE_CLOUD_PROJECT",
			"GCP_PROJECT",
			"GCLOUD_PROJECT",
			"PROJECT_ID",
		} {
			if v := os.Getenv(key); v != "" {
				cachedProjectID = v
				return
			}
		}
	})
	return cachedProjectID
}
