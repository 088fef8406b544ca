package metadata

import (
	"context"
	"log/slog"
	"time"
)

/*
Metadata Collected
- Cache lookups (hit or miss, per cache)
- Fetch events: URL, HTTP status, duration, content fingerprint
- Cache file writes
- Classified errors

Metadata is write-only.
No component may read metadata to influence fetch or extraction decisions.
*/

type MetadataSink interface {
	RecordCacheLookup(cacheName string, key string, hit bool)
	RecordFetch(
		fetchUrl string,
		httpStatus int,
		duration time.Duration,
		contentHash string,
	)
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
}

// Recorder writes metadata events as structured log records.
type Recorder struct {
	logger *slog.Logger
}

func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger,
	}
}

func (r *Recorder) RecordCacheLookup(cacheName string, key string, hit bool) {
	if hit {
		r.logger.Info("Using cache", "cache", cacheName, "key", key)
		return
	}
	r.logger.Info("Fetching", "cache", cacheName, "key", key)
}

func (r *Recorder) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentHash string,
) {
	r.logger.Debug("fetch",
		"url", fetchUrl,
		"status", httpStatus,
		"duration", duration,
		"content_hash", contentHash,
	)
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	level := slog.LevelError
	if cause == CauseCacheUnavailable {
		level = slog.LevelWarn
	}
	args := []any{
		"package", packageName,
		"action", action,
		"cause", cause.String(),
		"details", details,
		"observed_at", observedAt,
	}
	r.logger.Log(context.Background(), level, "error recorded", append(args, attrArgs(attrs)...)...)
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	args := []any{"kind", string(kind), "path", path}
	r.logger.Debug("artifact written", append(args, attrArgs(attrs)...)...)
}

func attrArgs(attrs []Attribute) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, slog.String(string(attr.Key), attr.Value))
	}
	return args
}

// NoopSink, struct that implements MetadataSink but does nothing.
// Tests can decide whether to inject a Recorder or NoopSink.
type NoopSink struct{}

func (n *NoopSink) RecordCacheLookup(cacheName string, key string, hit bool) {}

func (n *NoopSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentHash string,
) {
}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {}
