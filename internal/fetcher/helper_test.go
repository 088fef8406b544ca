package fetcher_test

import (
	"context"
	"time"

	"github.com/rohmanhakim/park-finder/internal/metadata"
)

// mockMetadataSink is a test double for metadata.MetadataSink
type mockMetadataSink struct {
	metadata.NoopSink
	fetchEvents []fetchEvent
	errorEvents []errorEvent
}

type fetchEvent struct {
	fetchUrl    string
	httpStatus  int
	contentHash string
}

type errorEvent struct {
	action string
	cause  metadata.ErrorCause
	attrs  []metadata.Attribute
}

func (m *mockMetadataSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentHash string,
) {
	m.fetchEvents = append(m.fetchEvents, fetchEvent{
		fetchUrl:    fetchUrl,
		httpStatus:  httpStatus,
		contentHash: contentHash,
	})
}

func (m *mockMetadataSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	m.errorEvents = append(m.errorEvents, errorEvent{
		action: action,
		cause:  cause,
		attrs:  attrs,
	})
}

// countingThrottle records how many times Wait was called and can be told
// to fail.
type countingThrottle struct {
	calls int
	err   error
}

func (c *countingThrottle) Wait(ctx context.Context) error {
	c.calls++
	return c.err
}
