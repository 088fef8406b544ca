package fetcher

import (
	"fmt"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/failure"
)

type FetchErrorCause string

const (
	ErrCauseNetworkFailure        FetchErrorCause = "network issues"
	ErrCauseCancelled             FetchErrorCause = "request cancelled"
	ErrCauseReadResponseBodyError FetchErrorCause = "failed to read response body"
	ErrCauseRequestClientError    FetchErrorCause = "4xx"
	ErrCauseRequest5xx            FetchErrorCause = "5xx"
	ErrCauseInvalidJSON           FetchErrorCause = "invalid json body"
)

// FetchError is returned for every failed request. No fetch failure is
// retried, so every FetchError is fatal to the operation that issued it.
type FetchError struct {
	Message    string
	Cause      FetchErrorCause
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetcher error: %s: %s", e.Cause, e.Message)
}

func (e *FetchError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapFetchErrorToMetadataCause maps fetcher-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapFetchErrorToMetadataCause(err *FetchError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNetworkFailure, ErrCauseCancelled, ErrCauseReadResponseBodyError,
		ErrCauseRequestClientError, ErrCauseRequest5xx:
		return metadata.CauseNetworkFailure
	case ErrCauseInvalidJSON:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}

func statusError(fetchUrl string, statusCode int) *FetchError {
	cause := ErrCauseRequestClientError
	if statusCode >= 500 {
		cause = ErrCauseRequest5xx
	}
	return &FetchError{
		Message:    fmt.Sprintf("unexpected status %d", statusCode),
		Cause:      cause,
		StatusCode: statusCode,
		URL:        fetchUrl,
	}
}
