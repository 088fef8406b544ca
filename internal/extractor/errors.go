package extractor

import (
	"fmt"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/failure"
)

type ExtractionErrorCause string

const (
	ErrCauseNotHTML           ExtractionErrorCause = "not html"
	ErrCauseNoStateNavigation ExtractionErrorCause = "no state navigation"
	ErrCauseNoParkListing     ExtractionErrorCause = "no park listing"
	ErrCauseMalformedListing  ExtractionErrorCause = "malformed park listing"
	ErrCauseBadLink           ExtractionErrorCause = "unresolvable link"
)

// ExtractionError reports a page whose structure does not match what the
// extractor depends on. It is never raised for a missing detail field.
type ExtractionError struct {
	Message string
	Cause   ExtractionErrorCause
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s: %s", e.Cause, e.Message)
}

// Severity is always fatal: re-fetching the same page yields the same markup.
func (e *ExtractionError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapExtractionErrorToMetadataCause maps extractor-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapExtractionErrorToMetadataCause(err *ExtractionError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNotHTML, ErrCauseNoStateNavigation, ErrCauseNoParkListing,
		ErrCauseMalformedListing, ErrCauseBadLink:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
