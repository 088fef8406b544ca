package storage

import (
	"fmt"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/failure"
)

type StorageErrorCause string

const (
	ErrCauseEncodeFailure StorageErrorCause = "encode failed"
	ErrCauseWriteFailure  StorageErrorCause = "write failed"
	ErrCauseDiskFull      StorageErrorCause = "disk is full"
)

type StorageError struct {
	Message   string
	Retryable bool
	Cause     StorageErrorCause
	Path      string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %s", e.Cause, e.Message)
}

func (e *StorageError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapStorageErrorToMetadataCause maps storage-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapStorageErrorToMetadataCause(err *StorageError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseDiskFull, ErrCauseWriteFailure, ErrCauseEncodeFailure:
		return metadata.CauseStorageFailure
	default:
		return metadata.CauseUnknown
	}
}
