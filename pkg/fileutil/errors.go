package fileutil

import (
	"fmt"

	"github.com/rohmanhakim/park-finder/pkg/failure"
)

type FileErrorCause string

const (
	ErrCausePathError     FileErrorCause = "path error"
	ErrCauseWriteFailure  FileErrorCause = "write failed"
	ErrCauseRenameFailure FileErrorCause = "rename failed"
	ErrCauseDiskFull      FileErrorCause = "disk is full"
)

type FileError struct {
	Message   string
	Retryable bool
	Cause     FileErrorCause
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error: %s: %s", e.Cause, e.Message)
}

func (e *FileError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
