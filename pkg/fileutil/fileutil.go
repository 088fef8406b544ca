package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rohmanhakim/park-finder/pkg/failure"
)

// EnsureDir check if a given directory plus the following path exist, then create one if not
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	fullDir := filepath.Join(targetPath...)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return &FileError{
			Message: fmt.Sprintf("%v", err),
			Cause:   ErrCausePathError,
		}
	}
	return nil
}

// WriteFileAtomic replaces path with data by writing a temp file next to it
// and renaming it over the target. Readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte) failure.ClassifiedError {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return classifyWriteError(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return classifyWriteError(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return classifyWriteError(err)
	}
	if err := tmp.Close(); err != nil {
		return classifyWriteError(err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return classifyWriteError(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &FileError{
			Message: fmt.Sprintf("%v", err),
			Cause:   ErrCauseRenameFailure,
		}
	}
	return nil
}

func classifyWriteError(err error) *FileError {
	if errors.Is(err, syscall.ENOSPC) {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: true,
			Cause:     ErrCauseDiskFull,
		}
	}
	return &FileError{
		Message: fmt.Sprintf("%v", err),
		Cause:   ErrCauseWriteFailure,
	}
}
