package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/fileutil"
)

/*
Responsibilities
- Load a whole cache file into memory in one read
- Persist a whole cache value back to disk after every mutation

Characteristics
- One JSON document per file
- A missing or corrupt file is a fresh start, never an error
- Writes replace the file atomically, with no batching and no journal
*/

// FileStore persists a single JSON-encoded value of type T at path.
type FileStore[T any] struct {
	path         string
	kind         metadata.ArtifactKind
	metadataSink metadata.MetadataSink
}

func NewFileStore[T any](
	path string,
	kind metadata.ArtifactKind,
	metadataSink metadata.MetadataSink,
) *FileStore[T] {
	return &FileStore[T]{
		path:         path,
		kind:         kind,
		metadataSink: metadataSink,
	}
}

// Load returns the stored value, or the zero value of T when the file is
// absent, unreadable or not valid JSON.
func (s *FileStore[T]) Load() T {
	var zero T

	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.recordUnavailable(err)
		}
		return zero
	}

	var value T
	if err := json.Unmarshal(content, &value); err != nil {
		s.recordUnavailable(err)
		return zero
	}
	return value
}

// Save overwrites the file with the JSON encoding of value.
func (s *FileStore[T]) Save(value T) error {
	storageErr := s.save(value)
	if storageErr != nil {
		s.metadataSink.RecordError(
			time.Now(),
			"storage",
			"FileStore.Save",
			mapStorageErrorToMetadataCause(storageErr),
			storageErr.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrWritePath, s.path),
			},
		)
		return storageErr
	}
	s.metadataSink.RecordArtifact(
		s.kind,
		s.path,
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrWritePath, s.path),
		},
	)
	return nil
}

func (s *FileStore[T]) save(value T) *StorageError {
	content, err := json.Marshal(value)
	if err != nil {
		return &StorageError{
			Message: err.Error(),
			Cause:   ErrCauseEncodeFailure,
			Path:    s.path,
		}
	}

	if fileErr := fileutil.WriteFileAtomic(s.path, content); fileErr != nil {
		var fe *fileutil.FileError
		if errors.As(fileErr, &fe) && fe.Cause == fileutil.ErrCauseDiskFull {
			return &StorageError{
				Message:   fe.Message,
				Retryable: true,
				Cause:     ErrCauseDiskFull,
				Path:      s.path,
			}
		}
		return &StorageError{
			Message: fileErr.Error(),
			Cause:   ErrCauseWriteFailure,
			Path:    s.path,
		}
	}
	return nil
}

func (s *FileStore[T]) recordUnavailable(err error) {
	s.metadataSink.RecordError(
		time.Now(),
		"storage",
		"FileStore.Load",
		metadata.CauseCacheUnavailable,
		fmt.Sprintf("treating cache as empty: %v", err),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrPath, s.path),
		},
	)
}
