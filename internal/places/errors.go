package places

import (
	"fmt"

	"github.com/rohmanhakim/park-finder/pkg/failure"
)

type PlacesErrorCause string

const (
	ErrCauseNoAPIKey       PlacesErrorCause = "no api key"
	ErrCauseUndecodable    PlacesErrorCause = "undecodable response"
	ErrCauseMemoWriteError PlacesErrorCause = "memo write failed"
)

type PlacesError struct {
	Message string
	Cause   PlacesErrorCause
}

func (e *PlacesError) Error() string {
	return fmt.Sprintf("places error: %s: %s", e.Cause, e.Message)
}

func (e *PlacesError) Severity() failure.Severity {
	return failure.SeverityFatal
}
