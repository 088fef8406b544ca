package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/hashutil"
)

// JSONFetcher performs GET requests against JSON APIs. It does not pass
// through the page throttle.
type JSONFetcher struct {
	metadataSink metadata.MetadataSink
	client       *resty.Client
}

func NewJSONFetcher(
	metadataSink metadata.MetadataSink,
	identity Identity,
	timeout time.Duration,
) *JSONFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeaders(identity.headers(acceptJSON))
	return &JSONFetcher{
		metadataSink: metadataSink,
		client:       client,
	}
}

// GetJSON requests endpoint with params as the query string and returns the
// raw body once it is known to be syntactically valid JSON.
func (j *JSONFetcher) GetJSON(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	callerMethod := "JSONFetcher.GetJSON"

	startTime := time.Now()
	res, err := j.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(endpoint)
	duration := time.Since(startTime)

	if err != nil {
		cause := ErrCauseNetworkFailure
		if errors.Is(err, context.Canceled) {
			cause = ErrCauseCancelled
		}
		fetchErr := &FetchError{
			Message: fmt.Sprintf("request failed: %v", err),
			Cause:   cause,
			URL:     endpoint,
		}
		j.metadataSink.RecordFetch(endpoint, 0, duration, "")
		j.recordFetchError(callerMethod, fetchErr)
		return nil, fetchErr
	}

	body := res.Body()
	statusCode := res.StatusCode()
	if !res.IsSuccess() {
		fetchErr := statusError(endpoint, statusCode)
		j.metadataSink.RecordFetch(endpoint, statusCode, duration, "")
		j.recordFetchError(callerMethod, fetchErr)
		return nil, fetchErr
	}

	j.metadataSink.RecordFetch(endpoint, statusCode, duration, hashutil.Fingerprint(body))

	if !json.Valid(body) {
		fetchErr := &FetchError{
			Message:    "response body is not valid JSON",
			Cause:      ErrCauseInvalidJSON,
			StatusCode: statusCode,
			URL:        endpoint,
		}
		j.recordFetchError(callerMethod, fetchErr)
		return nil, fetchErr
	}
	return body, nil
}

func (j *JSONFetcher) recordFetchError(callerMethod string, err *FetchError) {
	j.metadataSink.RecordError(
		time.Now(),
		"fetcher",
		callerMethod,
		mapFetchErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, err.URL),
			metadata.NewAttr(metadata.AttrHTTPStatus, fmt.Sprintf("%d", err.StatusCode)),
		},
	)
}
