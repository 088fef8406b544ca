package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/pkg/hashutil"
	"github.com/rohmanhakim/park-finder/pkg/limiter"
)

/*
Responsibilities

- Pay the fixed courtesy delay before touching the network
- Perform the GET with identifying headers
- Classify responses

Fetch Semantics

- Only 2xx responses produce a body
- There is no retry: a failed request fails the caller's operation
- Every request is recorded with metadata

The fetcher never parses content; it only returns the body text.
*/

type HtmlFetcher struct {
	metadataSink metadata.MetadataSink
	throttle     limiter.Throttle
	identity     Identity
	httpClient   *http.Client
}

func NewHtmlFetcher(
	metadataSink metadata.MetadataSink,
	throttle limiter.Throttle,
	identity Identity,
	timeout time.Duration,
) *HtmlFetcher {
	return &HtmlFetcher{
		metadataSink: metadataSink,
		throttle:     throttle,
		identity:     identity,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// GetRaw waits on the throttle, then fetches fetchUrl and returns its body.
func (h *HtmlFetcher) GetRaw(ctx context.Context, fetchUrl string) (string, error) {
	callerMethod := "HtmlFetcher.GetRaw"

	if err := h.throttle.Wait(ctx); err != nil {
		fetchErr := &FetchError{
			Message: fmt.Sprintf("throttle wait aborted: %v", err),
			Cause:   ErrCauseCancelled,
			URL:     fetchUrl,
		}
		h.recordFetchError(callerMethod, fetchErr)
		return "", fetchErr
	}

	startTime := time.Now()
	body, statusCode, fetchErr := h.performFetch(ctx, fetchUrl)
	duration := time.Since(startTime)

	contentHash := ""
	if fetchErr == nil {
		contentHash = hashutil.Fingerprint(body)
	}
	h.metadataSink.RecordFetch(fetchUrl, statusCode, duration, contentHash)

	if fetchErr != nil {
		h.recordFetchError(callerMethod, fetchErr)
		return "", fetchErr
	}
	return string(body), nil
}

func (h *HtmlFetcher) performFetch(ctx context.Context, fetchUrl string) ([]byte, int, *FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchUrl, nil)
	if err != nil {
		return nil, 0, &FetchError{
			Message: fmt.Sprintf("failed to create request: %v", err),
			Cause:   ErrCauseNetworkFailure,
			URL:     fetchUrl,
		}
	}
	for key, value := range h.identity.headers(acceptHTML) {
		req.Header.Set(key, value)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		cause := ErrCauseNetworkFailure
		if errors.Is(err, context.Canceled) {
			cause = ErrCauseCancelled
		}
		return nil, 0, &FetchError{
			Message: fmt.Sprintf("request failed: %v", err),
			Cause:   cause,
			URL:     fetchUrl,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, statusError(fetchUrl, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &FetchError{
			Message:    fmt.Sprintf("failed to read response body: %v", err),
			Cause:      ErrCauseReadResponseBodyError,
			StatusCode: resp.StatusCode,
			URL:        fetchUrl,
		}
	}
	return body, resp.StatusCode, nil
}

func (h *HtmlFetcher) recordFetchError(callerMethod string, err *FetchError) {
	h.metadataSink.RecordError(
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
