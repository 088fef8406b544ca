package fetcher

import (
	"context"
	"net/url"
)

// RawFetcher retrieves a page body as text.
type RawFetcher interface {
	GetRaw(ctx context.Context, fetchUrl string) (string, error)
}

// JSONGetter retrieves a JSON document with query parameters attached.
type JSONGetter interface {
	GetJSON(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}
