package places

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rohmanhakim/park-finder/internal/fetcher"
)

const (
	DefaultEndpoint   = "https://www.mapquestapi.com/search/v2/radius"
	DefaultRadius     = 10
	DefaultMaxMatches = 10
)

// Searcher runs a radius search around a postal code and returns the raw
// JSON response.
type Searcher interface {
	Search(ctx context.Context, postalCode string) ([]byte, error)
}

// Client calls the MapQuest radius search endpoint.
type Client struct {
	getter     fetcher.JSONGetter
	endpoint   string
	apiKey     string
	radius     int
	maxMatches int
}

func NewClient(getter fetcher.JSONGetter, endpoint string, apiKey string, radius int, maxMatches int) *Client {
	return &Client{
		getter:     getter,
		endpoint:   endpoint,
		apiKey:     apiKey,
		radius:     radius,
		maxMatches: maxMatches,
	}
}

func (c *Client) Search(ctx context.Context, postalCode string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &PlacesError{
			Message: "set PARKFINDER_PLACES_API_KEY or --places-api-key",
			Cause:   ErrCauseNoAPIKey,
		}
	}
	return c.getter.GetJSON(ctx, c.endpoint, c.params(postalCode))
}

func (c *Client) params(postalCode string) url.Values {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("origin", postalCode)
	params.Set("radius", strconv.Itoa(c.radius))
	params.Set("maxMatches", strconv.Itoa(c.maxMatches))
	params.Set("ambiguities", "ignore")
	params.Set("outFormat", "json")
	return params
}
