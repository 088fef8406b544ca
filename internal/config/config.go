package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

type Config struct {
	//===============
	// Source
	//===============
	// Origin whose home page carries the state navigation menu. Relative
	// links found on scraped pages resolve against it.
	baseURL url.URL

	//===============
	// Politeness
	//===============
	// Fixed wait paid before every live page request. Cache hits never wait.
	crawlDelay time.Duration
	// User agent sent on every request
	userAgent string
	// Contact address sent in the From header. Empty omits the header.
	contact string

	//===============
	// Fetch
	//===============
	// Maximum duration of a single HTTP request
	httpTimeout time.Duration

	//===============
	// Cache files
	//===============
	// JSON object mapping request URL to raw HTML
	pageCachePath string
	// Last places search response, kept whole
	placesCachePath string

	//===============
	// Places search
	//===============
	placesEndpoint string
	placesAPIKey   string
	// Search radius in miles
	radius     int
	maxMatches int
}

const (
	DefaultBaseURL         = "https://www.nps.gov"
	DefaultUserAgent       = "park-finder/1.0"
	DefaultCrawlDelay      = time.Second
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultPageCachePath   = "cache/pages.json"
	DefaultPlacesCachePath = "cache/places.json"
	DefaultPlacesEndpoint  = "https://www.mapquestapi.com/search/v2/radius"
	DefaultRadius          = 10
	DefaultMaxMatches      = 10
)

func WithDefault() *Config {
	baseURL, _ := url.Parse(DefaultBaseURL)
	defaultConfig := Config{
		baseURL:         *baseURL,
		crawlDelay:      DefaultCrawlDelay,
		userAgent:       DefaultUserAgent,
		contact:         "",
		httpTimeout:     DefaultHTTPTimeout,
		pageCachePath:   DefaultPageCachePath,
		placesCachePath: DefaultPlacesCachePath,
		placesEndpoint:  DefaultPlacesEndpoint,
		placesAPIKey:    "",
		radius:          DefaultRadius,
		maxMatches:      DefaultMaxMatches,
	}
	return &defaultConfig
}

func (c *Config) WithBaseURL(baseURL url.URL) *Config {
	c.baseURL = baseURL
	return c
}

func (c *Config) WithCrawlDelay(delay time.Duration) *Config {
	c.crawlDelay = delay
	return c
}

func (c *Config) WithUserAgent(agent string) *Config {
	c.userAgent = agent
	return c
}

func (c *Config) WithContact(contact string) *Config {
	c.contact = contact
	return c
}

func (c *Config) WithHTTPTimeout(timeout time.Duration) *Config {
	c.httpTimeout = timeout
	return c
}

func (c *Config) WithPageCachePath(path string) *Config {
	c.pageCachePath = path
	return c
}

func (c *Config) WithPlacesCachePath(path string) *Config {
	c.placesCachePath = path
	return c
}

func (c *Config) WithPlacesEndpoint(endpoint string) *Config {
	c.placesEndpoint = endpoint
	return c
}

func (c *Config) WithPlacesAPIKey(key string) *Config {
	c.placesAPIKey = key
	return c
}

func (c *Config) WithRadius(radius int) *Config {
	c.radius = radius
	return c
}

func (c *Config) WithMaxMatches(maxMatches int) *Config {
	c.maxMatches = maxMatches
	return c
}

func (c *Config) Build() (Config, error) {
	if c.baseURL.Scheme == "" || c.baseURL.Host == "" {
		return Config{}, fmt.Errorf("%w: baseUrl must be absolute, got %q", ErrInvalidConfig, c.baseURL.String())
	}
	if c.crawlDelay < 0 {
		return Config{}, fmt.Errorf("%w: crawlDelay cannot be negative", ErrInvalidConfig)
	}
	if c.httpTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: httpTimeout must be positive", ErrInvalidConfig)
	}
	if c.pageCachePath == "" || c.placesCachePath == "" {
		return Config{}, fmt.Errorf("%w: cache paths cannot be empty", ErrInvalidConfig)
	}
	if filepath.Clean(c.pageCachePath) == filepath.Clean(c.placesCachePath) {
		return Config{}, fmt.Errorf("%w: page and places caches must use different files", ErrInvalidConfig)
	}
	if c.radius <= 0 || c.maxMatches <= 0 {
		return Config{}, fmt.Errorf("%w: radius and maxMatches must be positive", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) BaseURL() url.URL {
	return c.baseURL
}

func (c Config) CrawlDelay() time.Duration {
	return c.crawlDelay
}

func (c Config) UserAgent() string {
	return c.userAgent
}

func (c Config) Contact() string {
	return c.contact
}

func (c Config) HTTPTimeout() time.Duration {
	return c.httpTimeout
}

func (c Config) PageCachePath() string {
	return c.pageCachePath
}

func (c Config) PlacesCachePath() string {
	return c.placesCachePath
}

func (c Config) PlacesEndpoint() string {
	return c.placesEndpoint
}

func (c Config) PlacesAPIKey() string {
	return c.placesAPIKey
}

func (c Config) Radius() int {
	return c.radius
}

func (c Config) MaxMatches() int {
	return c.maxMatches
}
