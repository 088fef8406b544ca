package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by WithEnv,
// e.g. PARKFINDER_PLACES_API_KEY.
const EnvPrefix = "PARKFINDER"

// envDTO holds values read from the environment. Pointer fields stay nil
// when their variable is unset so that zero values can still be set
// explicitly.
type envDTO struct {
	BaseURL         string         `envconfig:"BASE_URL"`
	CrawlDelay      *time.Duration `envconfig:"CRAWL_DELAY"`
	UserAgent       string         `envconfig:"USER_AGENT"`
	Contact         string         `envconfig:"CONTACT"`
	HTTPTimeout     *time.Duration `envconfig:"HTTP_TIMEOUT"`
	PageCachePath   string         `envconfig:"PAGE_CACHE"`
	PlacesCachePath string         `envconfig:"PLACES_CACHE"`
	PlacesEndpoint  string         `envconfig:"PLACES_ENDPOINT"`
	PlacesAPIKey    string         `envconfig:"PLACES_API_KEY"`
	Radius          *int           `envconfig:"RADIUS"`
	MaxMatches      *int           `envconfig:"MAX_MATCHES"`
}

// LoadDotEnv loads variables from a dotenv file into the process
// environment. Variables already set are left alone. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrEnvParsingFail, path, err.Error())
	}
	return nil
}

// WithEnv overlays PARKFINDER_* environment variables onto c.
func (c *Config) WithEnv() (*Config, error) {
	var env envDTO
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvParsingFail, err.Error())
	}

	if env.BaseURL != "" {
		baseURL, err := url.Parse(env.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %s_BASE_URL: %s", ErrEnvParsingFail, EnvPrefix, err.Error())
		}
		c.WithBaseURL(*baseURL)
	}
	if env.CrawlDelay != nil {
		c.WithCrawlDelay(*env.CrawlDelay)
	}
	if env.UserAgent != "" {
		c.WithUserAgent(env.UserAgent)
	}
	if env.Contact != "" {
		c.WithContact(env.Contact)
	}
	if env.HTTPTimeout != nil {
		c.WithHTTPTimeout(*env.HTTPTimeout)
	}
	if env.PageCachePath != "" {
		c.WithPageCachePath(env.PageCachePath)
	}
	if env.PlacesCachePath != "" {
		c.WithPlacesCachePath(env.PlacesCachePath)
	}
	if env.PlacesEndpoint != "" {
		c.WithPlacesEndpoint(env.PlacesEndpoint)
	}
	if env.PlacesAPIKey != "" {
		c.WithPlacesAPIKey(env.PlacesAPIKey)
	}
	if env.Radius != nil {
		c.WithRadius(*env.Radius)
	}
	if env.MaxMatches != nil {
		c.WithMaxMatches(*env.MaxMatches)
	}
	return c, nil
}
