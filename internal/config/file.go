package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// configDTO is the on-disk shape of a config file. Durations are strings
// such as "1500ms" or "2s".
type configDTO struct {
	BaseURL         string `json:"baseUrl,omitempty"`
	CrawlDelay      string `json:"crawlDelay,omitempty"`
	UserAgent       string `json:"userAgent,omitempty"`
	Contact         string `json:"contact,omitempty"`
	HTTPTimeout     string `json:"httpTimeout,omitempty"`
	PageCachePath   string `json:"pageCachePath,omitempty"`
	PlacesCachePath string `json:"placesCachePath,omitempty"`
	PlacesEndpoint  string `json:"placesEndpoint,omitempty"`
	PlacesAPIKey    string `json:"placesApiKey,omitempty"`
	Radius          int    `json:"radius,omitempty"`
	MaxMatches      int    `json:"maxMatches,omitempty"`
}

func defaultDTO() configDTO {
	return configDTO{
		BaseURL:         DefaultBaseURL,
		CrawlDelay:      DefaultCrawlDelay.String(),
		UserAgent:       DefaultUserAgent,
		HTTPTimeout:     DefaultHTTPTimeout.String(),
		PageCachePath:   DefaultPageCachePath,
		PlacesCachePath: DefaultPlacesCachePath,
		PlacesEndpoint:  DefaultPlacesEndpoint,
		Radius:          DefaultRadius,
		MaxMatches:      DefaultMaxMatches,
	}
}

// WithConfigFile reads a JSON5 config file and returns a builder seeded with
// its values. Fields the file leaves out keep their defaults. A sibling
// "<name>.local.<ext>" file, when present, overrides the main one.
func WithConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}

	dto, err := readDTO(path)
	if err != nil {
		return nil, err
	}

	localPath := localOverridePath(path)
	if _, statErr := os.Stat(localPath); statErr == nil {
		override, err := readDTO(localPath)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(&dto, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
		}
	}

	if err := mergo.Merge(&dto, defaultDTO()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}
	return newConfigFromDTO(dto)
}

func readDTO(path string) (configDTO, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return configDTO{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	var dto configDTO
	if err := json5.Unmarshal(content, &dto); err != nil {
		return configDTO{}, fmt.Errorf("%w: %s: %s", ErrConfigParsingFail, path, err.Error())
	}
	return dto, nil
}

func localOverridePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

func newConfigFromDTO(dto configDTO) (*Config, error) {
	cfg := WithDefault()

	baseURL, err := url.Parse(dto.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: baseUrl: %s", ErrConfigParsingFail, err.Error())
	}
	crawlDelay, err := time.ParseDuration(dto.CrawlDelay)
	if err != nil {
		return nil, fmt.Errorf("%w: crawlDelay: %s", ErrConfigParsingFail, err.Error())
	}
	httpTimeout, err := time.ParseDuration(dto.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: httpTimeout: %s", ErrConfigParsingFail, err.Error())
	}

	return cfg.
		WithBaseURL(*baseURL).
		WithCrawlDelay(crawlDelay).
		WithUserAgent(dto.UserAgent).
		WithContact(dto.Contact).
		WithHTTPTimeout(httpTimeout).
		WithPageCachePath(dto.PageCachePath).
		WithPlacesCachePath(dto.PlacesCachePath).
		WithPlacesEndpoint(dto.PlacesEndpoint).
		WithPlacesAPIKey(dto.PlacesAPIKey).
		WithRadius(dto.Radius).
		WithMaxMatches(dto.MaxMatches), nil
}
