package nps

import (
	"context"
	"net/url"

	"github.com/rohmanhakim/park-finder/internal/site"
)

// PageSource returns page bodies by URL, normally through the page cache.
type PageSource interface {
	FetchCached(ctx context.Context, fetchUrl string) (string, error)
}

// Extractor turns nps.gov pages into structured values.
type Extractor interface {
	ExtractStateIndex(htmlText string, baseURL url.URL) (map[string]string, error)
	ExtractSite(htmlText string) site.Site
	ExtractListing(htmlText string, baseURL url.URL) ([]string, error)
}

/*
Service

Responsibilities:
- Build the state name index from the home page
- Read one park detail page into a site.Site
- Read every park listed on a state page, in listing order

Every page goes through PageSource, so each URL is fetched at most once
across runs.
*/
type Service struct {
	pages     PageSource
	extractor Extractor
	baseURL   url.URL
}

func NewService(pages PageSource, extractor Extractor, baseURL url.URL) *Service {
	return &Service{
		pages:     pages,
		extractor: extractor,
		baseURL:   baseURL,
	}
}

// BuildStateIndex maps lowercase state names to their listing page URLs.
func (s *Service) BuildStateIndex(ctx context.Context) (map[string]string, error) {
	body, err := s.pages.FetchCached(ctx, s.baseURL.String())
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractStateIndex(body, s.baseURL)
}

// SiteForURL reads the park detail page at siteUrl.
func (s *Service) SiteForURL(ctx context.Context, siteUrl string) (site.Site, error) {
	body, err := s.pages.FetchCached(ctx, siteUrl)
	if err != nil {
		return site.Site{}, err
	}
	return s.extractor.ExtractSite(body), nil
}

// SitesForState reads every park listed on the state page at stateUrl.
// The first failure aborts the whole listing.
func (s *Service) SitesForState(ctx context.Context, stateUrl string) ([]site.Site, error) {
	body, err := s.pages.FetchCached(ctx, stateUrl)
	if err != nil {
		return nil, err
	}
	links, err := s.extractor.ExtractListing(body, s.baseURL)
	if err != nil {
		return nil, err
	}

	sites := make([]site.Site, 0, len(links))
	for _, link := range links {
		parkSite, err := s.SiteForURL(ctx, link)
		if err != nil {
			return nil, err
		}
		sites = append(sites, parkSite)
	}
	return sites, nil
}
