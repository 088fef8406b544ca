package cmd

import (
	"encoding/json"

	"github.com/rohmanhakim/park-finder/internal/config"
	"github.com/rohmanhakim/park-finder/internal/extractor"
	"github.com/rohmanhakim/park-finder/internal/fetcher"
	"github.com/rohmanhakim/park-finder/internal/metadata"
	"github.com/rohmanhakim/park-finder/internal/nps"
	"github.com/rohmanhakim/park-finder/internal/places"
	"github.com/rohmanhakim/park-finder/internal/requester"
	"github.com/rohmanhakim/park-finder/internal/storage"
	"github.com/rohmanhakim/park-finder/pkg/limiter"
	"github.com/spf13/cobra"
)

// app holds the wired components shared by every command.
type app struct {
	service *nps.Service
	lookup  *places.Lookup
}

func newAppFromFlags(cmd *cobra.Command) (*app, error) {
	cfg, err := InitConfigWithError()
	if err != nil {
		return nil, err
	}
	sink := metadata.NewRecorder(newLogger(cmd.ErrOrStderr(), verbose))
	return newApp(cfg, sink), nil
}

func newApp(cfg config.Config, sink metadata.MetadataSink) *app {
	identity := fetcher.NewIdentity(cfg.UserAgent(), cfg.Contact())

	pages := storage.OpenPageCache(cfg.PageCachePath(), sink)
	htmlFetcher := fetcher.NewHtmlFetcher(sink, limiter.NewFixedDelay(cfg.CrawlDelay()), identity, cfg.HTTPTimeout())
	service := nps.NewService(
		requester.NewCachedRequester(sink, pages, htmlFetcher),
		extractor.NewDomExtractor(sink),
		cfg.BaseURL(),
	)

	jsonFetcher := fetcher.NewJSONFetcher(sink, identity, cfg.HTTPTimeout())
	client := places.NewClient(jsonFetcher, cfg.PlacesEndpoint(), cfg.PlacesAPIKey(), cfg.Radius(), cfg.MaxMatches())
	memo := places.NewMemo(storage.NewFileStore[json.RawMessage](cfg.PlacesCachePath(), metadata.ArtifactPlacesCache, sink))

	return &app{
		service: service,
		lookup:  places.NewLookup(sink, client, memo),
	}
}
