package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rohmanhakim/park-finder/internal/config"
	"github.com/rohmanhakim/park-finder/internal/console"
	"github.com/spf13/cobra"
)

const programName = "park-finder"

var (
	cfgFile         string
	envFile         string
	baseURL         string
	userAgent       string
	contact         string
	crawlDelay      time.Duration
	timeout         time.Duration
	pageCachePath   string
	placesCachePath string
	placesEndpoint  string
	placesAPIKey    string
	radius          int
	maxMatches      int
	verbose         bool
)

// unsetDelay marks --crawl-delay as not given, since zero is a valid delay.
const unsetDelay = time.Duration(-1)

// NewRootCmd builds the command tree. Flags bind to package-level variables,
// so only one tree should be executing at a time.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Browse National Park Service sites by state and find places nearby.",
		Long: `park-finder lists the National Park Service sites in a U.S. state,
scraped from nps.gov, and looks up points of interest near a chosen site
through the MapQuest radius search.

Every page is cached on disk after its first fetch, so repeated runs are
served locally and only new pages pay the crawl delay.

Run without a subcommand for the interactive prompt.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags(cmd)
			if err != nil {
				return err
			}
			controller := console.NewController(app.service, app.lookup, cmd.InOrStdin(), cmd.OutOrStdout())
			return controller.Run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config-file", "", "config file path, JSON or JSON5 (e.g., ./park-finder.json5)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading PARKFINDER_* variables")
	flags.StringVar(&baseURL, "base-url", "", "origin to scrape (default https://www.nps.gov)")
	flags.StringVar(&userAgent, "user-agent", "", "user agent string for HTTP requests")
	flags.StringVar(&contact, "contact", "", "contact address sent in the From header")
	flags.DurationVar(&crawlDelay, "crawl-delay", unsetDelay, "fixed wait before every uncached page request (default 1s)")
	flags.DurationVar(&timeout, "timeout", 0, "timeout for a single HTTP request")
	flags.StringVar(&pageCachePath, "page-cache", "", "page cache file")
	flags.StringVar(&placesCachePath, "places-cache", "", "places search cache file")
	flags.StringVar(&placesEndpoint, "places-endpoint", "", "radius search endpoint")
	flags.StringVar(&placesAPIKey, "places-api-key", "", "MapQuest API key")
	flags.IntVar(&radius, "radius", 0, "search radius in miles")
	flags.IntVar(&maxMatches, "max-matches", 0, "maximum number of nearby places")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log fetch details")

	rootCmd.AddCommand(
		newStatesCmd(),
		newSitesCmd(),
		newNearbyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree with Ctrl+C cancelling the context.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// InitConfigWithError builds the configuration from defaults, the config
// file, the environment and flags, each overriding the one before.
func InitConfigWithError() (config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}

	configBuilder := config.WithDefault()
	if cfgFile != "" {
		fromFile, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("error initializing config from file: %w", err)
		}
		configBuilder = fromFile
	}

	configBuilder, err := configBuilder.WithEnv()
	if err != nil {
		return config.Config{}, err
	}

	if baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: --base-url: %s", config.ErrInvalidConfig, err.Error())
		}
		configBuilder = configBuilder.WithBaseURL(*parsed)
	}
	if userAgent != "" {
		configBuilder = configBuilder.WithUserAgent(userAgent)
	}
	if contact != "" {
		configBuilder = configBuilder.WithContact(contact)
	}
	if crawlDelay != unsetDelay {
		configBuilder = configBuilder.WithCrawlDelay(crawlDelay)
	}
	if timeout > 0 {
		configBuilder = configBuilder.WithHTTPTimeout(timeout)
	}
	if pageCachePath != "" {
		configBuilder = configBuilder.WithPageCachePath(pageCachePath)
	}
	if placesCachePath != "" {
		configBuilder = configBuilder.WithPlacesCachePath(placesCachePath)
	}
	if placesEndpoint != "" {
		configBuilder = configBuilder.WithPlacesEndpoint(placesEndpoint)
	}
	if placesAPIKey != "" {
		configBuilder = configBuilder.WithPlacesAPIKey(placesAPIKey)
	}
	if radius > 0 {
		configBuilder = configBuilder.WithRadius(radius)
	}
	if maxMatches > 0 {
		configBuilder = configBuilder.WithMaxMatches(maxMatches)
	}

	return configBuilder.Build()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func ResetFlags() {
	cfgFile = ""
	envFile = ""
	baseURL = ""
	userAgent = ""
	contact = ""
	crawlDelay = unsetDelay
	timeout = 0
	pageCachePath = ""
	placesCachePath = ""
	placesEndpoint = ""
	placesAPIKey = ""
	radius = 0
	maxMatches = 0
	verbose = false
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetEnvFileForTest(path string) {
	envFile = path
}

func SetBaseURLForTest(u string) {
	baseURL = u
}

func SetCrawlDelayForTest(delay time.Duration) {
	crawlDelay = delay
}

func SetCachePathsForTest(pages string, places string) {
	pageCachePath = pages
	placesCachePath = places
}

func SetPlacesForTest(endpoint string, key string) {
	placesEndpoint = endpoint
	placesAPIKey = key
}

func SetRadiusForTest(r int) {
	radius = r
}
