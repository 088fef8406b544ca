package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	cmd "github.com/rohmanhakim/park-finder/internal/cli"
	"github.com/rohmanhakim/park-finder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigNoFlags(t *testing.T) {
	cmd.ResetFlags()

	cfg, err := cmd.InitConfigWithError()
	require.NoError(t, err)

	defaultCfg, err := config.WithDefault().Build()
	require.NoError(t, err)
	assert.Equal(t, defaultCfg, cfg)
}

func TestInitConfigFlagsOverrideDefaults(t *testing.T) {
	cmd.ResetFlags()
	dir := t.TempDir()
	cmd.SetBaseURLForTest("http://127.0.0.1:8080")
	cmd.SetCrawlDelayForTest(0)
	cmd.SetCachePathsForTest(filepath.Join(dir, "p.json"), filepath.Join(dir, "q.json"))
	cmd.SetPlacesForTest("http://127.0.0.1:9090/radius", "flag-key")
	cmd.SetRadiusForTest(3)

	cfg, err := cmd.InitConfigWithError()
	require.NoError(t, err)

	baseURL := cfg.BaseURL()
	assert.Equal(t, "http://127.0.0.1:8080", baseURL.String())
	assert.Equal(t, time.Duration(0), cfg.CrawlDelay())
	assert.Equal(t, filepath.Join(dir, "p.json"), cfg.PageCachePath())
	assert.Equal(t, "http://127.0.0.1:9090/radius", cfg.PlacesEndpoint())
	assert.Equal(t, "flag-key", cfg.PlacesAPIKey())
	assert.Equal(t, 3, cfg.Radius())
}

func TestInitConfigPrecedence(t *testing.T) {
	cmd.ResetFlags()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "park-finder.json5")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		userAgent: "from-file",
		placesApiKey: "from-file",
		radius: 20,
	}`), 0644))
	cmd.SetConfigFileForTest(cfgPath)

	t.Setenv("PARKFINDER_PLACES_API_KEY", "from-env")
	t.Setenv("PARKFINDER_RADIUS", "30")
	cmd.SetRadiusForTest(40)

	cfg, err := cmd.InitConfigWithError()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.UserAgent(), "file beats default")
	assert.Equal(t, "from-env", cfg.PlacesAPIKey(), "env beats file")
	assert.Equal(t, 40, cfg.Radius(), "flag beats env")
}

func TestInitConfigMissingFile(t *testing.T) {
	cmd.ResetFlags()
	cmd.SetConfigFileForTest(filepath.Join(t.TempDir(), "nope.json"))

	_, err := cmd.InitConfigWithError()
	require.ErrorIs(t, err, config.ErrFileDoesNotExist)
}

func TestInitConfigInvalid(t *testing.T) {
	cmd.ResetFlags()
	cmd.SetCachePathsForTest("same.json", "same.json")

	_, err := cmd.InitConfigWithError()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInitConfigDotEnv(t *testing.T) {
	cmd.ResetFlags()
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PARKFINDER_CONTACT=dotenv@example.com\n"), 0644))
	cmd.SetEnvFileForTest(envPath)

	t.Setenv("PARKFINDER_CONTACT", "")
	os.Unsetenv("PARKFINDER_CONTACT")

	cfg, err := cmd.InitConfigWithError()
	require.NoError(t, err)
	assert.Equal(t, "dotenv@example.com", cfg.Contact())
}
