// ABOUTME: Environment-based configuration with defaulting getters.
// ABOUTME: Missing credentials select documented fallbacks, never startup failure.
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
// Both API keys are optional: without OpenWeather the water goal
// assumes 20°C, without a bot token only the console and MCP entry
// points are usable.
type Config struct {
	// BotToken is the Telegram Bot API token.
	BotToken string

	// OpenWeatherAPIKey authorizes temperature lookups.
	OpenWeatherAPIKey string

	// CacheDir is where the food lookup cache lives.
	// Defaults to <user cache dir>/hydrocal.
	CacheDir string

	// LogLevel is debug, info, warn, or error. Defaults to info.
	LogLevel string
}

// Load reads configuration from the environment, after a best-effort
// .env load for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		CacheDir:          os.Getenv("CACHE_DIR"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
	}
}

// GetCacheDir returns the configured cache directory, defaulting to a
// hydrocal folder under the OS user cache dir (or the temp dir when
// that is unavailable).
func (c *Config) GetCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "hydrocal")
}

// GetLogLevel parses the configured level, defaulting to info.
func (c *Config) GetLogLevel() log.Level {
	if c.LogLevel == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
