// ABOUTME: Root Cobra command for the hydrocal bot.
// ABOUTME: Loads config, builds the logger, and wires the shared tracker for subcommands.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hydrocal/hydrocal/internal/config"
	"github.com/hydrocal/hydrocal/internal/food"
	"github.com/hydrocal/hydrocal/internal/store"
	"github.com/hydrocal/hydrocal/internal/tracker"
	"github.com/hydrocal/hydrocal/internal/weather"
)

var (
	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hydrocal",
	Short: "Water, calorie, and workout tracking assistant",
	Long: `Hydrocal is a conversational assistant that tracks daily water intake,
food calories, and workout expenditure, with personal daily goals
derived from a short questionnaire.

QUICK START:

  $ export BOT_TOKEN=...              # from @BotFather
  $ export OPENWEATHER_API_KEY=...    # optional, for the hot-weather water bonus
  $ hydrocal run                      # start the Telegram bot

  Without OPENWEATHER_API_KEY the assistant assumes 20°C everywhere,
  which simply skips the hot-weather bonus.

LOCAL CHAT:

  Talk to the assistant in your terminal, no Telegram token needed:

  $ hydrocal chat
  you> /set_profile
  bot> Введите ваш вес (в кг):

COMMAND SURFACE (in any transport):

  /set_profile              five-question onboarding, derives daily goals
  /log_water <мл>           log water intake
  /log_food [<название>]    log a meal (weight asked as a follow-up)
  /log_workout <тип> <мин>  log a workout, debits hydration need
  /check_progress           today's standing against the goals

MCP INTEGRATION:

  Run 'hydrocal mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "hydrocal": { "command": "hydrocal", "args": ["mcp"] }
    }
  }

DATA:

  All user records live in memory and vanish on restart; only food
  lookup responses are cached on disk (CACHE_DIR, 24h TTL).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           cfg.GetLogLevel(),
			ReportTimestamp: true,
		})
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// buildTracker assembles the store, lookup sources, and tracker shared
// by the bot, chat, and MCP entry points. The returned cleanup closes
// the food cache.
func buildTracker() (*tracker.Tracker, func()) {
	var cache *food.Cache
	if c, err := food.OpenCache(cfg.GetCacheDir()); err != nil {
		logger.Warn("food cache disabled", "dir", cfg.GetCacheDir(), "err", err)
	} else {
		cache = c
	}
	foodSource := food.NewClient(logger.With("component", "food"), cache)

	var tempSource weather.Source
	if cfg.OpenWeatherAPIKey != "" {
		tempSource = weather.NewClient(cfg.OpenWeatherAPIKey, logger.With("component", "weather"))
	} else {
		logger.Warn("OPENWEATHER_API_KEY not set, assuming 20°C everywhere")
	}

	tr := tracker.New(store.New(), tempSource, foodSource, logger)
	cleanup := func() {
		if cache != nil {
			if err := cache.Close(); err != nil {
				logger.Error("failed to close food cache", "err", err)
			}
		}
	}
	return tr, cleanup
}
