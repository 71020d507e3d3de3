// ABOUTME: CLI command starting the Telegram bot with long polling.
// ABOUTME: Shuts down cleanly on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hydrocal/hydrocal/internal/bot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.BotToken == "" {
			return fmt.Errorf("BOT_TOKEN is not set; get one from @BotFather or use 'hydrocal chat' for a local session")
		}

		tr, cleanup := buildTracker()
		defer cleanup()

		dispatcher := bot.New(tr, logger.With("component", "bot"))
		tg, err := bot.NewTelegramBot(cfg.BotToken, dispatcher, logger.With("component", "telegram"))
		if err != nil {
			return fmt.Errorf("failed to connect to telegram: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("bot started, press ctrl+c to stop")
		if err := tg.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("bot stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
