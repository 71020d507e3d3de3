// ABOUTME: CLI command for a local console chat session with the assistant.
// ABOUTME: Same dispatcher as Telegram; handy for development without credentials.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hydrocal/hydrocal/internal/bot"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in your terminal",
	Long: `Chat opens a local conversation with the assistant using the same
command surface as the Telegram transport.

Each session gets a fresh user identity, so every chat starts with
/set_profile. Exit with /quit, ctrl+d, or ctrl+c.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, cleanup := buildTracker()
		defer cleanup()

		dispatcher := bot.New(tr, logger.With("component", "bot"))

		// fresh identity per session; records die with the process anyway
		userID := int64(uuid.New().ID())
		ctx := context.Background()

		youStyle := color.New(color.FgCyan, color.Bold)
		botStyle := color.New(color.FgGreen)

		botStyle.Println(dispatcher.Handle(ctx, userID, "/start"))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			youStyle.Print("you> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			line := scanner.Text()
			if line == "/quit" || line == "/exit" {
				return nil
			}

			if reply := dispatcher.Handle(ctx, userID, line); reply != "" {
				botStyle.Println(reply)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
