// ABOUTME: Telegram long-polling adapter feeding the dispatcher.
// ABOUTME: The transport is a dumb pipe; all conversation logic lives in Dispatcher.
package bot

import (
	"context"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot polls the Telegram Bot API and relays message text to
// the dispatcher.
type TelegramBot struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	log        *log.Logger
}

// NewTelegramBot authorizes against the Bot API with the given token.
func NewTelegramBot(token string, d *Dispatcher, logger *log.Logger) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logger.Info("authorized on telegram", "account", api.Self.UserName)
	return &TelegramBot{api: api, dispatcher: d, log: logger}, nil
}

// Run polls for updates until ctx is canceled. Messages are processed
// one at a time; a reply failure is logged and does not stop the loop.
func (b *TelegramBot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
				continue
			}

			reply := b.dispatcher.Handle(ctx, update.Message.From.ID, update.Message.Text)
			if reply == "" {
				continue
			}
			if _, err := b.api.Send(tgbotapi.NewMessage(update.Message.Chat.ID, reply)); err != nil {
				b.log.Error("failed to send reply", "chat", update.Message.Chat.ID, "err", err)
			}
		}
	}
}
