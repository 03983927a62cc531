package main

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rmaia/vitrine/telegram"
)

// Run executes the bot command. Blocks until the context is canceled.
func (c *BotCmd) Run(deps *Dependencies) error {
	api, err := tgbotapi.NewBotAPI(c.Token)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}

	deps.Logger.Info("bot started", "username", api.Self.UserName, "host", c.Host)

	bot := telegram.New(api, deps.Fetcher, deps.Extractor, deps.Writer,
		telegram.WithHost(c.Host),
		telegram.WithFilename(c.Filename),
		telegram.WithConcurrency(c.Concurrency),
		telegram.WithLogger(deps.Logger),
	)

	if err := bot.Run(deps.Ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
