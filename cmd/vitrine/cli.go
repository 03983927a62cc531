package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rmaia/vitrine"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   vitrine.Fetcher
	Extractor vitrine.Extractor
	Writer    vitrine.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Extract products from a storefront URL to CSV"`
	Bot    BotCmd    `cmd:"" help:"Run the Telegram bot"`

	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"Storefront page URL"`
	Output string `short:"o" help:"Output file (default: stdout)"`
}

// BotCmd is the "bot" subcommand.
type BotCmd struct {
	Token       string `env:"TELEGRAM_TOKEN" required:"" help:"Telegram bot token"`
	Host        string `default:"hinode.com.br" help:"Storefront host accepted in chat links"`
	Filename    string `default:"produtos.csv" help:"Name of the CSV document sent in replies"`
	Concurrency int64  `short:"c" default:"4" help:"Concurrent scrape limit"`
}
