package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rmaia/vitrine"
	"github.com/rmaia/vitrine/csv"
	"github.com/rmaia/vitrine/goquery"
	"github.com/rmaia/vitrine/htmltomarkdown"
	vitrinehttp "github.com/rmaia/vitrine/http"
	vitrineslog "github.com/rmaia/vitrine/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vitrine"),
		kong.Description("Extract storefront product listings to CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vitrine --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Wire the extraction pipeline. The registry falls back to the
	// generic Magento profile for unknown hosts.
	registry := goquery.NewRegistry(vitrine.DefaultProfile())
	extractor := goquery.NewExtractor(registry, goquery.WithConverter(htmltomarkdown.NewConverter()))
	fetcher := vitrinehttp.NewFetcher(vitrinehttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	deps.Fetcher = vitrineslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.Extractor = vitrineslog.NewLoggingExtractor(extractor, deps.Logger)
	deps.Writer = csv.NewWriter()

	return kongCtx.Run(deps)
}
