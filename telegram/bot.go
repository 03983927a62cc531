// Package telegram provides the chat transport: it receives storefront
// URLs in chat messages, runs the fetch/extract/serialize pipeline, and
// replies with the generated CSV file.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rmaia/vitrine"
	"golang.org/x/sync/semaphore"
)

// API is the subset of the Telegram Bot API used by Bot.
// *tgbotapi.BotAPI satisfies it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// DefaultScrapeTimeout bounds one fetch+extract round trip.
const DefaultScrapeTimeout = 60 * time.Second

// DefaultConcurrency is the number of scrapes processed at once.
const DefaultConcurrency = 4

// Bot handles chat updates. User-facing replies follow the storefront's
// locale (pt-BR).
type Bot struct {
	api       API
	fetcher   vitrine.Fetcher
	extractor vitrine.Extractor
	writer    vitrine.RecordWriter

	host     string
	filename string
	timeout  time.Duration
	logger   *slog.Logger
	sem      *semaphore.Weighted
}

// Option configures a Bot.
type Option func(*Bot)

// WithHost restricts accepted links to the given storefront host and
// its subdomains. Empty accepts any host.
func WithHost(host string) Option {
	return func(b *Bot) {
		b.host = host
	}
}

// WithFilename sets the name of the CSV document sent in replies.
func WithFilename(name string) Option {
	return func(b *Bot) {
		b.filename = name
	}
}

// WithTimeout bounds one scrape round trip.
func WithTimeout(d time.Duration) Option {
	return func(b *Bot) {
		b.timeout = d
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithConcurrency bounds the number of scrapes processed at once.
func WithConcurrency(n int64) Option {
	return func(b *Bot) {
		b.sem = semaphore.NewWeighted(n)
	}
}

// New creates a Bot on top of an established API connection.
func New(api API, fetcher vitrine.Fetcher, extractor vitrine.Extractor, writer vitrine.RecordWriter, opts ...Option) *Bot {
	b := &Bot{
		api:       api,
		fetcher:   fetcher,
		extractor: extractor,
		writer:    writer,
		filename:  "produtos.csv",
		timeout:   DefaultScrapeTimeout,
		logger:    slog.Default(),
		sem:       semaphore.NewWeighted(DefaultConcurrency),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run receives updates until the context is canceled or the update
// channel closes. Each update is handled in its own goroutine, bounded
// by the concurrency limit.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. Safe for concurrent use.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if strings.HasPrefix(msg.Text, "/") {
		b.handleCommand(msg)
		return
	}
	b.handleURL(ctx, msg)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	if !strings.HasPrefix(msg.Text, "/start") {
		return
	}
	b.reply(msg.Chat.ID,
		"👋 Olá! Me envie um link de uma página de produtos e eu vou gerar "+
			"um arquivo CSV com todas as informações.")
}

func (b *Bot) handleURL(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	rawURL := strings.TrimSpace(msg.Text)

	if !Allowed(rawURL, b.host) {
		b.reply(chatID, fmt.Sprintf("❌ Por favor, envie apenas links do site %s.", b.host))
		return
	}

	if err := b.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer b.sem.Release(1)

	job := uuid.NewString()
	logger := b.logger.With("job", job, "chat", chatID, "url", rawURL)

	status, err := b.api.Send(tgbotapi.NewMessage(chatID, "🔄 Coletando informações dos produtos..."))
	if err != nil {
		logger.Error("send status message", "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	data, count, err := b.scrape(ctx, rawURL)
	switch {
	case err != nil && vitrine.ErrorCode(err) == vitrine.ENOTFOUND:
		logger.Info("no products found")
		b.edit(chatID, status.MessageID, "❌ Nenhum produto encontrado nesta página.")
		return
	case err != nil:
		logger.Error("scrape", "err", err)
		b.edit(chatID, status.MessageID, fmt.Sprintf(
			"❌ Erro ao processar sua solicitação:\n%s\n\nVerifique se o link está correto e tente novamente.",
			vitrine.ErrorMessage(err)))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: b.filename, Bytes: data})
	doc.Caption = fmt.Sprintf("✅ Arquivo gerado com sucesso!\n📊 %d produtos encontrados.", count)
	if _, err := b.api.Send(doc); err != nil {
		logger.Error("send document", "err", err)
		b.edit(chatID, status.MessageID, "❌ Erro ao enviar o arquivo. Tente novamente.")
		return
	}

	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, status.MessageID)); err != nil {
		logger.Error("delete status message", "err", err)
	}
	logger.Info("scrape finished", "records", count)
}

// scrape runs the fetch/extract/serialize pipeline for one URL.
// Returns the serialized CSV and the record count.
func (b *Bot) scrape(ctx context.Context, rawURL string) ([]byte, int, error) {
	html, err := b.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, 0, err
	}

	products, err := b.extractor.Extract(rawURL, html)
	if err != nil {
		return nil, 0, err
	}

	data, err := b.writer.Write(products)
	if err != nil {
		return nil, 0, err
	}
	return data, len(products), nil
}

// Allowed reports whether rawURL points at the given storefront host or
// one of its subdomains. An empty host accepts any URL that parses.
func Allowed(rawURL, host string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return false
	}
	if host == "" {
		return true
	}
	got := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	want := strings.TrimPrefix(strings.ToLower(host), "www.")
	return got == want || strings.HasSuffix(got, "."+want)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("send message", "chat", chatID, "err", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		b.logger.Error("edit message", "chat", chatID, "err", err)
	}
}
