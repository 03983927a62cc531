package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/rmaia/vitrine/mock"
	vitrineslog "github.com/rmaia/vitrine/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes, hash and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := vitrineslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://www.hinode.com.br/fragrancias")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://www.hinode.com.br/fragrancias")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "hash=")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := vitrineslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://www.hinode.com.br/fragrancias")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("identical content logs identical hash", func(t *testing.T) {
		t.Parallel()

		fetchLogLine := func() string {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			inner := &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html>same</html>", nil
				},
			}
			fetcher := vitrineslog.NewLoggingFetcher(inner, logger)
			_, err := fetcher.Fetch(context.Background(), "https://www.hinode.com.br")
			require.NoError(t, err)
			return buf.String()
		}

		first, second := fetchLogLine(), fetchLogLine()
		assert.Equal(t, hashField(t, first), hashField(t, second))
	})
}

func hashField(t *testing.T, logLine string) string {
	t.Helper()
	for _, field := range bytes.Fields([]byte(logLine)) {
		if bytes.HasPrefix(field, []byte("hash=")) {
			return string(field)
		}
	}
	t.Fatalf("no hash field in %q", logLine)
	return ""
}
