package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rmaia/vitrine"
	"github.com/rmaia/vitrine/mock"
	vitrineslog "github.com/rmaia/vitrine/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs record count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(sourceURL string, html string) ([]*vitrine.Product, error) {
				return []*vitrine.Product{
					{Name: "Perfume Empire", ProductURL: sourceURL},
					{Name: "Kit Essencial", ProductURL: sourceURL},
				}, nil
			},
		}

		extractor := vitrineslog.NewLoggingExtractor(inner, logger)
		products, err := extractor.Extract("https://www.hinode.com.br/fragrancias", "<html></html>")

		require.NoError(t, err)
		assert.Len(t, products, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "records=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(sourceURL string, html string) ([]*vitrine.Product, error) {
				return nil, vitrine.Errorf(vitrine.EINVALID, "failed to parse HTML")
			},
		}

		extractor := vitrineslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("https://www.hinode.com.br/fragrancias", "<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "failed to parse HTML")
	})
}
