package csv_test

import (
	stdcsv "encoding/csv"
	"strings"
	"testing"

	"github.com/rmaia/vitrine"
	"github.com/rmaia/vitrine/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*vitrine.Product {
	return []*vitrine.Product{
		{
			Name:        "Perfume Empire Intense 100ml",
			Price:       "R$ 189.90",
			Code:        "2307",
			Description: "Fragrância amadeirada, intensa",
			ImageURL:    "https://www.hinode.com.br/media/catalog/empire-intense.jpg",
			ProductURL:  "https://www.hinode.com.br/perfume-empire-intense/p",
		},
		{
			Name:       "Kit Essencial",
			Price:      vitrine.PriceUnavailable,
			ProductURL: "https://www.hinode.com.br/kit-essencial/p",
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("zero records yield ENOTFOUND, not an empty buffer", func(t *testing.T) {
		t.Parallel()

		w := csv.NewWriter()
		data, err := w.Write(nil)

		require.Error(t, err)
		assert.Nil(t, data)
		assert.Equal(t, vitrine.ENOTFOUND, vitrine.ErrorCode(err))
	})

	t.Run("N records yield header plus N rows of 6 columns", func(t *testing.T) {
		t.Parallel()

		w := csv.NewWriter(csv.WithoutBOM())
		data, err := w.Write(sampleRecords())
		require.NoError(t, err)

		rows, err := stdcsv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Len(t, row, 6)
		}
		assert.Equal(t, csv.Header, rows[0])
	})

	t.Run("absent fields are written as empty strings", func(t *testing.T) {
		t.Parallel()

		w := csv.NewWriter(csv.WithoutBOM())
		data, err := w.Write(sampleRecords())
		require.NoError(t, err)

		rows, err := stdcsv.NewReader(strings.NewReader(string(data))).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Kit Essencial",
			vitrine.PriceUnavailable,
			"",
			"",
			"",
			"https://www.hinode.com.br/kit-essencial/p",
		}, rows[2])
	})

	t.Run("prefixes a UTF-8 BOM by default", func(t *testing.T) {
		t.Parallel()

		w := csv.NewWriter()
		data, err := w.Write(sampleRecords())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(string(data), "\ufeff"))
	})

	t.Run("quotes fields containing the delimiter", func(t *testing.T) {
		t.Parallel()

		w := csv.NewWriter(csv.WithoutBOM())
		data, err := w.Write(sampleRecords())
		require.NoError(t, err)

		assert.Contains(t, string(data), `"Fragrância amadeirada, intensa"`)
	})
}

func TestReadRecords(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a record set by column name", func(t *testing.T) {
		t.Parallel()

		original := sampleRecords()
		data, err := csv.NewWriter().Write(original)
		require.NoError(t, err)

		restored, err := csv.ReadRecords(data)
		require.NoError(t, err)
		assert.Equal(t, original, restored)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadRecords(nil)
		require.Error(t, err)
		assert.Equal(t, vitrine.EINVALID, vitrine.ErrorCode(err))
	})

	t.Run("tolerates reordered columns", func(t *testing.T) {
		t.Parallel()

		data := []byte("Price,Name\nR$ 10.00,Sabonete\n")

		records, err := csv.ReadRecords(data)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Sabonete", records[0].Name)
		assert.Equal(t, "R$ 10.00", records[0].Price)
		assert.Empty(t, records[0].Code)
	})
}
