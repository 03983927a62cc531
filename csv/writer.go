// Package csv serializes product records as a CSV table with a fixed
// column order.
package csv

import (
	"bytes"
	stdcsv "encoding/csv"

	"github.com/rmaia/vitrine"
)

// Header is the canonical column order. Every serialized table starts
// with this row and every data row has exactly this many columns.
var Header = []string{"Name", "Price", "Code", "Description", "ImageUrl", "ProductUrl"}

// utf8BOM is the UTF-8 byte order mark. Prefixed so spreadsheet tools
// detect the encoding of accented product names.
const utf8BOM = "\ufeff"

// Ensure Writer implements vitrine.RecordWriter at compile time.
var _ vitrine.RecordWriter = (*Writer)(nil)

// Writer serializes product records to CSV.
type Writer struct {
	bom bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithoutBOM disables the UTF-8 byte order mark prefix.
func WithoutBOM() Option {
	return func(w *Writer) {
		w.bom = false
	}
}

// NewWriter creates a Writer. The BOM prefix is on by default.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{bom: true}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes the records as a CSV table: header row plus one row
// per record, six columns each with empty strings for absent fields.
// Zero records return an ENOTFOUND error instead of an empty buffer so
// callers can tell "nothing found" apart from an empty but valid file.
func (w *Writer) Write(records []*vitrine.Product) ([]byte, error) {
	if len(records) == 0 {
		return nil, vitrine.Errorf(vitrine.ENOTFOUND, "no products to serialize")
	}

	var buf bytes.Buffer
	if w.bom {
		buf.WriteString(utf8BOM)
	}

	cw := stdcsv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return nil, vitrine.Errorf(vitrine.EINTERNAL, "failed to write CSV header: %v", err)
	}
	for _, r := range records {
		row := []string{r.Name, r.Price, r.Code, r.Description, r.ImageURL, r.ProductURL}
		if err := cw.Write(row); err != nil {
			return nil, vitrine.Errorf(vitrine.EINTERNAL, "failed to write CSV row: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, vitrine.Errorf(vitrine.EINTERNAL, "failed to flush CSV: %v", err)
	}
	return buf.Bytes(), nil
}

// ReadRecords parses a serialized table back into records, matching
// columns by header name. Columns absent from the header read as empty
// strings.
func ReadRecords(data []byte) ([]*vitrine.Product, error) {
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	rows, err := stdcsv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, vitrine.Errorf(vitrine.EINVALID, "malformed CSV: %v", err)
	}
	if len(rows) == 0 {
		return nil, vitrine.Errorf(vitrine.EINVALID, "missing CSV header row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	get := func(row []string, column string) string {
		if i, ok := index[column]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	records := make([]*vitrine.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, &vitrine.Product{
			Name:        get(row, "Name"),
			Price:       get(row, "Price"),
			Code:        get(row, "Code"),
			Description: get(row, "Description"),
			ImageURL:    get(row, "ImageUrl"),
			ProductURL:  get(row, "ProductUrl"),
		})
	}
	return records, nil
}
