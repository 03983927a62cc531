package vitrine

// Product represents one extracted product record.
//
// Every field is always present; Name is the only field whose absence
// invalidates the record. Extractors drop nameless records instead of
// emitting them with a placeholder.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price"` // canonical currency form, or PriceUnavailable
	Code        string `json:"code"`  // SKU or internal identifier, empty if absent
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ProductURL  string `json:"productUrl"` // canonical link, falls back to the source URL
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	return nil
}

// Extractor turns a fetched page into product records.
//
// Extract must be a pure function of its inputs: no retained state, no
// side effects, safe for concurrent use. A page that parses but yields
// no usable records produces an empty slice and a nil error so callers
// can distinguish "nothing found" from a failure.
type Extractor interface {
	Extract(sourceURL string, html string) ([]*Product, error)
}

// RecordWriter serializes product records into a tabular byte buffer.
type RecordWriter interface {
	// Write returns the serialized table. Zero records yield an
	// ENOTFOUND error rather than an empty buffer, so the caller can
	// distinguish "nothing found" from an empty but valid file.
	Write(records []*Product) ([]byte, error)
}
