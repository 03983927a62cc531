package mock

import "github.com/rmaia/vitrine"

var _ vitrine.Converter = (*Converter)(nil)

// Converter is a mock implementation of vitrine.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
