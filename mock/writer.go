package mock

import "github.com/rmaia/vitrine"

var _ vitrine.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of vitrine.RecordWriter.
type RecordWriter struct {
	WriteFn func(records []*vitrine.Product) ([]byte, error)
}

func (w *RecordWriter) Write(records []*vitrine.Product) ([]byte, error) {
	return w.WriteFn(records)
}
