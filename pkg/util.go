package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"go.uber.org/multierr"
)

// GenerateRandomBytes returns securely generated random bytes,
// or an error if the system's secure random source fails.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string.
func GenerateRandomString(s int) (string, error) {
	b, err := GenerateRandomBytes(s)
	return base64.URLEncoding.EncodeToString(b), err
}

type CombinedWriter struct {
	Writers []io.Writer
}

// NewCombinedWriter returns a writer that duplicates its writes
// to all provided writers, e.g. a log file and stdout.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

// Write writes to all writers, even if some of them fail.
// The returned n is the total number of bytes written across
// all writers, and err combines the errors of the failed ones.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	n = 0
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
