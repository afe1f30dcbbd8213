// Package blob stores signup image attachments and hands back opaque
// reference strings. The user record keeps the refs; the bytes live on disk
// or in an S3-compatible bucket depending on configuration.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/covercell/covercell/pkg/idx"
)

// Storage writes attachment content under a generated key and returns the
// reference to persist.
type Storage interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}

// NewKey builds a date-partitioned storage key for an uploaded file. The
// ULID prefix keeps keys unique even for identical filenames in one request.
func NewKey(filename string, now time.Time) string {
	base := sanitizeFilename(filename)
	return fmt.Sprintf("uploads/%04d/%02d/%02d/%s-%s",
		now.Year(), now.Month(), now.Day(), idx.New().String(), base)
}

// sanitizeFilename strips any path components and characters that have no
// business in a storage key. Empty or fully-stripped names become "upload".
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	s := strings.Trim(b.String(), ".")
	if s == "" {
		return "upload"
	}
	return s
}
