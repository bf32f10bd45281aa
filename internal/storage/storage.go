// AngelaMos | 2026
// storage.go

package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("object storage bucket is not configured")

// Bucket stores image blobs and serves them from a public URL.
type Bucket interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(publicURL string) (string, bool)
}

// ObjectKey returns a random key that keeps the lower-cased extension of
// filename.
func ObjectKey(filename string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(filename))
}

// Unconfigured fails every operation. It stands in when no bucket is set so
// uploads fail loudly instead of silently dropping files.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Delete(context.Context, string) error {
	return ErrNotConfigured
}

func (Unconfigured) KeyFromURL(string) (string, bool) {
	return "", false
}
