// AngelaMos | 2026
// gcs.go

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/carterperez-dev/tierhub/internal/config"
)

const defaultPublicBase = "https://storage.googleapis.com"

type GCSBucket struct {
	client     *storage.Client
	bucket     string
	publicBase string
}

func NewGCSBucket(ctx context.Context, cfg config.StorageConfig) (*GCSBucket, error) {
	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = defaultPublicBase + "/" + cfg.Bucket
	}

	return &GCSBucket{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: base,
	}, nil
}

func (b *GCSBucket) Upload(
	ctx context.Context,
	key, contentType string,
	body io.Reader,
) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := b.client.Bucket(b.bucket).Object(key).NewWriter(ctx)
	writer.ContentType = contentType
	writer.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(writer, body); err != nil {
		// canceling before Close aborts the upload so no partial object lands
		cancel()
		//nolint:errcheck // the copy error is the one worth reporting
		_ = writer.Close()
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", key, err)
	}

	return b.publicBase + "/" + key, nil
}

// Delete treats an already missing object as deleted.
func (b *GCSBucket) Delete(ctx context.Context, key string) error {
	err := b.client.Bucket(b.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (b *GCSBucket) KeyFromURL(publicURL string) (string, bool) {
	key, ok := strings.CutPrefix(publicURL, b.publicBase+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func (b *GCSBucket) Close() error {
	return b.client.Close()
}
