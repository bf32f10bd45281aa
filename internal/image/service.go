// AngelaMos | 2026
// service.go

package image

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/observability"
	"github.com/carterperez-dev/tierhub/internal/storage"
)

type Service struct {
	repo    Repository
	bucket  storage.Bucket
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewService(
	repo Repository,
	bucket storage.Bucket,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:    repo,
		bucket:  bucket,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Image, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, core.NotFoundError("images")
	}
	return images, nil
}

func (s *Service) ListByAlbum(ctx context.Context, albumID int64) ([]Image, error) {
	if err := s.requireAlbum(ctx, albumID); err != nil {
		return nil, err
	}

	images, err := s.repo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, core.NotFoundError("images")
	}
	return images, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("image")
	}
	return img, err
}

// Create uploads the file under a random key and stores its public URL as
// path_image. The object is removed again if the row cannot be written.
func (s *Service) Create(ctx context.Context, req CreateImageRequest, file Upload) (*Image, error) {
	if err := s.requireAlbum(ctx, req.AlbumID); err != nil {
		return nil, err
	}

	key := storage.ObjectKey(file.Filename)

	publicURL, err := s.bucket.Upload(ctx, key, file.ContentType, file.Body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &Image{
		Name:        req.Name,
		PathImage:   publicURL,
		Description: req.Description,
		URL:         req.URL,
		AlbumID:     req.AlbumID,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		if delErr := s.bucket.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "orphaned image object",
				"key", key,
				"error", delErr,
			)
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ImagesUploaded.Inc()
	}

	return s.Get(ctx, img.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateImageRequest) (*Image, error) {
	img, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		img.Name = *req.Name
	}
	if req.Description != nil {
		img.Description = req.Description
	}
	if req.URL != nil {
		img.URL = req.URL
	}

	if err := s.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the stored object first. If the row delete then fails the
// object is already gone.
func (s *Service) Delete(ctx context.Context, id int64) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	key, ok := s.bucket.KeyFromURL(img.PathImage)
	if !ok {
		key = img.PathImage
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete image object: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) requireAlbum(ctx context.Context, albumID int64) error {
	ok, err := s.repo.AlbumExists(ctx, albumID)
	if err != nil {
		return err
	}
	if !ok {
		return core.NotFoundError("album")
	}
	return nil
}
