// AngelaMos | 2026
// service.go

package album

import (
	"context"
	"errors"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Album, error) {
	albums, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withRelations(ctx, albums)
}

// ListByNametag resolves the user first so an unknown nametag and a user
// without albums are reported differently.
func (s *Service) ListByNametag(ctx context.Context, nametag string) ([]Album, error) {
	userID, err := s.repo.UserIDByNametag(ctx, nametag)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user")
		}
		return nil, err
	}

	albums, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withRelations(ctx, albums)
}

func (s *Service) Get(ctx context.Context, id int64) (*Album, error) {
	album, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	albums, err := s.withRelations(ctx, []Album{*album})
	if err != nil {
		return nil, err
	}
	return &albums[0], nil
}

// Create assigns the album to the authenticated user.
func (s *Service) Create(ctx context.Context, userID int64, req CreateAlbumRequest) (*Album, error) {
	status := req.Status
	if status == "" {
		status = StatusPrivate
	}

	album := &Album{
		Name:   req.Name,
		Status: status,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, album); err != nil {
		return nil, err
	}

	return s.Get(ctx, album.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateAlbumRequest) (*Album, error) {
	album, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		album.Name = *req.Name
	}
	if req.Status != nil {
		album.Status = *req.Status
	}

	if err := s.repo.Update(ctx, album); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) find(ctx context.Context, id int64) (*Album, error) {
	album, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("album")
	}
	return album, err
}

func (s *Service) withRelations(ctx context.Context, albums []Album) ([]Album, error) {
	if len(albums) == 0 {
		return nil, core.NotFoundError("albums")
	}

	ids := make([]int64, 0, len(albums))
	for _, a := range albums {
		ids = append(ids, a.ID)
	}

	categories, err := s.repo.CategoriesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	images, err := s.repo.ImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range albums {
		albums[i].Categories = categories[albums[i].ID]
		albums[i].Images = images[albums[i].ID]
	}
	return albums, nil
}
