// AngelaMos | 2026
// service.go

package category

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

func (s *Service) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, core.NotFoundError("categories")
	}
	return s.withAlbums(ctx, categories)
}

// Get resolves a category by id or name and includes its albums.
func (s *Service) Get(ctx context.Context, p core.Param) (*Category, error) {
	c, err := s.find(ctx, p)
	if err != nil {
		return nil, err
	}

	categories, err := s.withAlbums(ctx, []Category{*c})
	if err != nil {
		return nil, err
	}
	return &categories[0], nil
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	c := &Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("name")
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, p core.Param, req UpdateCategoryRequest) (*Category, error) {
	c, err := s.find(ctx, p)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("name")
		}
		return nil, err
	}
	return s.Get(ctx, core.Param{ID: c.ID})
}

func (s *Service) Delete(ctx context.Context, p core.Param) error {
	c, err := s.find(ctx, p)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

// AttachToAlbum tags an album with the category named by id or name.
func (s *Service) AttachToAlbum(ctx context.Context, albumID int64, ref string) (*Category, error) {
	c, err := s.resolveForAlbum(ctx, albumID, ref)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Attach(ctx, albumID, c.ID); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.BadRequestError("album already has category " + c.Name)
		}
		return nil, err
	}

	return s.Get(ctx, core.Param{ID: c.ID})
}

func (s *Service) DetachFromAlbum(ctx context.Context, albumID int64, ref string) (*Category, error) {
	c, err := s.resolveForAlbum(ctx, albumID, ref)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Detach(ctx, albumID, c.ID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("album category")
		}
		return nil, err
	}

	return s.Get(ctx, core.Param{ID: c.ID})
}

func (s *Service) resolveForAlbum(ctx context.Context, albumID int64, ref string) (*Category, error) {
	p, err := core.ParseNameParam(ref)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.AlbumExists(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, core.NotFoundError("album")
	}

	return s.find(ctx, p)
}

func (s *Service) find(ctx context.Context, p core.Param) (*Category, error) {
	var (
		c   *Category
		err error
	)
	if p.IsID() {
		c, err = s.repo.GetByID(ctx, p.ID)
	} else {
		c, err = s.repo.GetByName(ctx, p.Key)
	}

	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("category")
	}
	return c, err
}

func (s *Service) withAlbums(ctx context.Context, categories []Category) ([]Category, error) {
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	albums, err := s.repo.AlbumsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].Albums = albums[categories[i].ID]
	}
	return categories, nil
}
