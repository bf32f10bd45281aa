// AngelaMos | 2026
// service.go

package ranking

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

func (s *Service) List(ctx context.Context) ([]Ranking, error) {
	rankings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, rankings)
}

func (s *Service) ListByAlbum(ctx context.Context, albumID int64) ([]Ranking, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", albumID); err != nil {
		return nil, err
	}

	rankings, err := s.repo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, rankings)
}

func (s *Service) Get(ctx context.Context, id int64) (*Ranking, error) {
	rk, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	rankings, err := s.withImages(ctx, []Ranking{*rk})
	if err != nil {
		return nil, err
	}
	return &rankings[0], nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRankingRequest) (*Ranking, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", req.AlbumID); err != nil {
		return nil, err
	}

	rk := &Ranking{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
		AlbumID:     req.AlbumID,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, rk); err != nil {
		return nil, err
	}

	return s.Get(ctx, rk.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRankingRequest) (*Ranking, error) {
	rk, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rk.Name = *req.Name
	}
	if req.Description != nil {
		rk.Description = req.Description
	}
	if req.Private != nil {
		rk.Private = *req.Private
	}

	if err := s.repo.Update(ctx, rk); err != nil {
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

func (s *Service) ListImages(ctx context.Context) ([]Image, error) {
	images, err := s.repo.ListImages(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, core.NotFoundError("ranking images")
	}
	return images, nil
}

func (s *Service) GetImage(ctx context.Context, id int64) (*Image, error) {
	img, err := s.repo.GetImage(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("ranking image")
	}
	return img, err
}

func (s *Service) CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error) {
	if err := s.mustExist(ctx, tableImages, "image", req.ImageID); err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, tableRankings, "ranking", req.RankingID); err != nil {
		return nil, err
	}

	img := &Image{
		Points:    req.Points,
		Viewed:    req.Viewed,
		Disable:   req.Disable,
		ImageID:   req.ImageID,
		RankingID: req.RankingID,
	}
	if err := s.repo.CreateImage(ctx, img); err != nil {
		return nil, err
	}

	return s.GetImage(ctx, img.ID)
}

func (s *Service) UpdateImage(ctx context.Context, id int64, req UpdateImageRequest) (*Image, error) {
	img, err := s.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Points != nil {
		img.Points = *req.Points
	}
	if req.Viewed != nil {
		img.Viewed = *req.Viewed
	}
	if req.Disable != nil {
		img.Disable = *req.Disable
	}

	if err := s.repo.UpdateImage(ctx, img); err != nil {
		return nil, err
	}

	return s.GetImage(ctx, id)
}

func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	if _, err := s.GetImage(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteImage(ctx, id)
}

func (s *Service) find(ctx context.Context, id int64) (*Ranking, error) {
	rk, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("ranking")
	}
	return rk, err
}

func (s *Service) mustExist(ctx context.Context, table, resource string, id int64) error {
	ok, err := s.repo.Exists(ctx, table, id)
	if err != nil {
		return err
	}
	if !ok {
		return core.NotFoundError(resource)
	}
	return nil
}

func (s *Service) withImages(ctx context.Context, rankings []Ranking) ([]Ranking, error) {
	if len(rankings) == 0 {
		return nil, core.NotFoundError("rankings")
	}

	ids := make([]int64, 0, len(rankings))
	for _, rk := range rankings {
		ids = append(ids, rk.ID)
	}

	images, err := s.repo.ImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRanking := make(map[int64][]Image, len(rankings))
	for _, img := range images {
		byRanking[img.RankingID] = append(byRanking[img.RankingID], img)
	}
	for i := range rankings {
		rankings[i].Images = byRanking[rankings[i].ID]
	}
	return rankings, nil
}
