// AngelaMos | 2026
// service.go

package tournament

import (
	"context"
	"errors"

	"github.com/carterperez-dev/tierhub/internal/core"
)

var (
	errSelfOponent  = core.BadRequestError("a tournament image cannot be its own oponent")
	errCrossOponent = core.BadRequestError("oponents must belong to the same tournament")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Tournament, error) {
	tournaments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, tournaments)
}

func (s *Service) ListByAlbum(ctx context.Context, albumID int64) ([]Tournament, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", albumID); err != nil {
		return nil, err
	}

	tournaments, err := s.repo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return s.withImages(ctx, tournaments)
}

func (s *Service) Get(ctx context.Context, id int64) (*Tournament, error) {
	tournament, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	tournaments, err := s.withImages(ctx, []Tournament{*tournament})
	if err != nil {
		return nil, err
	}
	return &tournaments[0], nil
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateTournamentRequest,
) (*Tournament, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", req.AlbumID); err != nil {
		return nil, err
	}

	tournament := &Tournament{
		Name:        req.Name,
		Description: req.Description,
		Turn:        req.Turn,
		Private:     req.Private,
		AlbumID:     req.AlbumID,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	return s.Get(ctx, tournament.ID)
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateTournamentRequest,
) (*Tournament, error) {
	tournament, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tournament.Name = *req.Name
	}
	if req.Description != nil {
		tournament.Description = req.Description
	}
	if req.Turn != nil {
		tournament.Turn = *req.Turn
	}
	if req.Private != nil {
		tournament.Private = *req.Private
	}

	if err := s.repo.Update(ctx, tournament); err != nil {
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
		return nil, core.NotFoundError("tournament images")
	}
	return s.withOponents(ctx, images)
}

func (s *Service) GetImage(ctx context.Context, id int64) (*Image, error) {
	img, err := s.findImage(ctx, id, "tournament image")
	if err != nil {
		return nil, err
	}

	images, err := s.withOponents(ctx, []Image{*img})
	if err != nil {
		return nil, err
	}
	return &images[0], nil
}

func (s *Service) CreateImage(ctx context.Context, req CreateImageRequest) (*Image, error) {
	if err := s.mustExist(ctx, tableImages, "image", req.ImageID); err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, tableTournaments, "tournament", req.TournamentID); err != nil {
		return nil, err
	}

	img := &Image{
		Lose:         req.Lose,
		Place:        req.Place,
		Turn:         req.Turn,
		Disable:      req.Disable,
		ImageID:      req.ImageID,
		TournamentID: req.TournamentID,
	}
	if err := s.repo.CreateImage(ctx, img); err != nil {
		return nil, err
	}

	return s.GetImage(ctx, img.ID)
}

func (s *Service) UpdateImage(ctx context.Context, id int64, req UpdateImageRequest) (*Image, error) {
	img, err := s.findImage(ctx, id, "tournament image")
	if err != nil {
		return nil, err
	}

	if req.Lose != nil {
		img.Lose = *req.Lose
	}
	if req.Place != nil {
		img.Place = *req.Place
	}
	if req.Turn != nil {
		img.Turn = *req.Turn
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
	if _, err := s.findImage(ctx, id, "tournament image"); err != nil {
		return err
	}
	return s.repo.DeleteImage(ctx, id)
}

func (s *Service) ListOponents(ctx context.Context) ([]Oponent, error) {
	oponents, err := s.repo.ListOponents(ctx)
	if err != nil {
		return nil, err
	}
	if len(oponents) == 0 {
		return nil, core.NotFoundError("oponents")
	}
	return oponents, nil
}

func (s *Service) GetOponent(ctx context.Context, id int64) (*Oponent, error) {
	o, err := s.repo.GetOponent(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("oponent")
	}
	return o, err
}

// CreateOponent rejects a self pairing before touching the database.
func (s *Service) CreateOponent(ctx context.Context, req CreateOponentRequest) (*Oponent, error) {
	if req.OponentID == req.TournamentImageID {
		return nil, errSelfOponent
	}
	if err := s.checkPair(ctx, req.TournamentImageID, req.OponentID); err != nil {
		return nil, err
	}

	o := &Oponent{
		TournamentImageID: req.TournamentImageID,
		OponentID:         req.OponentID,
	}
	if err := s.repo.CreateOponent(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) UpdateOponent(
	ctx context.Context,
	id int64,
	req UpdateOponentRequest,
) (*Oponent, error) {
	o, err := s.GetOponent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OponentID == o.TournamentImageID {
		return nil, errSelfOponent
	}
	if err := s.checkPair(ctx, o.TournamentImageID, req.OponentID); err != nil {
		return nil, err
	}

	o.OponentID = req.OponentID
	if err := s.repo.UpdateOponent(ctx, o); err != nil {
		return nil, err
	}

	return s.GetOponent(ctx, id)
}

func (s *Service) DeleteOponent(ctx context.Context, id int64) error {
	if _, err := s.GetOponent(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteOponent(ctx, id)
}

func (s *Service) checkPair(ctx context.Context, ownID, oponentID int64) error {
	own, err := s.findImage(ctx, ownID, "tournament image")
	if err != nil {
		return err
	}
	other, err := s.findImage(ctx, oponentID, "oponent")
	if err != nil {
		return err
	}
	if own.TournamentID != other.TournamentID {
		return errCrossOponent
	}
	return nil
}

func (s *Service) find(ctx context.Context, id int64) (*Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("tournament")
	}
	return tournament, err
}

func (s *Service) findImage(ctx context.Context, id int64, resource string) (*Image, error) {
	img, err := s.repo.GetImage(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError(resource)
	}
	return img, err
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

func (s *Service) withImages(ctx context.Context, tournaments []Tournament) ([]Tournament, error) {
	if len(tournaments) == 0 {
		return nil, core.NotFoundError("tournaments")
	}

	ids := make([]int64, 0, len(tournaments))
	for _, t := range tournaments {
		ids = append(ids, t.ID)
	}

	images, err := s.repo.ImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if images, err = s.withOponents(ctx, images); err != nil {
			return nil, err
		}
	}

	byTournament := make(map[int64][]Image, len(tournaments))
	for _, img := range images {
		byTournament[img.TournamentID] = append(byTournament[img.TournamentID], img)
	}
	for i := range tournaments {
		tournaments[i].Images = byTournament[tournaments[i].ID]
	}
	return tournaments, nil
}

func (s *Service) withOponents(ctx context.Context, images []Image) ([]Image, error) {
	ids := make([]int64, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.ID)
	}

	oponents, err := s.repo.OponentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	byImage := make(map[int64][]Oponent, len(images))
	for _, o := range oponents {
		byImage[o.TournamentImageID] = append(byImage[o.TournamentImageID], o)
	}
	for i := range images {
		images[i].Oponents = byImage[images[i].ID]
	}
	return images, nil
}
