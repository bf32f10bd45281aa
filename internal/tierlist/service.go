// AngelaMos | 2026
// service.go

package tierlist

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

func (s *Service) List(ctx context.Context) ([]Tierlist, error) {
	tierlists, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withLines(ctx, tierlists)
}

func (s *Service) ListByAlbum(ctx context.Context, albumID int64) ([]Tierlist, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", albumID); err != nil {
		return nil, err
	}

	tierlists, err := s.repo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return s.withLines(ctx, tierlists)
}

func (s *Service) Get(ctx context.Context, id int64) (*Tierlist, error) {
	tierlist, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	tierlists, err := s.withLines(ctx, []Tierlist{*tierlist})
	if err != nil {
		return nil, err
	}
	return &tierlists[0], nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateTierlistRequest) (*Tierlist, error) {
	if err := s.mustExist(ctx, tableAlbums, "album", req.AlbumID); err != nil {
		return nil, err
	}

	tierlist := &Tierlist{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
		AlbumID:     req.AlbumID,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, tierlist); err != nil {
		return nil, err
	}

	return s.Get(ctx, tierlist.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTierlistRequest) (*Tierlist, error) {
	tierlist, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tierlist.Name = *req.Name
	}
	if req.Description != nil {
		tierlist.Description = req.Description
	}
	if req.Private != nil {
		tierlist.Private = *req.Private
	}

	if err := s.repo.Update(ctx, tierlist); err != nil {
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

func (s *Service) ListLines(ctx context.Context) ([]Line, error) {
	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, core.NotFoundError("tierlist lines")
	}
	return s.withImages(ctx, lines)
}

func (s *Service) GetLine(ctx context.Context, id int64) (*Line, error) {
	line, err := s.findLine(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.withImages(ctx, []Line{*line})
	if err != nil {
		return nil, err
	}
	return &lines[0], nil
}

func (s *Service) CreateLine(ctx context.Context, req CreateLineRequest) (*Line, error) {
	if err := s.mustExist(ctx, tableTierlists, "tierlist", req.TierlistID); err != nil {
		return nil, err
	}

	line := &Line{
		Label:      req.Label,
		Placement:  *req.Placement,
		Color:      req.Color,
		TierlistID: req.TierlistID,
	}
	if err := s.repo.CreateLine(ctx, line); err != nil {
		return nil, err
	}

	return s.GetLine(ctx, line.ID)
}

func (s *Service) UpdateLine(ctx context.Context, id int64, req UpdateLineRequest) (*Line, error) {
	line, err := s.findLine(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		line.Label = *req.Label
	}
	if req.Placement != nil {
		line.Placement = *req.Placement
	}
	if req.Color != nil {
		line.Color = *req.Color
	}

	if err := s.repo.UpdateLine(ctx, line); err != nil {
		return nil, err
	}

	return s.GetLine(ctx, id)
}

func (s *Service) DeleteLine(ctx context.Context, id int64) error {
	if _, err := s.findLine(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteLine(ctx, id)
}

func (s *Service) ListLineImages(ctx context.Context) ([]LineImage, error) {
	images, err := s.repo.ListLineImages(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, core.NotFoundError("tierlist line images")
	}
	return images, nil
}

func (s *Service) GetLineImage(ctx context.Context, id int64) (*LineImage, error) {
	li, err := s.repo.GetLineImage(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("tierlist line image")
	}
	return li, err
}

func (s *Service) CreateLineImage(ctx context.Context, req CreateLineImageRequest) (*LineImage, error) {
	if err := s.mustExist(ctx, tableImages, "image", req.ImageID); err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, tableLines, "tierlist line", req.LineID); err != nil {
		return nil, err
	}

	li := &LineImage{
		Placement: *req.Placement,
		Disable:   req.Disable,
		ImageID:   req.ImageID,
		LineID:    req.LineID,
	}
	if err := s.repo.CreateLineImage(ctx, li); err != nil {
		return nil, err
	}

	return s.GetLineImage(ctx, li.ID)
}

func (s *Service) UpdateLineImage(
	ctx context.Context,
	id int64,
	req UpdateLineImageRequest,
) (*LineImage, error) {
	li, err := s.GetLineImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LineID != nil && *req.LineID != li.LineID {
		if err := s.mustExist(ctx, tableLines, "tierlist line", *req.LineID); err != nil {
			return nil, err
		}
		li.LineID = *req.LineID
	}
	if req.Placement != nil {
		li.Placement = *req.Placement
	}
	if req.Disable != nil {
		li.Disable = *req.Disable
	}

	if err := s.repo.UpdateLineImage(ctx, li); err != nil {
		return nil, err
	}

	return s.GetLineImage(ctx, id)
}

func (s *Service) DeleteLineImage(ctx context.Context, id int64) error {
	if _, err := s.GetLineImage(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteLineImage(ctx, id)
}

func (s *Service) find(ctx context.Context, id int64) (*Tierlist, error) {
	tierlist, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("tierlist")
	}
	return tierlist, err
}

func (s *Service) findLine(ctx context.Context, id int64) (*Line, error) {
	line, err := s.repo.GetLine(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("tierlist line")
	}
	return line, err
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

func (s *Service) withLines(ctx context.Context, tierlists []Tierlist) ([]Tierlist, error) {
	if len(tierlists) == 0 {
		return nil, core.NotFoundError("tierlists")
	}

	ids := make([]int64, 0, len(tierlists))
	for _, t := range tierlists {
		ids = append(ids, t.ID)
	}

	lines, err := s.repo.LinesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		if lines, err = s.withImages(ctx, lines); err != nil {
			return nil, err
		}
	}

	byTierlist := make(map[int64][]Line, len(tierlists))
	for _, l := range lines {
		byTierlist[l.TierlistID] = append(byTierlist[l.TierlistID], l)
	}
	for i := range tierlists {
		tierlists[i].Lines = byTierlist[tierlists[i].ID]
	}
	return tierlists, nil
}

func (s *Service) withImages(ctx context.Context, lines []Line) ([]Line, error) {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}

	images, err := s.repo.LineImagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	byLine := make(map[int64][]LineImage, len(lines))
	for _, li := range images {
		byLine[li.LineID] = append(byLine[li.LineID], li)
	}
	for i := range lines {
		lines[i].Images = byLine[lines[i].ID]
	}
	return lines, nil
}
