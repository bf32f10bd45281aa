// AngelaMos | 2026
// service_test.go

package ranking

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type fakeRepo struct {
	rankings map[int64]*Ranking
	images   map[int64]*Image
	rows     map[string]map[int64]bool
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rankings: map[int64]*Ranking{},
		images:   map[int64]*Image{},
		rows: map[string]map[int64]bool{
			tableAlbums: {1: true}, tableImages: {900: true, 901: true}, tableRankings: {},
		},
	}
}

func (f *fakeRepo) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) rankingList(keep func(Ranking) bool) []Ranking {
	var out []Ranking
	for _, k := range slices.Sorted(maps.Keys(f.rankings)) {
		if keep(*f.rankings[k]) {
			out = append(out, *f.rankings[k])
		}
	}
	return out
}

func (f *fakeRepo) imageList(keep func(Image) bool) []Image {
	var out []Image
	for _, k := range slices.Sorted(maps.Keys(f.images)) {
		if keep(*f.images[k]) {
			out = append(out, *f.images[k])
		}
	}
	return out
}

func (f *fakeRepo) List(context.Context) ([]Ranking, error) {
	return f.rankingList(func(Ranking) bool { return true }), nil
}

func (f *fakeRepo) ListByAlbum(_ context.Context, albumID int64) ([]Ranking, error) {
	return f.rankingList(func(rk Ranking) bool { return rk.AlbumID == albumID }), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Ranking, error) {
	rk, ok := f.rankings[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *rk
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, rk *Ranking) error {
	rk.ID = f.id()
	cp := *rk
	f.rankings[rk.ID] = &cp
	f.rows[tableRankings][rk.ID] = true
	return nil
}

func (f *fakeRepo) Update(_ context.Context, rk *Ranking) error {
	cp := *rk
	f.rankings[rk.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.rankings, id)
	delete(f.rows[tableRankings], id)
	for imgID, img := range f.images {
		if img.RankingID == id {
			delete(f.images, imgID)
		}
	}
	return nil
}

func (f *fakeRepo) ListImages(context.Context) ([]Image, error) {
	return f.imageList(func(Image) bool { return true }), nil
}

// ImagesFor orders by points, highest first, like the SQL does.
func (f *fakeRepo) ImagesFor(_ context.Context, ids []int64) ([]Image, error) {
	out := f.imageList(func(img Image) bool { return slices.Contains(ids, img.RankingID) })
	slices.SortStableFunc(out, func(a, b Image) int { return cmp.Compare(b.Points, a.Points) })
	return out, nil
}

func (f *fakeRepo) GetImage(_ context.Context, id int64) (*Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeRepo) CreateImage(_ context.Context, img *Image) error {
	img.ID = f.id()
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateImage(_ context.Context, img *Image) error {
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteImage(_ context.Context, id int64) error {
	delete(f.images, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, table string, id int64) (bool, error) {
	return f.rows[table][id], nil
}

func TestRankingEmptyCollections(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.ListImages(context.Background())
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRankingForeignKeys(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateRankingRequest{Name: "Top", AlbumID: 2})
	assert.EqualError(t, err, "album not found: resource not found")

	_, err = svc.CreateImage(ctx, CreateImageRequest{ImageID: 5, RankingID: 1})
	assert.ErrorContains(t, err, "image not found")

	_, err = svc.CreateImage(ctx, CreateImageRequest{ImageID: 900, RankingID: 77})
	assert.ErrorContains(t, err, "ranking not found")
}

func TestRankingImagesOrderedByPoints(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rk, err := svc.Create(ctx, 2, CreateRankingRequest{Name: "Top", AlbumID: 1})
	require.NoError(t, err)

	low, err := svc.CreateImage(ctx, CreateImageRequest{Points: 3, ImageID: 900, RankingID: rk.ID})
	require.NoError(t, err)
	_, err = svc.CreateImage(ctx, CreateImageRequest{Points: 8, ImageID: 901, RankingID: rk.ID})
	require.NoError(t, err)

	got, err := svc.Get(ctx, rk.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, int64(901), got.Images[0].ImageID)

	points := 20
	_, err = svc.UpdateImage(ctx, low.ID, UpdateImageRequest{Points: &points})
	require.NoError(t, err)

	got, err = svc.Get(ctx, rk.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.Images[0].ImageID)
	assert.Equal(t, 20, got.Images[0].Points)
}

func TestRankingDeleteCascades(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rk, err := svc.Create(ctx, 2, CreateRankingRequest{Name: "Top", AlbumID: 1})
	require.NoError(t, err)
	img, err := svc.CreateImage(ctx, CreateImageRequest{ImageID: 900, RankingID: rk.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rk.ID))

	_, err = svc.GetImage(ctx, img.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, rk.ID), core.ErrNotFound)
}
