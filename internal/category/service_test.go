// AngelaMos | 2026
// service_test.go

package category

import (
	"context"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type link struct{ album, category int64 }

type fakeRepo struct {
	categories map[int64]*Category
	albums     map[int64]core.AlbumSummary
	links      map[link]bool
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories: map[int64]*Category{},
		albums:     map[int64]core.AlbumSummary{10: {ID: 10, Name: "Openings", Status: "public"}},
		links:      map[link]bool{},
	}
}

func (f *fakeRepo) List(context.Context) ([]Category, error) {
	var out []Category
	for _, id := range slices.Sorted(maps.Keys(f.categories)) {
		out = append(out, *f.categories[id])
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetByName(_ context.Context, name string) (*Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, c *Category) error {
	if _, err := f.GetByName(context.Background(), c.Name); err == nil {
		return core.ErrDuplicateKey
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, c *Category) error {
	if other, err := f.GetByName(context.Background(), c.Name); err == nil && other.ID != c.ID {
		return core.ErrDuplicateKey
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	for l := range f.links {
		if l.category == id {
			delete(f.links, l)
		}
	}
	return nil
}

func (f *fakeRepo) AlbumsFor(_ context.Context, ids []int64) (map[int64][]core.AlbumSummary, error) {
	out := map[int64][]core.AlbumSummary{}
	for l := range f.links {
		if slices.Contains(ids, l.category) {
			out[l.category] = append(out[l.category], f.albums[l.album])
		}
	}
	return out, nil
}

func (f *fakeRepo) AlbumExists(_ context.Context, albumID int64) (bool, error) {
	_, ok := f.albums[albumID]
	return ok, nil
}

func (f *fakeRepo) Attach(_ context.Context, albumID, categoryID int64) error {
	l := link{albumID, categoryID}
	if f.links[l] {
		return core.ErrDuplicateKey
	}
	f.links[l] = true
	return nil
}

func (f *fakeRepo) Detach(_ context.Context, albumID, categoryID int64) error {
	l := link{albumID, categoryID}
	if !f.links[l] {
		return core.ErrNotFound
	}
	delete(f.links, l)
	return nil
}

func message(t *testing.T, err error) string {
	t.Helper()

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Message
}

func TestListEmptyIsNotFound(t *testing.T) {
	_, err := NewService(newFakeRepo()).List(context.Background())
	assert.Equal(t, "categories not found", message(t, err))
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryRequest{Name: "Anime"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCategoryRequest{Name: "Anime"})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.Equal(t, "name already exists", message(t, err))
}

func TestAssignByNameAndID(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	anime, err := svc.Create(ctx, CreateCategoryRequest{Name: "Anime"})
	require.NoError(t, err)

	got, err := svc.AttachToAlbum(ctx, 10, "Anime")
	require.NoError(t, err)
	require.Len(t, got.Albums, 1)
	assert.Equal(t, int64(10), got.Albums[0].ID)

	_, err = svc.AttachToAlbum(ctx, 10, "1")
	assert.Equal(t, "album already has category Anime", message(t, err))

	_, err = svc.AttachToAlbum(ctx, 11, "Anime")
	assert.Equal(t, "album not found", message(t, err))

	_, err = svc.AttachToAlbum(ctx, 10, "Manga")
	assert.Equal(t, "category not found", message(t, err))

	_, err = svc.AttachToAlbum(ctx, 10, "  ")
	assert.ErrorIs(t, err, core.ErrBadRequest)

	detached, err := svc.DetachFromAlbum(ctx, 10, "1")
	require.NoError(t, err)
	assert.Equal(t, anime.ID, detached.ID)
	assert.Empty(t, detached.Albums)

	_, err = svc.DetachFromAlbum(ctx, 10, "Anime")
	assert.Equal(t, "album category not found", message(t, err))
}

func TestUpdateByName(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryRequest{Name: "Anime"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCategoryRequest{Name: "Films"})
	require.NoError(t, err)

	name := "Films"
	_, err = svc.Update(ctx, core.Param{Key: "Anime"}, UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)

	name = "Animation"
	got, err := svc.Update(ctx, core.Param{Key: "Anime"}, UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Animation", got.Name)

	require.NoError(t, svc.Delete(ctx, core.Param{ID: got.ID}))
	_, err = svc.Get(ctx, core.Param{Key: "Animation"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
