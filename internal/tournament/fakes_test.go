// AngelaMos | 2026
// fakes_test.go

package tournament

import (
	"context"
	"slices"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type fakeRepo struct {
	tournaments map[int64]*Tournament
	images      map[int64]*Image
	oponents    map[int64]*Oponent
	rows        map[string]map[int64]bool
	nextID      int64
	calls       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tournaments: map[int64]*Tournament{},
		images:      map[int64]*Image{},
		oponents:    map[int64]*Oponent{},
		rows: map[string]map[int64]bool{
			tableAlbums: {}, tableImages: {}, tableTournaments: {},
		},
		nextID: 100,
	}
}

func (f *fakeRepo) id() int64 {
	f.nextID++
	return f.nextID
}

// seed creates an album, a tournament and n entered images, returning the
// tournament id and the tournament image ids.
func (f *fakeRepo) seed(albumID int64, n int) (int64, []int64) {
	f.rows[tableAlbums][albumID] = true

	tid := f.id()
	f.tournaments[tid] = &Tournament{ID: tid, Name: "Best of", AlbumID: albumID, UserID: 1}
	f.rows[tableTournaments][tid] = true

	ids := make([]int64, 0, n)
	for range n {
		imageID := f.id()
		f.rows[tableImages][imageID] = true

		entryID := f.id()
		f.images[entryID] = &Image{ID: entryID, ImageID: imageID, TournamentID: tid}
		ids = append(ids, entryID)
	}
	return tid, ids
}

func sortedValues[T any](m map[int64]*T) []T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, *m[k])
	}
	return out
}

func (f *fakeRepo) List(context.Context) ([]Tournament, error) {
	f.calls++
	return sortedValues(f.tournaments), nil
}

func (f *fakeRepo) ListByAlbum(_ context.Context, albumID int64) ([]Tournament, error) {
	f.calls++
	var out []Tournament
	for _, t := range sortedValues(f.tournaments) {
		if t.AlbumID == albumID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Tournament, error) {
	f.calls++
	t, ok := f.tournaments[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, t *Tournament) error {
	f.calls++
	t.ID = f.id()
	cp := *t
	f.tournaments[t.ID] = &cp
	f.rows[tableTournaments][t.ID] = true
	return nil
}

func (f *fakeRepo) Update(_ context.Context, t *Tournament) error {
	f.calls++
	cp := *t
	f.tournaments[t.ID] = &cp
	return nil
}

// Delete cascades like the foreign keys do.
func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.calls++
	delete(f.tournaments, id)
	delete(f.rows[tableTournaments], id)
	for imgID, img := range f.images {
		if img.TournamentID == id {
			_ = f.DeleteImage(context.Background(), imgID)
		}
	}
	return nil
}

func (f *fakeRepo) ListImages(context.Context) ([]Image, error) {
	f.calls++
	return sortedValues(f.images), nil
}

func (f *fakeRepo) ImagesFor(_ context.Context, ids []int64) ([]Image, error) {
	f.calls++
	var out []Image
	for _, img := range sortedValues(f.images) {
		if slices.Contains(ids, img.TournamentID) {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetImage(_ context.Context, id int64) (*Image, error) {
	f.calls++
	img, ok := f.images[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeRepo) CreateImage(_ context.Context, img *Image) error {
	f.calls++
	img.ID = f.id()
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateImage(_ context.Context, img *Image) error {
	f.calls++
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteImage(_ context.Context, id int64) error {
	f.calls++
	delete(f.images, id)
	for oid, o := range f.oponents {
		if o.TournamentImageID == id || o.OponentID == id {
			delete(f.oponents, oid)
		}
	}
	return nil
}

func (f *fakeRepo) ListOponents(context.Context) ([]Oponent, error) {
	f.calls++
	return sortedValues(f.oponents), nil
}

func (f *fakeRepo) OponentsFor(_ context.Context, ids []int64) ([]Oponent, error) {
	f.calls++
	var out []Oponent
	for _, o := range sortedValues(f.oponents) {
		if slices.Contains(ids, o.TournamentImageID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetOponent(_ context.Context, id int64) (*Oponent, error) {
	f.calls++
	o, ok := f.oponents[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) CreateOponent(_ context.Context, o *Oponent) error {
	f.calls++
	o.ID = f.id()
	cp := *o
	f.oponents[o.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateOponent(_ context.Context, o *Oponent) error {
	f.calls++
	cp := *o
	f.oponents[o.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteOponent(_ context.Context, id int64) error {
	f.calls++
	delete(f.oponents, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, table string, id int64) (bool, error) {
	f.calls++
	return f.rows[table][id], nil
}
