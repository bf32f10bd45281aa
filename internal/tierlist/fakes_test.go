// AngelaMos | 2026
// fakes_test.go

package tierlist

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type fakeRepo struct {
	tierlists  map[int64]*Tierlist
	lines      map[int64]*Line
	lineImages map[int64]*LineImage
	rows       map[string]map[int64]bool
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tierlists:  map[int64]*Tierlist{},
		lines:      map[int64]*Line{},
		lineImages: map[int64]*LineImage{},
		rows: map[string]map[int64]bool{
			tableAlbums: {}, tableImages: {}, tableTierlists: {}, tableLines: {},
		},
	}
}

func (f *fakeRepo) id() int64 {
	f.nextID++
	return f.nextID
}

func values[T any](m map[int64]*T, keep func(T) bool, order func(a, b T) int) []T {
	var out []T
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if keep == nil || keep(*m[k]) {
			out = append(out, *m[k])
		}
	}
	if order != nil {
		slices.SortStableFunc(out, order)
	}
	return out
}

func byLinePlacement(a, b Line) int { return cmp.Compare(a.Placement, b.Placement) }

func (f *fakeRepo) List(context.Context) ([]Tierlist, error) {
	return values(f.tierlists, nil, nil), nil
}

func (f *fakeRepo) ListByAlbum(_ context.Context, albumID int64) ([]Tierlist, error) {
	return values(f.tierlists, func(t Tierlist) bool { return t.AlbumID == albumID }, nil), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Tierlist, error) {
	t, ok := f.tierlists[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, t *Tierlist) error {
	t.ID = f.id()
	cp := *t
	f.tierlists[t.ID] = &cp
	f.rows[tableTierlists][t.ID] = true
	return nil
}

func (f *fakeRepo) Update(_ context.Context, t *Tierlist) error {
	cp := *t
	f.tierlists[t.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.tierlists, id)
	delete(f.rows[tableTierlists], id)
	for lineID, l := range f.lines {
		if l.TierlistID == id {
			_ = f.DeleteLine(ctx, lineID)
		}
	}
	return nil
}

func (f *fakeRepo) ListLines(context.Context) ([]Line, error) {
	return values(f.lines, nil, nil), nil
}

func (f *fakeRepo) LinesFor(_ context.Context, ids []int64) ([]Line, error) {
	return values(f.lines, func(l Line) bool { return slices.Contains(ids, l.TierlistID) }, byLinePlacement), nil
}

func (f *fakeRepo) GetLine(_ context.Context, id int64) (*Line, error) {
	l, ok := f.lines[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeRepo) CreateLine(_ context.Context, l *Line) error {
	l.ID = f.id()
	cp := *l
	f.lines[l.ID] = &cp
	f.rows[tableLines][l.ID] = true
	return nil
}

func (f *fakeRepo) UpdateLine(_ context.Context, l *Line) error {
	cp := *l
	f.lines[l.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteLine(_ context.Context, id int64) error {
	delete(f.lines, id)
	delete(f.rows[tableLines], id)
	for liID, li := range f.lineImages {
		if li.LineID == id {
			delete(f.lineImages, liID)
		}
	}
	return nil
}

func (f *fakeRepo) ListLineImages(context.Context) ([]LineImage, error) {
	return values(f.lineImages, nil, nil), nil
}

func (f *fakeRepo) LineImagesFor(_ context.Context, ids []int64) ([]LineImage, error) {
	return values(f.lineImages, func(li LineImage) bool { return slices.Contains(ids, li.LineID) }, nil), nil
}

func (f *fakeRepo) GetLineImage(_ context.Context, id int64) (*LineImage, error) {
	li, ok := f.lineImages[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *li
	return &cp, nil
}

func (f *fakeRepo) CreateLineImage(_ context.Context, li *LineImage) error {
	li.ID = f.id()
	cp := *li
	f.lineImages[li.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateLineImage(_ context.Context, li *LineImage) error {
	cp := *li
	f.lineImages[li.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteLineImage(_ context.Context, id int64) error {
	delete(f.lineImages, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, table string, id int64) (bool, error) {
	return f.rows[table][id], nil
}
