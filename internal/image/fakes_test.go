// AngelaMos | 2026
// fakes_test.go

package image

import (
	"context"
	"errors"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/carterperez-dev/tierhub/internal/core"
)

const testBase = "https://cdn.tierhub.test"

type fakeRepo struct {
	images    map[int64]*Image
	albums    map[int64]bool
	createErr error
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{images: map[int64]*Image{}, albums: map[int64]bool{1: true}}
}

func (f *fakeRepo) filter(keep func(Image) bool) []Image {
	var out []Image
	for _, id := range slices.Sorted(maps.Keys(f.images)) {
		if keep(*f.images[id]) {
			out = append(out, *f.images[id])
		}
	}
	return out
}

func (f *fakeRepo) List(context.Context) ([]Image, error) {
	return f.filter(func(Image) bool { return true }), nil
}

func (f *fakeRepo) ListByAlbum(_ context.Context, albumID int64) ([]Image, error) {
	return f.filter(func(img Image) bool { return img.AlbumID == albumID }), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, img *Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	img.ID = f.nextID
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, img *Image) error {
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.images, id)
	return nil
}

func (f *fakeRepo) AlbumExists(_ context.Context, albumID int64) (bool, error) {
	return f.albums[albumID], nil
}

type fakeBucket struct {
	objects   map[string]string
	types     map[string]string
	deleteErr error
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: map[string]string{}, types: map[string]string{}}
}

func (b *fakeBucket) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	b.objects[key] = string(data)
	b.types[key] = contentType
	return testBase + "/" + key, nil
}

func (b *fakeBucket) Delete(_ context.Context, key string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	if _, ok := b.objects[key]; !ok {
		return errors.New("no such object")
	}
	delete(b.objects, key)
	return nil
}

func (b *fakeBucket) KeyFromURL(publicURL string) (string, bool) {
	key, ok := strings.CutPrefix(publicURL, testBase+"/")
	return key, ok && key != ""
}
