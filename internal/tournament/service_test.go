// AngelaMos | 2026
// service_test.go

package tournament

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/core"
)

func TestEmptyListsAreNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.ListImages(ctx)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.ListOponents(ctx)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreateRequiresAlbum(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), 1, CreateTournamentRequest{Name: "x", AlbumID: 9})

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "album not found", appErr.Message)
}

func TestCreateAndGetNestsImagesAndOponents(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	tid, entries := repo.seed(1, 2)
	_, err := svc.CreateOponent(ctx, CreateOponentRequest{
		TournamentImageID: entries[0],
		OponentID:         entries[1],
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, tid)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	require.Len(t, got.Images[0].Oponents, 1)
	assert.Equal(t, entries[1], got.Images[0].Oponents[0].OponentID)
	assert.Empty(t, got.Images[1].Oponents)

	created, err := svc.Create(ctx, 7, CreateTournamentRequest{Name: "Round two", AlbumID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Empty(t, created.Images)

	byAlbum, err := svc.ListByAlbum(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byAlbum, 2)

	_, err = svc.ListByAlbum(ctx, 2)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSelfOponentRejectedBeforeLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	for _, id := range []int64{1, 55, 9999} {
		_, err := svc.CreateOponent(context.Background(), CreateOponentRequest{
			TournamentImageID: id,
			OponentID:         id,
		})

		var appErr *core.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.StatusCode)
		assert.ErrorIs(t, err, core.ErrBadRequest)
	}

	assert.Zero(t, repo.calls)
}

func TestCreateOponentChecks(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, first := repo.seed(1, 2)
	_, other := repo.seed(1, 1)

	tests := []struct {
		name    string
		req     CreateOponentRequest
		message string
	}{
		{
			name:    "missing own image",
			req:     CreateOponentRequest{TournamentImageID: 1, OponentID: first[0]},
			message: "tournament image not found",
		},
		{
			name:    "missing oponent",
			req:     CreateOponentRequest{TournamentImageID: first[0], OponentID: 1},
			message: "oponent not found",
		},
		{
			name:    "different tournament",
			req:     CreateOponentRequest{TournamentImageID: first[0], OponentID: other[0]},
			message: "oponents must belong to the same tournament",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOponent(ctx, tt.req)

			var appErr *core.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	assert.Empty(t, repo.oponents)
}

func TestUpdateOponent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, entries := repo.seed(1, 3)
	o, err := svc.CreateOponent(ctx, CreateOponentRequest{
		TournamentImageID: entries[0],
		OponentID:         entries[1],
	})
	require.NoError(t, err)

	_, err = svc.UpdateOponent(ctx, o.ID, UpdateOponentRequest{OponentID: entries[0]})
	assert.ErrorIs(t, err, core.ErrBadRequest)

	updated, err := svc.UpdateOponent(ctx, o.ID, UpdateOponentRequest{OponentID: entries[2]})
	require.NoError(t, err)
	assert.Equal(t, entries[2], updated.OponentID)

	_, err = svc.UpdateOponent(ctx, 1, UpdateOponentRequest{OponentID: entries[2]})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreateImageRequiresImageAndTournament(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	tid, _ := repo.seed(1, 0)
	repo.rows[tableImages][50] = true

	_, err := svc.CreateImage(ctx, CreateImageRequest{ImageID: 51, TournamentID: tid})
	assert.ErrorContains(t, err, "image not found")

	_, err = svc.CreateImage(ctx, CreateImageRequest{ImageID: 50, TournamentID: 4242})
	assert.ErrorContains(t, err, "tournament not found")

	img, err := svc.CreateImage(ctx, CreateImageRequest{ImageID: 50, TournamentID: tid, Place: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Place)
	assert.Empty(t, img.Oponents)
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	tid, entries := repo.seed(1, 1)

	turn := 4
	got, err := svc.Update(ctx, tid, UpdateTournamentRequest{Turn: &turn})
	require.NoError(t, err)
	assert.Equal(t, "Best of", got.Name)
	assert.Equal(t, 4, got.Turn)

	lose := true
	img, err := svc.UpdateImage(ctx, entries[0], UpdateImageRequest{Lose: &lose})
	require.NoError(t, err)
	assert.True(t, img.Lose)
	assert.Equal(t, tid, img.TournamentID)
}

func TestDeleteCascadesToOponents(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	tid, entries := repo.seed(1, 2)
	o, err := svc.CreateOponent(ctx, CreateOponentRequest{
		TournamentImageID: entries[0],
		OponentID:         entries[1],
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tid))

	_, err = svc.Get(ctx, tid)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.GetImage(ctx, entries[0])
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = svc.GetOponent(ctx, o.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, tid), core.ErrNotFound)
}
