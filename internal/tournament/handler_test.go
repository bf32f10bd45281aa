// AngelaMos | 2026
// handler_test.go

package tournament

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/middleware"
)

type tokenVerifier struct{}

func (tokenVerifier) VerifyAccessToken(_ context.Context, token string) (*middleware.AccessTokenClaims, error) {
	if token != "member" {
		return nil, core.ErrTokenInvalid
	}
	return &middleware.AccessTokenClaims{UserID: 3, Roles: []string{middleware.RoleUser}}, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(repo *fakeRepo) http.Handler {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r,
		middleware.Authenticator(tokenVerifier{}),
		middleware.RequireRole(middleware.RoleUser),
	)
	return r
}

func do(t *testing.T, h http.Handler, method, path, token, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestReadsArePublic(t *testing.T) {
	repo := newFakeRepo()
	tid, _ := repo.seed(1, 1)
	h := newRouter(repo)

	code, env := do(t, h, http.MethodGet, "/tournament", "", "")
	require.Equal(t, http.StatusOK, code)

	var list []TournamentResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, tid, list[0].ID)
	require.Len(t, list[0].Images, 1)

	code, _ = do(t, h, http.MethodGet, "/tournament/image/oponent", "", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodGet, "/tournament/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWritesNeedAMember(t *testing.T) {
	h := newRouter(newFakeRepo())

	code, _ := do(t, h, http.MethodPost, "/tournament", "", `{"name":"x","id_album":1}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, h, http.MethodPost, "/tournament", "forged", `{"name":"x","id_album":1}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCreateOponentOverHTTP(t *testing.T) {
	repo := newFakeRepo()
	_, entries := repo.seed(1, 2)
	h := newRouter(repo)

	code, env := do(t, h, http.MethodPost, "/tournament/image/oponent", "member",
		`{"id_tournament_image":77,"id_oponent":77}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "a tournament image cannot be its own oponent", env.Message)

	code, env = do(t, h, http.MethodPost, "/tournament/image/oponent", "member",
		`{"id_tournament_image":`+itoa(entries[0])+`,"id_oponent":`+itoa(entries[1])+`}`)
	require.Equal(t, http.StatusCreated, code)

	var o OponentResponse
	require.NoError(t, json.Unmarshal(env.Data, &o))
	assert.Equal(t, entries[0], o.TournamentImageID)
	assert.Equal(t, entries[1], o.OponentID)

	code, env = do(t, h, http.MethodGet, "/tournament/image/"+itoa(entries[0]), "", "")
	require.Equal(t, http.StatusOK, code)

	var img ImageResponse
	require.NoError(t, json.Unmarshal(env.Data, &img))
	require.Len(t, img.Oponents, 1)
}

func TestCreateTournamentStampsAuthor(t *testing.T) {
	repo := newFakeRepo()
	repo.rows[tableAlbums][1] = true
	h := newRouter(repo)

	code, _ := do(t, h, http.MethodPost, "/tournament", "member", `{"name":"Finals"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := do(t, h, http.MethodPost, "/tournament", "member", `{"name":"Finals","id_album":1}`)
	require.Equal(t, http.StatusCreated, code)

	var got TournamentResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Finals", got.Name)
	assert.Equal(t, int64(3), repo.tournaments[got.ID].UserID)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
