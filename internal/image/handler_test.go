// AngelaMos | 2026
// handler_test.go

package image

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/core"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func passthrough(next http.Handler) http.Handler { return next }

func newRouter(repo *fakeRepo, bucket *fakeBucket, maxUpload int64) http.Handler {
	r := chi.NewRouter()
	NewHandler(NewService(repo, bucket, nil, nil), maxUpload).
		RegisterRoutes(r, passthrough, passthrough)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile(formFile, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func post(t *testing.T, h http.Handler, body *bytes.Buffer, contentType string) (int, core.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env core.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestCreateImageUpload(t *testing.T) {
	repo, bucket := newFakeRepo(), newFakeBucket()
	h := newRouter(repo, bucket, 0)

	body, ct := multipartBody(t, map[string]string{"name": "cover", "id_album": "1"}, "cover.png", pngHeader)
	code, env := post(t, h, body, ct)

	require.Equal(t, http.StatusCreated, code, env.Message)
	require.Len(t, bucket.objects, 1)
	for key := range bucket.objects {
		assert.Equal(t, "image/png", bucket.types[key])
		assert.Equal(t, string(pngHeader), bucket.objects[key])
	}
}

func TestCreateImageRejections(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		filename string
		content  []byte
		message  string
	}{
		{
			name:     "not an image",
			fields:   map[string]string{"name": "notes", "id_album": "1"},
			filename: "notes.png",
			content:  []byte("just some text pretending to be a picture"),
			message:  "file must be an image",
		},
		{
			name:    "missing file",
			fields:  map[string]string{"name": "cover", "id_album": "1"},
			message: "image file is required",
		},
		{
			name:     "missing album",
			fields:   map[string]string{"name": "cover"},
			filename: "cover.png",
			content:  pngHeader,
			message:  "id_album is required",
		},
		{
			name:     "bad album",
			fields:   map[string]string{"name": "cover", "id_album": "x"},
			filename: "cover.png",
			content:  pngHeader,
			message:  "id_album must be a positive integer",
		},
		{
			name:     "missing name",
			fields:   map[string]string{"id_album": "1"},
			filename: "cover.png",
			content:  pngHeader,
			message:  "Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := newFakeBucket()
			h := newRouter(newFakeRepo(), bucket, 0)

			body, ct := multipartBody(t, tt.fields, tt.filename, tt.content)
			code, env := post(t, h, body, ct)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.message, env.Message)
			assert.Empty(t, bucket.objects)
		})
	}
}

func TestCreateImageTooLarge(t *testing.T) {
	h := newRouter(newFakeRepo(), newFakeBucket(), 1024)

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 4096)...)
	body, ct := multipartBody(t, map[string]string{"name": "cover", "id_album": "1"}, "cover.png", big)
	code, env := post(t, h, body, ct)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "image is too large", env.Message)
}
