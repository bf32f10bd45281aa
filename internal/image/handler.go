// AngelaMos | 2026
// handler.go

package image

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/tierhub/internal/core"
)

const (
	formFile         = "image"
	sniffLen         = 512
	defaultMaxUpload = 10 << 20
)

type Handler struct {
	service   *Service
	validator *validator.Validate
	maxUpload int64
}

func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUpload
	}
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
		maxUpload: maxUploadBytes,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, members func(http.Handler) http.Handler,
) {
	r.Get("/image", h.ListImages)
	r.Get("/image/{id}", h.GetImage)
	r.Get("/album/{param}/image", h.ListAlbumImages)

	r.Group(func(r chi.Router) {
		r.Use(authenticator, members)
		r.Post("/image", h.CreateImage)
		r.Put("/image/{id}", h.UpdateImage)
		r.Delete("/image/{id}", h.DeleteImage)
	})
}

func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "images found", ToImageResponseList(images))
}

func (h *Handler) ListAlbumImages(w http.ResponseWriter, r *http.Request) {
	albumID, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	images, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "images found", ToImageResponseList(images))
}

func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	img, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "image found", ToImageResponse(img))
}

// CreateImage reads a multipart form with the file under "image" and the
// fields name, description, url and id_album.
func (h *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			core.HandleError(w, r, core.BadRequestError("image is too large"))
			return
		}
		core.HandleError(w, r, core.BadRequestError("invalid multipart form"))
		return
	}
	defer func() {
		//nolint:errcheck // temp file cleanup is best-effort
		_ = r.MultipartForm.RemoveAll()
	}()

	req, err := readCreateForm(r)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}
	if err := core.Validate(h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	file, header, err := r.FormFile(formFile)
	if err != nil {
		core.HandleError(w, r, core.BadRequestError("image file is required"))
		return
	}
	defer file.Close()

	upload, err := toUpload(file, header)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	img, err := h.service.Create(r.Context(), req, upload)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "image created", ToImageResponse(img))
}

func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateImageRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	img, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "image updated", ToImageResponse(img))
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "image deleted", nil)
}

func readCreateForm(r *http.Request) (CreateImageRequest, error) {
	req := CreateImageRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: optional(r.FormValue("description")),
		URL:         optional(r.FormValue("url")),
	}

	rawAlbum := strings.TrimSpace(r.FormValue("id_album"))
	if rawAlbum == "" {
		return req, core.BadRequestError("id_album is required")
	}

	albumID, err := strconv.ParseInt(rawAlbum, 10, 64)
	if err != nil || albumID <= 0 {
		return req, core.BadRequestError("id_album must be a positive integer")
	}
	req.AlbumID = albumID

	return req, nil
}

// toUpload sniffs the content type from the first bytes so a client cannot
// store arbitrary files by lying in the part header.
func toUpload(file multipart.File, header *multipart.FileHeader) (Upload, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Upload{}, core.BadRequestError("image file could not be read")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return Upload{}, core.BadRequestError("file must be an image")
	}

	return Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	}, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
