// AngelaMos | 2026
// handler.go

package album

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, members func(http.Handler) http.Handler,
) {
	r.Get("/album", h.ListAlbums)
	r.Get("/album/{param}", h.GetAlbum)

	r.Group(func(r chi.Router) {
		r.Use(authenticator, members)
		r.Post("/album", h.CreateAlbum)
		r.Put("/album/{param}", h.UpdateAlbum)
		r.Delete("/album/{param}", h.DeleteAlbum)
	})
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "albums found", ToAlbumResponseList(albums))
}

// GetAlbum returns one album by id, or every album of a user for @nametag.
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if !param.IsID() {
		albums, err := h.service.ListByNametag(r.Context(), param.Key)
		if err != nil {
			core.HandleError(w, r, err)
			return
		}
		core.OK(w, "albums found", ToAlbumResponseList(albums))
		return
	}

	album, err := h.service.Get(r.Context(), param.ID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "album found", ToAlbumResponse(album))
}

func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req CreateAlbumRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	album, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "album created", ToAlbumResponse(album))
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateAlbumRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	album, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "album updated", ToAlbumResponse(album))
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "album deleted", nil)
}
