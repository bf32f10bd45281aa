// AngelaMos | 2026
// handler.go

package ranking

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
	r.Get("/ranking", h.ListRankings)
	r.Get("/ranking/{id}", h.GetRanking)
	r.Get("/album/{param}/ranking", h.ListAlbumRankings)
	r.Get("/ranking/image", h.ListImages)
	r.Get("/ranking/image/{id}", h.GetImage)

	r.Group(func(r chi.Router) {
		r.Use(authenticator, members)

		r.Post("/ranking", h.CreateRanking)
		r.Put("/ranking/{id}", h.UpdateRanking)
		r.Delete("/ranking/{id}", h.DeleteRanking)

		r.Post("/ranking/image", h.CreateImage)
		r.Put("/ranking/image/{id}", h.UpdateImage)
		r.Delete("/ranking/image/{id}", h.DeleteImage)
	})
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "rankings found", ToRankingResponseList(rankings))
}

func (h *Handler) ListAlbumRankings(w http.ResponseWriter, r *http.Request) {
	albumID, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	rankings, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "rankings found", ToRankingResponseList(rankings))
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	rk, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking found", ToRankingResponse(rk))
}

func (h *Handler) CreateRanking(w http.ResponseWriter, r *http.Request) {
	var req CreateRankingRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	rk, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "ranking created", ToRankingResponse(rk))
}

func (h *Handler) UpdateRanking(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateRankingRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	rk, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking updated", ToRankingResponse(rk))
}

func (h *Handler) DeleteRanking(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking deleted", nil)
}

func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListImages(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking images found", ToImageResponseList(images))
}

func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	img, err := h.service.GetImage(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking image found", ToImageResponse(img))
}

func (h *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	var req CreateImageRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	img, err := h.service.CreateImage(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "ranking image created", ToImageResponse(img))
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

	img, err := h.service.UpdateImage(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking image updated", ToImageResponse(img))
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "ranking image deleted", nil)
}
