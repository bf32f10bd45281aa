// AngelaMos | 2026
// handler.go

package tierlist

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

// RegisterRoutes mounts the tierlist tree. The static /tierlist/line paths
// take precedence over /tierlist/{id} in chi's router.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, members func(http.Handler) http.Handler,
) {
	r.Get("/tierlist", h.ListTierlists)
	r.Get("/tierlist/{id}", h.GetTierlist)
	r.Get("/album/{param}/tierlist", h.ListAlbumTierlists)
	r.Get("/tierlist/line", h.ListLines)
	r.Get("/tierlist/line/{id}", h.GetLine)
	r.Get("/tierlist/line/image", h.ListLineImages)
	r.Get("/tierlist/line/image/{id}", h.GetLineImage)

	r.Group(func(r chi.Router) {
		r.Use(authenticator, members)

		r.Post("/tierlist", h.CreateTierlist)
		r.Put("/tierlist/{id}", h.UpdateTierlist)
		r.Delete("/tierlist/{id}", h.DeleteTierlist)

		r.Post("/tierlist/line", h.CreateLine)
		r.Put("/tierlist/line/{id}", h.UpdateLine)
		r.Delete("/tierlist/line/{id}", h.DeleteLine)

		r.Post("/tierlist/line/image", h.CreateLineImage)
		r.Put("/tierlist/line/image/{id}", h.UpdateLineImage)
		r.Delete("/tierlist/line/image/{id}", h.DeleteLineImage)
	})
}

func (h *Handler) ListTierlists(w http.ResponseWriter, r *http.Request) {
	tierlists, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlists found", ToTierlistResponseList(tierlists))
}

func (h *Handler) ListAlbumTierlists(w http.ResponseWriter, r *http.Request) {
	albumID, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	tierlists, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlists found", ToTierlistResponseList(tierlists))
}

func (h *Handler) GetTierlist(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	tierlist, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist found", ToTierlistResponse(tierlist))
}

func (h *Handler) CreateTierlist(w http.ResponseWriter, r *http.Request) {
	var req CreateTierlistRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	tierlist, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "tierlist created", ToTierlistResponse(tierlist))
}

func (h *Handler) UpdateTierlist(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateTierlistRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	tierlist, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist updated", ToTierlistResponse(tierlist))
}

func (h *Handler) DeleteTierlist(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist deleted", nil)
}

func (h *Handler) ListLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.ListLines(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist lines found", ToLineResponseList(lines))
}

func (h *Handler) GetLine(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	line, err := h.service.GetLine(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line found", ToLineResponse(line))
}

func (h *Handler) CreateLine(w http.ResponseWriter, r *http.Request) {
	var req CreateLineRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	line, err := h.service.CreateLine(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "tierlist line created", ToLineResponse(line))
}

func (h *Handler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateLineRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	line, err := h.service.UpdateLine(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line updated", ToLineResponse(line))
}

func (h *Handler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.DeleteLine(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line deleted", nil)
}

func (h *Handler) ListLineImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListLineImages(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line images found", ToLineImageResponseList(images))
}

func (h *Handler) GetLineImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	li, err := h.service.GetLineImage(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line image found", ToLineImageResponse(li))
}

func (h *Handler) CreateLineImage(w http.ResponseWriter, r *http.Request) {
	var req CreateLineImageRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	li, err := h.service.CreateLineImage(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "tierlist line image created", ToLineImageResponse(li))
}

func (h *Handler) UpdateLineImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateLineImageRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	li, err := h.service.UpdateLineImage(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line image updated", ToLineImageResponse(li))
}

func (h *Handler) DeleteLineImage(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.DeleteLineImage(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tierlist line image deleted", nil)
}
