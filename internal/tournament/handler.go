// AngelaMos | 2026
// handler.go

package tournament

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
	r.Get("/tournament", h.ListTournaments)
	r.Get("/tournament/{id}", h.GetTournament)
	r.Get("/album/{param}/tournament", h.ListAlbumTournaments)
	r.Get("/tournament/image", h.ListImages)
	r.Get("/tournament/image/{id}", h.GetImage)
	r.Get("/tournament/image/oponent", h.ListOponents)
	r.Get("/tournament/image/oponent/{id}", h.GetOponent)

	r.Group(func(r chi.Router) {
		r.Use(authenticator, members)

		r.Post("/tournament", h.CreateTournament)
		r.Put("/tournament/{id}", h.UpdateTournament)
		r.Delete("/tournament/{id}", h.DeleteTournament)

		r.Post("/tournament/image", h.CreateImage)
		r.Put("/tournament/image/{id}", h.UpdateImage)
		r.Delete("/tournament/image/{id}", h.DeleteImage)

		r.Post("/tournament/image/oponent", h.CreateOponent)
		r.Put("/tournament/image/oponent/{id}", h.UpdateOponent)
		r.Delete("/tournament/image/oponent/{id}", h.DeleteOponent)
	})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournaments found", ToTournamentResponseList(tournaments))
}

func (h *Handler) ListAlbumTournaments(w http.ResponseWriter, r *http.Request) {
	albumID, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	tournaments, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournaments found", ToTournamentResponseList(tournaments))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	tournament, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournament found", ToTournamentResponse(tournament))
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req CreateTournamentRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	tournament, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "tournament created", ToTournamentResponse(tournament))
}

func (h *Handler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateTournamentRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	tournament, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournament updated", ToTournamentResponse(tournament))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournament deleted", nil)
}

func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListImages(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tournament images found", ToImageResponseList(images))
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

	core.OK(w, "tournament image found", ToImageResponse(img))
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

	core.Created(w, "tournament image created", ToImageResponse(img))
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

	core.OK(w, "tournament image updated", ToImageResponse(img))
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

	core.OK(w, "tournament image deleted", nil)
}

func (h *Handler) ListOponents(w http.ResponseWriter, r *http.Request) {
	oponents, err := h.service.ListOponents(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "oponents found", ToOponentResponseList(oponents))
}

func (h *Handler) GetOponent(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	o, err := h.service.GetOponent(r.Context(), id)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "oponent found", ToOponentResponse(o))
}

func (h *Handler) CreateOponent(w http.ResponseWriter, r *http.Request) {
	var req CreateOponentRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	o, err := h.service.CreateOponent(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "oponent created", ToOponentResponse(o))
}

func (h *Handler) UpdateOponent(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateOponentRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	o, err := h.service.UpdateOponent(r.Context(), id, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "oponent updated", ToOponentResponse(o))
}

func (h *Handler) DeleteOponent(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.DeleteOponent(r.Context(), id); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "oponent deleted", nil)
}
