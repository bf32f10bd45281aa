// AngelaMos | 2026
// handler.go

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/tierhub/internal/core"
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
	authenticator, members, staff func(http.Handler) http.Handler,
) {
	r.Get("/category", h.ListCategories)
	r.Get("/category/{param}", h.GetCategory)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.With(staff).Post("/category", h.CreateCategory)
		r.With(staff).Put("/category/{param}", h.UpdateCategory)
		r.With(staff).Delete("/category/{param}", h.DeleteCategory)

		r.With(members).Post("/album/{param}/category", h.AttachCategory)
		r.With(members).Delete("/album/{param}/category", h.DetachCategory)
	})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "categories found", ToCategoryResponseList(categories))
}

// GetCategory accepts a numeric id or a category name.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	c, err := h.service.Get(r.Context(), param)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "category found", ToCategoryResponse(c))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "category created", ToCategoryResponse(c))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateCategoryRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	c, err := h.service.Update(r.Context(), param, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "category updated", ToCategoryResponse(c))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), param); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "category deleted", nil)
}

func (h *Handler) AttachCategory(w http.ResponseWriter, r *http.Request) {
	albumID, req, ok := h.albumCategoryInput(w, r)
	if !ok {
		return
	}

	c, err := h.service.AttachToAlbum(r.Context(), albumID, req.Category)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "category added to album", ToCategoryResponse(c))
}

func (h *Handler) DetachCategory(w http.ResponseWriter, r *http.Request) {
	albumID, req, ok := h.albumCategoryInput(w, r)
	if !ok {
		return
	}

	c, err := h.service.DetachFromAlbum(r.Context(), albumID, req.Category)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "category removed from album", ToCategoryResponse(c))
}

func (h *Handler) albumCategoryInput(
	w http.ResponseWriter,
	r *http.Request,
) (int64, AlbumCategoryRequest, bool) {
	var req AlbumCategoryRequest

	albumID, err := core.ParseID(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return 0, req, false
	}

	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return 0, req, false
	}

	return albumID, req, true
}
