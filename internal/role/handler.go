// AngelaMos | 2026
// handler.go

package role

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/user"
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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/role", h.ListRoles)
		r.Get("/role/{param}", h.GetRole)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/role", h.CreateRole)
			r.Put("/role/{param}", h.UpdateRole)
			r.Delete("/role/{param}", h.DeleteRole)

			r.Post("/user/{param}/role", h.AssignRole)
			r.Delete("/user/{param}/role/{param2}", h.RemoveRole)
		})
	})
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "roles found", ToRoleResponseList(roles))
}

func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	role, err := h.service.Get(r.Context(), param)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "role found", ToRoleResponse(role))
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	role, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "role created", ToRoleResponse(role))
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateRoleRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	role, err := h.service.Update(r.Context(), param, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "role updated", ToRoleResponse(role))
}

func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseNameParam(chi.URLParam(r, "param"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), param); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "role deleted", nil)
}

func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	target, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req AssignRoleRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	u, err := h.service.AssignToUser(r.Context(), target, req.Role)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "role assigned", user.ToUserResponse(u))
}

func (h *Handler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	target, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	u, err := h.service.RemoveFromUser(r.Context(), target, chi.URLParam(r, "param2"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "role removed", user.ToUserResponse(u))
}
