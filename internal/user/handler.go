// AngelaMos | 2026
// handler.go

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/tierhub/internal/auth"
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
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.GetMe)
		r.Put("/me", h.UpdateMe)
		r.Delete("/me", h.DeleteMe)

		r.Get("/user", h.ListUsers)
		r.Get("/user/{param}", h.GetUser)
		r.With(adminOnly).Put("/user/{param}", h.UpdateUser)
		r.With(adminOnly).Delete("/user/{param}", h.DeleteUser)
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "users found", ToUserResponseList(users))
}

// GetUser accepts a numeric id or an @nametag.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	user, err := h.service.Get(r.Context(), param)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "user found", ToUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	user, err := h.service.Update(r.Context(), param, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "user updated", ToUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	param, err := core.ParseHandleParam(r, "param")
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), param); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "user deleted", nil)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "account found", toAccount(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateMeRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	user, err := h.service.UpdateMe(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "account updated", toAccount(user))
}

func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), core.Param{ID: id}); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "account deleted", nil)
}

func toAccount(u *User) auth.AccountResponse {
	return auth.ToAccountResponse(toUserInfo(u), u.RoleLabels())
}
