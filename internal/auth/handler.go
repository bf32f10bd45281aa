// AngelaMos | 2026
// handler.go

package auth

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

// RegisterRoutes mounts the auth endpoints. publicLimit throttles the
// unauthenticated routes more tightly than the global limiter.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, publicLimit func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		if publicLimit != nil {
			r.Use(publicLimit)
		}
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Put("/reset-password", h.ResetPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/revocation", h.Revocation)
		r.Put("/new-password", h.NewPassword)
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.WithToken(w, "login successful", result.Token, result.Account)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	account, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, "user registered", account)
}

func (h *Handler) Revocation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		core.HandleError(w, r, core.AuthenticationError("authentication required"))
		return
	}

	if err := h.service.Revoke(r.Context(), userID); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "tokens revoked", nil)
}

func (h *Handler) NewPassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		core.HandleError(w, r, core.AuthenticationError("authentication required"))
		return
	}

	var req NewPasswordRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), userID, req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "password updated, please sign in again", nil)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "if an account exists for this email, a reset link has been sent", nil)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := core.DecodeJSON(r, h.validator, &req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "password reset", nil)
}
