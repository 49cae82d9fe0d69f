package handlers

import (
	"net/http"
	"strings"

	"github.com/croftbar/authd/internal/application/auth"
	"github.com/croftbar/authd/internal/domain"
	"github.com/croftbar/authd/internal/logger"
	"github.com/croftbar/authd/internal/transport/http/dto"
	"github.com/croftbar/authd/internal/transport/http/middleware"
	"github.com/croftbar/authd/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	l := logger.WithRequestID(response.RequestIDFromContext(r))
	l.Info().
		Str("user_id", res.User.ID).
		Msg("user_signed_up")

	response.Created(w, dto.TokenResponse{AccessToken: res.AccessToken})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	l := logger.WithRequestID(response.RequestIDFromContext(r))
	l.Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.TokenResponse{AccessToken: res.AccessToken})
}

// Protected echoes the authenticated user resolved by the route guard.
// Answers 201 on success; that status is part of the API contract for
// this route.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	response.Created(w, dto.NewUserView(u))
}
