package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var p model.RegisterPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.auth.Register(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var p model.LoginPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.Login(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

// Me returns the caller resolved by the bearer middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization header missing")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Refresh issues a fresh token for the caller.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization header missing")
		return
	}
	token, err := h.auth.Refresh(r.Context(), u)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}
