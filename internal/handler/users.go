package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// UserHandler serves /users and /users/profiles.
type UserHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.CreateUserPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.CreateUser(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := model.UserFilter{Offset: offset, Limit: limit}
	if raw := queryString(r, "role"); raw != nil {
		role, err := model.ParseUserRole(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Role = &role
	}
	users, err := h.users.ListUsers(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateUserPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.UpdateUser(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var p model.CreateUserProfilePayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	prof, err := h.users.CreateProfile(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, prof)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	prof, err := h.users.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

// GetProfileByUser resolves the profile attached to a user id.
func (h *UserHandler) GetProfileByUser(w http.ResponseWriter, r *http.Request) {
	prof, err := h.users.GetProfileByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

func (h *UserHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := model.UserProfileFilter{
		UserID: queryString(r, "user_id"),
		Offset: offset,
		Limit:  limit,
	}
	profiles, err := h.users.ListProfiles(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if profiles == nil {
		profiles = []model.UserProfile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateUserProfilePayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	prof, err := h.users.UpdateProfile(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	prof, err := h.users.DeleteProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}
