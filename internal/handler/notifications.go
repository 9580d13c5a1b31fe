package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// NotificationHandler serves /notifications.
type NotificationHandler struct {
	notifications *service.NotificationService
	logger        *zap.Logger
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.CreateNotificationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.notifications.Create(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := model.NotificationFilter{
		UserID: queryString(r, "user_id"),
		Offset: offset,
		Limit:  limit,
	}
	if raw := queryString(r, "type"); raw != nil {
		t, err := model.ParseNotificationType(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Type = &t
	}
	isRead, err := queryBool(r, "is_read")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f.IsRead = isRead
	notifications, err := h.notifications.List(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateNotificationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.notifications.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
