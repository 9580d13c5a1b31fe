package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// ModerationHandler serves /moderation, the role-gated audit trail routes.
type ModerationHandler struct {
	moderation *service.ModerationService
	logger     *zap.Logger
}

// NewModerationHandler constructs a ModerationHandler.
func NewModerationHandler(moderation *service.ModerationService, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{moderation: moderation, logger: logger}
}

func (h *ModerationHandler) CreateEventHistory(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventModerationHistoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.moderation.CreateEventHistory(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *ModerationHandler) GetEventHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.moderation.GetEventHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ModerationHandler) ListEventHistory(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := h.moderation.ListEventHistory(r.Context(), model.EventModerationHistoryFilter{
		EventID:   queryString(r, "event_id"),
		CuratorID: queryString(r, "curator_id"),
		Offset:    offset,
		Limit:     limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if records == nil {
		records = []model.EventModerationHistory{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ModerationHandler) UpdateEventHistory(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventModerationHistoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.moderation.UpdateEventHistory(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ModerationHandler) DeleteEventHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.moderation.DeleteEventHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ModerationHandler) CreateApplicationHistory(w http.ResponseWriter, r *http.Request) {
	var p model.CreateApplicationHistoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.moderation.CreateApplicationHistory(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *ModerationHandler) GetApplicationHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.moderation.GetApplicationHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ModerationHandler) ListApplicationHistory(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := h.moderation.ListApplicationHistory(r.Context(), model.ApplicationHistoryFilter{
		ApplicationID: queryString(r, "application_id"),
		ModeratorID:   queryString(r, "moderator_id"),
		Offset:        offset,
		Limit:         limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if records == nil {
		records = []model.ApplicationHistory{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ModerationHandler) UpdateApplicationHistory(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateApplicationHistoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.moderation.UpdateApplicationHistory(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ModerationHandler) DeleteApplicationHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.moderation.DeleteApplicationHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
