package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// RoomHandler serves /rooms.
type RoomHandler struct {
	rooms  *service.RoomService
	logger *zap.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{rooms: rooms, logger: logger}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.CreateRoomPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	room, err := h.rooms.Create(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	room, err := h.rooms.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	isAvailable, err := queryBool(r, "is_available")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rooms, err := h.rooms.List(r.Context(), model.RoomFilter{
		IsAvailable: isAvailable,
		Offset:      offset,
		Limit:       limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateRoomPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	room, err := h.rooms.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	room, err := h.rooms.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}
