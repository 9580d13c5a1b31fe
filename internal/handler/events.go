package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/model"
	"github.com/campus-hub/campus-events/internal/service"
)

// EventHandler serves /events and its nested resources: categories,
// category mappings, registrations and applications.
type EventHandler struct {
	events        *service.EventService
	categories    *service.CategoryService
	registrations *service.RegistrationService
	applications  *service.ApplicationService
	logger        *zap.Logger
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(
	events *service.EventService,
	categories *service.CategoryService,
	registrations *service.RegistrationService,
	applications *service.ApplicationService,
	logger *zap.Logger,
) *EventHandler {
	return &EventHandler{
		events:        events,
		categories:    categories,
		registrations: registrations,
		applications:  applications,
		logger:        logger,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.events.Create(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := model.EventFilter{
		CreatorID: queryString(r, "creator_id"),
		CuratorID: queryString(r, "curator_id"),
		RoomID:    queryString(r, "room_id"),
		Offset:    offset,
		Limit:     limit,
	}
	if raw := queryString(r, "status"); raw != nil {
		status, err := model.ParseEventStatus(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Status = &status
	}
	if raw := queryString(r, "event_type"); raw != nil {
		t, err := model.ParseEventType(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.EventType = &t
	}
	if raw := queryString(r, "date_from"); raw != nil {
		d, err := model.ParseDate(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.DateFrom = &d
	}
	if raw := queryString(r, "date_to"); raw != nil {
		d, err := model.ParseDate(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.DateTo = &d
	}
	events, err := h.events.List(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.events.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	e, err := h.events.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EventHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventCategoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.categories.CreateCategory(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *EventHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *EventHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	categories, err := h.categories.ListCategories(r.Context(), model.EventCategoryFilter{
		Name:   queryString(r, "name"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if categories == nil {
		categories = []model.EventCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *EventHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventCategoryPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.categories.UpdateCategory(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *EventHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *EventHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventCategoryMappingPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.categories.CreateMapping(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *EventHandler) GetMapping(w http.ResponseWriter, r *http.Request) {
	m, err := h.categories.GetMapping(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *EventHandler) ListMappings(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mappings, err := h.categories.ListMappings(r.Context(), model.EventCategoryMappingFilter{
		EventID:    queryString(r, "event_id"),
		CategoryID: queryString(r, "category_id"),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if mappings == nil {
		mappings = []model.EventCategoryMapping{}
	}
	writeJSON(w, http.StatusOK, mappings)
}

func (h *EventHandler) UpdateMapping(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventCategoryMappingPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.categories.UpdateMapping(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *EventHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	m, err := h.categories.DeleteMapping(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *EventHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventRegistrationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reg, err := h.registrations.Create(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (h *EventHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *EventHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	regs, err := h.registrations.List(r.Context(), model.EventRegistrationFilter{
		EventID: queryString(r, "event_id"),
		UserID:  queryString(r, "user_id"),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if regs == nil {
		regs = []model.EventRegistration{}
	}
	writeJSON(w, http.StatusOK, regs)
}

func (h *EventHandler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventRegistrationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reg, err := h.registrations.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *EventHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrations.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *EventHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var p model.CreateEventApplicationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	app, err := h.applications.Create(r.Context(), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *EventHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.applications.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *EventHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := listParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := model.EventApplicationFilter{
		EventID:     queryString(r, "event_id"),
		ApplicantID: queryString(r, "applicant_id"),
		Offset:      offset,
		Limit:       limit,
	}
	if raw := queryString(r, "status"); raw != nil {
		status, err := model.ParseApplicationStatus(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Status = &status
	}
	apps, err := h.applications.List(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if apps == nil {
		apps = []model.EventApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *EventHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var p model.UpdateEventApplicationPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	app, err := h.applications.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *EventHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.applications.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
