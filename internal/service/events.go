package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// EventService owns events and enforces the cross-entity rules around
// them: time ordering, capacity, curator role and venue resolution.
type EventService struct {
	events EventStore
	users  UserStore
	rooms  RoomStore
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore, users UserStore, rooms RoomStore) *EventService {
	return &EventService{events: events, users: users, rooms: rooms}
}

// validate checks the rules that apply to a complete event record. The
// venue rule is deliberately one-sided: only the fully-empty combination
// (not external, no room, no location) is rejected.
func (s *EventService) validate(ctx context.Context, e *model.Event) error {
	if !e.EndTime.After(e.StartTime) {
		return apperr.InvalidState("end_time must be later than start_time")
	}
	if e.MaxParticipants != nil && *e.MaxParticipants <= 0 {
		return apperr.InvalidState("max_participants must be positive")
	}
	if _, err := s.users.GetByID(ctx, e.CreatorID); err != nil {
		return err
	}
	curator, err := s.users.GetByID(ctx, e.CuratorID)
	if err != nil {
		return err
	}
	if curator.Role != model.RoleCurator {
		return apperr.InvalidState("Assigned curator must have curator role")
	}
	if !e.IsExternalVenue && e.RoomID == nil && e.ExternalLocation == nil {
		return apperr.InvalidState("room_id or external_location required")
	}
	if e.RoomID != nil {
		if _, err := s.rooms.GetByID(ctx, *e.RoomID); err != nil {
			return err
		}
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, p model.CreateEventPayload) (*model.Event, error) {
	if p.Status == "" {
		p.Status = model.EventDraft
	}
	if p.EventType == "" {
		p.EventType = model.EventTypeStudent
	}
	candidate := &model.Event{
		Title:            p.Title,
		EventDate:        p.EventDate,
		StartTime:        p.StartTime,
		EndTime:          p.EndTime,
		MaxParticipants:  p.MaxParticipants,
		CreatorID:        p.CreatorID,
		CuratorID:        p.CuratorID,
		IsExternalVenue:  p.IsExternalVenue,
		RoomID:           p.RoomID,
		ExternalLocation: p.ExternalLocation,
	}
	if err := s.validate(ctx, candidate); err != nil {
		return nil, err
	}
	return s.events.Create(ctx, p)
}

func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	return s.events.List(ctx, f)
}

// Update merges the payload into the stored record and validates the
// merged result, so the curator role check runs on every update. An
// explicit null clears a nullable field and the venue rule then judges
// the merged record; an explicit null curator is rejected because an
// event can never lack one.
func (s *EventService) Update(ctx context.Context, id string, p model.UpdateEventPayload) (*model.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CuratorID.Set && p.CuratorID.Value == nil {
		return nil, apperr.InvalidState("curator_id is required")
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description.Set {
		e.Description = p.Description.Value
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.RegisteredCount != nil {
		e.RegisteredCount = *p.RegisteredCount
	}
	if p.MaxParticipants.Set {
		e.MaxParticipants = p.MaxParticipants.Value
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.CreatorID != nil {
		e.CreatorID = *p.CreatorID
	}
	if p.CuratorID.Set {
		e.CuratorID = *p.CuratorID.Value
	}
	if p.IsExternalVenue != nil {
		e.IsExternalVenue = *p.IsExternalVenue
	}
	if p.RoomID.Set {
		e.RoomID = p.RoomID.Value
	}
	if p.ExternalLocation.Set {
		e.ExternalLocation = p.ExternalLocation.Value
	}
	if p.NeedApproveCandidates != nil {
		e.NeedApproveCandidates = *p.NeedApproveCandidates
	}
	if err := s.validate(ctx, e); err != nil {
		return nil, err
	}
	return s.events.Update(ctx, e)
}

func (s *EventService) Delete(ctx context.Context, id string) (*model.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}
