package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/model"
)

// ModerationService owns the two audit trails. History rows are plain
// records: writing one never changes the status of the event or the
// application it points at.
type ModerationService struct {
	eventHistory       EventModerationHistoryStore
	applicationHistory ApplicationHistoryStore
	events             EventStore
	applications       EventApplicationStore
	users              UserStore
}

// NewModerationService constructs a ModerationService.
func NewModerationService(
	eventHistory EventModerationHistoryStore,
	applicationHistory ApplicationHistoryStore,
	events EventStore,
	applications EventApplicationStore,
	users UserStore,
) *ModerationService {
	return &ModerationService{
		eventHistory:       eventHistory,
		applicationHistory: applicationHistory,
		events:             events,
		applications:       applications,
		users:              users,
	}
}

func (s *ModerationService) CreateEventHistory(ctx context.Context, p model.CreateEventModerationHistoryPayload) (*model.EventModerationHistory, error) {
	if _, err := s.events.GetByID(ctx, p.EventID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, p.CuratorID); err != nil {
		return nil, err
	}
	return s.eventHistory.Create(ctx, p)
}

func (s *ModerationService) GetEventHistory(ctx context.Context, id string) (*model.EventModerationHistory, error) {
	return s.eventHistory.GetByID(ctx, id)
}

func (s *ModerationService) ListEventHistory(ctx context.Context, f model.EventModerationHistoryFilter) ([]model.EventModerationHistory, error) {
	return s.eventHistory.List(ctx, f)
}

func (s *ModerationService) UpdateEventHistory(ctx context.Context, id string, p model.UpdateEventModerationHistoryPayload) (*model.EventModerationHistory, error) {
	h, err := s.eventHistory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Action != nil {
		h.Action = *p.Action
	}
	if p.Comment.Set {
		h.Comment = p.Comment.Value
	}
	return s.eventHistory.Update(ctx, h)
}

func (s *ModerationService) DeleteEventHistory(ctx context.Context, id string) (*model.EventModerationHistory, error) {
	h, err := s.eventHistory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventHistory.Delete(ctx, id); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *ModerationService) CreateApplicationHistory(ctx context.Context, p model.CreateApplicationHistoryPayload) (*model.ApplicationHistory, error) {
	if _, err := s.applications.GetByID(ctx, p.ApplicationID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, p.ModeratorID); err != nil {
		return nil, err
	}
	return s.applicationHistory.Create(ctx, p)
}

func (s *ModerationService) GetApplicationHistory(ctx context.Context, id string) (*model.ApplicationHistory, error) {
	return s.applicationHistory.GetByID(ctx, id)
}

func (s *ModerationService) ListApplicationHistory(ctx context.Context, f model.ApplicationHistoryFilter) ([]model.ApplicationHistory, error) {
	return s.applicationHistory.List(ctx, f)
}

func (s *ModerationService) UpdateApplicationHistory(ctx context.Context, id string, p model.UpdateApplicationHistoryPayload) (*model.ApplicationHistory, error) {
	h, err := s.applicationHistory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Action != nil {
		h.Action = *p.Action
	}
	if p.Comment.Set {
		h.Comment = p.Comment.Value
	}
	return s.applicationHistory.Update(ctx, h)
}

func (s *ModerationService) DeleteApplicationHistory(ctx context.Context, id string) (*model.ApplicationHistory, error) {
	h, err := s.applicationHistory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applicationHistory.Delete(ctx, id); err != nil {
		return nil, err
	}
	return h, nil
}
