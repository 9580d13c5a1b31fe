package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// RegistrationService owns event registrations, the unmoderated join rows.
type RegistrationService struct {
	registrations EventRegistrationStore
	events        EventStore
	users         UserStore
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(registrations EventRegistrationStore, events EventStore, users UserStore) *RegistrationService {
	return &RegistrationService{registrations: registrations, events: events, users: users}
}

func (s *RegistrationService) Create(ctx context.Context, p model.CreateEventRegistrationPayload) (*model.EventRegistration, error) {
	if _, err := s.events.GetByID(ctx, p.EventID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, p.UserID); err != nil {
		return nil, err
	}
	existing, err := s.registrations.GetByPair(ctx, p.EventID, p.UserID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("EventRegistration")
	}
	return s.registrations.Create(ctx, p)
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*model.EventRegistration, error) {
	return s.registrations.GetByID(ctx, id)
}

func (s *RegistrationService) List(ctx context.Context, f model.EventRegistrationFilter) ([]model.EventRegistration, error) {
	return s.registrations.List(ctx, f)
}

// Update touches the comment only; the (event, user) pair is immutable.
func (s *RegistrationService) Update(ctx context.Context, id string, p model.UpdateEventRegistrationPayload) (*model.EventRegistration, error) {
	reg, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Comment.Set {
		reg.Comment = p.Comment.Value
	}
	return s.registrations.Update(ctx, reg)
}

func (s *RegistrationService) Delete(ctx context.Context, id string) (*model.EventRegistration, error) {
	reg, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.registrations.Delete(ctx, id); err != nil {
		return nil, err
	}
	return reg, nil
}
