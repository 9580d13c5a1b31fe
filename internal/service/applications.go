package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// ApplicationService owns participation applications, the moderated join
// requests. Status is validated at the transfer boundary only; the stored
// value is carried as plain text.
type ApplicationService struct {
	applications EventApplicationStore
	events       EventStore
	users        UserStore
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(applications EventApplicationStore, events EventStore, users UserStore) *ApplicationService {
	return &ApplicationService{applications: applications, events: events, users: users}
}

func (s *ApplicationService) Create(ctx context.Context, p model.CreateEventApplicationPayload) (*model.EventApplication, error) {
	if _, err := s.events.GetByID(ctx, p.EventID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, p.ApplicantID); err != nil {
		return nil, err
	}
	existing, err := s.applications.GetByPair(ctx, p.EventID, p.ApplicantID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("EventApplication")
	}
	status := string(model.ApplicationPending)
	if p.Status != nil {
		status = string(*p.Status)
	}
	app := &model.EventApplication{
		EventID:     p.EventID,
		ApplicantID: p.ApplicantID,
		Status:      status,
		Motivation:  p.Motivation,
	}
	return s.applications.Create(ctx, app)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*model.EventApplication, error) {
	return s.applications.GetByID(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, f model.EventApplicationFilter) ([]model.EventApplication, error) {
	return s.applications.List(ctx, f)
}

// Update touches status and motivation only; the (event, applicant) pair
// is immutable and no status transition rules apply.
func (s *ApplicationService) Update(ctx context.Context, id string, p model.UpdateEventApplicationPayload) (*model.EventApplication, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != nil {
		app.Status = string(*p.Status)
	}
	if p.Motivation.Set {
		app.Motivation = p.Motivation.Value
	}
	return s.applications.Update(ctx, app)
}

func (s *ApplicationService) Delete(ctx context.Context, id string) (*model.EventApplication, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return nil, err
	}
	return app, nil
}
