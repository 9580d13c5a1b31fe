package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/model"
)

// NotificationService owns stored notifications. Delivery is out of
// scope; rows are written and read over the API only.
type NotificationService struct {
	notifications NotificationStore
	users         UserStore
	events        EventStore
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(notifications NotificationStore, users UserStore, events EventStore) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, events: events}
}

func (s *NotificationService) Create(ctx context.Context, p model.CreateNotificationPayload) (*model.Notification, error) {
	if _, err := s.users.GetByID(ctx, p.UserID); err != nil {
		return nil, err
	}
	if p.RelatedEventID != nil {
		if _, err := s.events.GetByID(ctx, *p.RelatedEventID); err != nil {
			return nil, err
		}
	}
	isRead := false
	if p.IsRead != nil {
		isRead = *p.IsRead
	}
	n := &model.Notification{
		UserID:         p.UserID,
		Type:           p.Type,
		Title:          p.Title,
		Message:        p.Message,
		IsRead:         isRead,
		RelatedEventID: p.RelatedEventID,
	}
	return s.notifications.Create(ctx, n)
}

func (s *NotificationService) Get(ctx context.Context, id string) (*model.Notification, error) {
	return s.notifications.GetByID(ctx, id)
}

func (s *NotificationService) List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error) {
	return s.notifications.List(ctx, f)
}

func (s *NotificationService) Update(ctx context.Context, id string, p model.UpdateNotificationPayload) (*model.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.IsRead != nil {
		n.IsRead = *p.IsRead
	}
	if p.RelatedEventID.Set {
		if p.RelatedEventID.Value != nil {
			if _, err := s.events.GetByID(ctx, *p.RelatedEventID.Value); err != nil {
				return nil, err
			}
		}
		n.RelatedEventID = p.RelatedEventID.Value
	}
	return s.notifications.Update(ctx, n)
}

func (s *NotificationService) Delete(ctx context.Context, id string) (*model.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.Delete(ctx, id); err != nil {
		return nil, err
	}
	return n, nil
}
