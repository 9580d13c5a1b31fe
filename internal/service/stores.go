// Package service implements the business rules of the event platform.
// Services validate incoming payloads, resolve cross-entity references and
// delegate persistence to small store interfaces; the stores remain the
// authoritative guard for uniqueness and referential integrity, so a
// pre-check passing here never guarantees the write succeeds.
package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, p model.CreateUserPayload) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context, f model.UserFilter) ([]model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type UserProfileStore interface {
	Create(ctx context.Context, p model.CreateUserProfilePayload) (*model.UserProfile, error)
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	List(ctx context.Context, f model.UserProfileFilter) ([]model.UserProfile, error)
	Update(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error)
	Delete(ctx context.Context, id string) error
}

type RoomStore interface {
	Create(ctx context.Context, p model.CreateRoomPayload, isAvailable bool) (*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetByName(ctx context.Context, name string) (*model.Room, error)
	List(ctx context.Context, f model.RoomFilter) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) (*model.Room, error)
	Delete(ctx context.Context, id string) error
}

type EventStore interface {
	Create(ctx context.Context, p model.CreateEventPayload) (*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventCategoryStore interface {
	Create(ctx context.Context, p model.CreateEventCategoryPayload) (*model.EventCategory, error)
	GetByID(ctx context.Context, id string) (*model.EventCategory, error)
	GetByName(ctx context.Context, name string) (*model.EventCategory, error)
	List(ctx context.Context, f model.EventCategoryFilter) ([]model.EventCategory, error)
	Update(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error)
	Delete(ctx context.Context, id string) error
}

type EventCategoryMappingStore interface {
	Create(ctx context.Context, p model.CreateEventCategoryMappingPayload) (*model.EventCategoryMapping, error)
	GetByID(ctx context.Context, id string) (*model.EventCategoryMapping, error)
	GetByPair(ctx context.Context, eventID, categoryID string) (*model.EventCategoryMapping, error)
	List(ctx context.Context, f model.EventCategoryMappingFilter) ([]model.EventCategoryMapping, error)
	Update(ctx context.Context, m *model.EventCategoryMapping) (*model.EventCategoryMapping, error)
	Delete(ctx context.Context, id string) error
}

type EventRegistrationStore interface {
	Create(ctx context.Context, p model.CreateEventRegistrationPayload) (*model.EventRegistration, error)
	GetByID(ctx context.Context, id string) (*model.EventRegistration, error)
	GetByPair(ctx context.Context, eventID, userID string) (*model.EventRegistration, error)
	List(ctx context.Context, f model.EventRegistrationFilter) ([]model.EventRegistration, error)
	Update(ctx context.Context, reg *model.EventRegistration) (*model.EventRegistration, error)
	Delete(ctx context.Context, id string) error
}

type EventApplicationStore interface {
	Create(ctx context.Context, app *model.EventApplication) (*model.EventApplication, error)
	GetByID(ctx context.Context, id string) (*model.EventApplication, error)
	GetByPair(ctx context.Context, eventID, applicantID string) (*model.EventApplication, error)
	List(ctx context.Context, f model.EventApplicationFilter) ([]model.EventApplication, error)
	Update(ctx context.Context, app *model.EventApplication) (*model.EventApplication, error)
	Delete(ctx context.Context, id string) error
}

type EventModerationHistoryStore interface {
	Create(ctx context.Context, p model.CreateEventModerationHistoryPayload) (*model.EventModerationHistory, error)
	GetByID(ctx context.Context, id string) (*model.EventModerationHistory, error)
	List(ctx context.Context, f model.EventModerationHistoryFilter) ([]model.EventModerationHistory, error)
	Update(ctx context.Context, h *model.EventModerationHistory) (*model.EventModerationHistory, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationHistoryStore interface {
	Create(ctx context.Context, p model.CreateApplicationHistoryPayload) (*model.ApplicationHistory, error)
	GetByID(ctx context.Context, id string) (*model.ApplicationHistory, error)
	List(ctx context.Context, f model.ApplicationHistoryFilter) ([]model.ApplicationHistory, error)
	Update(ctx context.Context, h *model.ApplicationHistory) (*model.ApplicationHistory, error)
	Delete(ctx context.Context, id string) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error)
	Update(ctx context.Context, n *model.Notification) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
}
