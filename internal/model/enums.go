package model

import (
	"encoding/json"
	"fmt"
)

// UserRole is the role an account holds. Roles gate moderation routes and
// the curator assignment rule on events.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCurator UserRole = "curator"
	RoleStudent UserRole = "student"
)

// ParseUserRole validates a raw role value.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleCurator, RoleStudent:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUserRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// EventStatus is a free-standing status field: any value may be written
// over any other via the generic update path. No transition table exists.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPending   EventStatus = "pending"
	EventApproved  EventStatus = "approved"
	EventRejected  EventStatus = "rejected"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
)

// ParseEventStatus validates a raw event status value.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case EventDraft, EventPending, EventApproved, EventRejected, EventCancelled, EventCompleted:
		return EventStatus(s), nil
	}
	return "", fmt.Errorf("invalid event status %q", s)
}

func (s *EventStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseEventStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// EventType distinguishes student-run from official events.
type EventType string

const (
	EventTypeStudent  EventType = "student"
	EventTypeOfficial EventType = "official"
)

// ParseEventType validates a raw event type value.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeStudent, EventTypeOfficial:
		return EventType(s), nil
	}
	return "", fmt.Errorf("invalid event type %q", s)
}

func (t *EventType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseEventType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ApplicationStatus is the closed set accepted at the transfer boundary.
// The stored column remains unconstrained text, matching the source system.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates a raw application status value.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseApplicationStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ModerationAction is the action recorded in an audit row. Logged only;
// it never drives a status change by itself.
type ModerationAction string

const (
	ActionSubmit         ModerationAction = "submit"
	ActionApprove        ModerationAction = "approve"
	ActionReject         ModerationAction = "reject"
	ActionRequestChanges ModerationAction = "request_changes"
)

// ParseModerationAction validates a raw moderation action value.
func ParseModerationAction(s string) (ModerationAction, error) {
	switch ModerationAction(s) {
	case ActionSubmit, ActionApprove, ActionReject, ActionRequestChanges:
		return ModerationAction(s), nil
	}
	return "", fmt.Errorf("invalid moderation action %q", s)
}

func (a *ModerationAction) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseModerationAction(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// NotificationType categorizes a notification row.
type NotificationType string

const (
	NotificationApplicationStatus NotificationType = "application_status"
	NotificationEventReminder     NotificationType = "event_reminder"
	NotificationNewEvent          NotificationType = "new_event"
	NotificationSystem            NotificationType = "system"
)

// ParseNotificationType validates a raw notification type value.
func ParseNotificationType(s string) (NotificationType, error) {
	switch NotificationType(s) {
	case NotificationApplicationStatus, NotificationEventReminder, NotificationNewEvent, NotificationSystem:
		return NotificationType(s), nil
	}
	return "", fmt.Errorf("invalid notification type %q", s)
}

func (t *NotificationType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseNotificationType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
