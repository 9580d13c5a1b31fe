package model

import "time"

// EventModerationHistory is an append-only audit row for a moderation act
// on an event. Writing one never mutates the event's status; any status
// change is a separate update issued by the caller.
type EventModerationHistory struct {
	ID        string           `json:"id"`
	EventID   string           `json:"event_id"`
	CuratorID string           `json:"curator_id"`
	Action    ModerationAction `json:"action"`
	Comment   *string          `json:"comment"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at"`
}

type CreateEventModerationHistoryPayload struct {
	EventID   string           `json:"event_id"`
	CuratorID string           `json:"curator_id"`
	Action    ModerationAction `json:"action"`
	Comment   *string          `json:"comment"`
}

type UpdateEventModerationHistoryPayload struct {
	Action  *ModerationAction `json:"action"`
	Comment Optional[string]  `json:"comment"`
}

type EventModerationHistoryFilter struct {
	EventID   *string
	CuratorID *string
	Offset    int
	Limit     int
}

// ApplicationHistory is the audit counterpart for participation
// applications.
type ApplicationHistory struct {
	ID            string           `json:"id"`
	ApplicationID string           `json:"application_id"`
	ModeratorID   string           `json:"moderator_id"`
	Action        ModerationAction `json:"action"`
	Comment       *string          `json:"comment"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at"`
}

type CreateApplicationHistoryPayload struct {
	ApplicationID string           `json:"application_id"`
	ModeratorID   string           `json:"moderator_id"`
	Action        ModerationAction `json:"action"`
	Comment       *string          `json:"comment"`
}

type UpdateApplicationHistoryPayload struct {
	Action  *ModerationAction `json:"action"`
	Comment Optional[string]  `json:"comment"`
}

type ApplicationHistoryFilter struct {
	ApplicationID *string
	ModeratorID   *string
	Offset        int
	Limit         int
}
