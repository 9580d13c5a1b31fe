package model

import "time"

// Event is a campus event. Venue resolution: an event is either held in a
// referenced room, at a free-text external location, or marked external
// with neither set.
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          *string     `json:"description"`
	EventDate            Date        `json:"event_date"`
	StartTime            TimeOfDay   `json:"start_time"`
	EndTime              TimeOfDay   `json:"end_time"`
	RegisteredCount      int         `json:"registered_count"`
	MaxParticipants      *int        `json:"max_participants"`
	Status               EventStatus `json:"status"`
	EventType            EventType   `json:"event_type"`
	CreatorID            string      `json:"creator_id"`
	CuratorID            string      `json:"curator_id"`
	IsExternalVenue      bool        `json:"is_external_venue"`
	RoomID               *string     `json:"room_id"`
	ExternalLocation     *string     `json:"external_location"`
	NeedApproveCandidates bool       `json:"need_approve_candidates"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            *time.Time  `json:"updated_at"`
}

type CreateEventPayload struct {
	Title                 string      `json:"title"`
	Description           *string     `json:"description"`
	EventDate             Date        `json:"event_date"`
	StartTime             TimeOfDay   `json:"start_time"`
	EndTime               TimeOfDay   `json:"end_time"`
	MaxParticipants       *int        `json:"max_participants"`
	Status                EventStatus `json:"status"`
	EventType             EventType   `json:"event_type"`
	CreatorID             string      `json:"creator_id"`
	CuratorID             string      `json:"curator_id"`
	IsExternalVenue       bool        `json:"is_external_venue"`
	RoomID                *string     `json:"room_id"`
	ExternalLocation      *string     `json:"external_location"`
	NeedApproveCandidates bool        `json:"need_approve_candidates"`
}

// UpdateEventPayload carries a partial update. Nullable columns use
// Optional so an explicit null clears the stored value; an explicit null
// curator_id is rejected because an event can never lack a curator.
type UpdateEventPayload struct {
	Title                 *string          `json:"title"`
	Description           Optional[string] `json:"description"`
	EventDate             *Date            `json:"event_date"`
	StartTime             *TimeOfDay       `json:"start_time"`
	EndTime               *TimeOfDay       `json:"end_time"`
	RegisteredCount       *int             `json:"registered_count"`
	MaxParticipants       Optional[int]    `json:"max_participants"`
	Status                *EventStatus     `json:"status"`
	EventType             *EventType       `json:"event_type"`
	CreatorID             *string          `json:"creator_id"`
	CuratorID             Optional[string] `json:"curator_id"`
	IsExternalVenue       *bool            `json:"is_external_venue"`
	RoomID                Optional[string] `json:"room_id"`
	ExternalLocation      Optional[string] `json:"external_location"`
	NeedApproveCandidates *bool            `json:"need_approve_candidates"`
}

type EventFilter struct {
	Status    *EventStatus
	EventType *EventType
	CreatorID *string
	CuratorID *string
	RoomID    *string
	DateFrom  *Date
	DateTo    *Date
	Offset    int
	Limit     int
}

// EventCategory labels events; mappings form the many-to-many link.
type EventCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Color       *string    `json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateEventCategoryPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type UpdateEventCategoryPayload struct {
	Name        *string          `json:"name"`
	Description Optional[string] `json:"description"`
	Color       Optional[string] `json:"color"`
}

type EventCategoryFilter struct {
	Name   *string
	Offset int
	Limit  int
}

type EventCategoryMapping struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	CategoryID string     `json:"category_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type CreateEventCategoryMappingPayload struct {
	EventID    string `json:"event_id"`
	CategoryID string `json:"category_id"`
}

type UpdateEventCategoryMappingPayload struct {
	EventID    *string `json:"event_id"`
	CategoryID *string `json:"category_id"`
}

type EventCategoryMappingFilter struct {
	EventID    *string
	CategoryID *string
	Offset     int
	Limit      int
}

// EventRegistration is an unmoderated join: no status, one row per
// (event, user) pair.
type EventRegistration struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	UserID    string     `json:"user_id"`
	Comment   *string    `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateEventRegistrationPayload struct {
	EventID string  `json:"event_id"`
	UserID  string  `json:"user_id"`
	Comment *string `json:"comment"`
}

type UpdateEventRegistrationPayload struct {
	Comment Optional[string] `json:"comment"`
}

type EventRegistrationFilter struct {
	EventID *string
	UserID  *string
	Offset  int
	Limit   int
}

// EventApplication is a moderated join request. Status on the wire is the
// closed enum; the stored value is plain text.
type EventApplication struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	ApplicantID string     `json:"applicant_id"`
	Status      string     `json:"status"`
	Motivation  *string    `json:"motivation"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateEventApplicationPayload struct {
	EventID     string             `json:"event_id"`
	ApplicantID string             `json:"applicant_id"`
	Status      *ApplicationStatus `json:"status"`
	Motivation  *string            `json:"motivation"`
}

type UpdateEventApplicationPayload struct {
	Status     *ApplicationStatus `json:"status"`
	Motivation Optional[string]   `json:"motivation"`
}

type EventApplicationFilter struct {
	EventID     *string
	ApplicantID *string
	Status      *ApplicationStatus
	Offset      int
	Limit       int
}
