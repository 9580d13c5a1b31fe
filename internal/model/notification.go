package model

import "time"

// Notification is a stored message for a user. Delivery transport is
// outside this system; rows are created and read over the API.
type Notification struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	IsRead         bool             `json:"is_read"`
	RelatedEventID *string          `json:"related_event_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at"`
}

type CreateNotificationPayload struct {
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	IsRead         *bool            `json:"is_read"`
	RelatedEventID *string          `json:"related_event_id"`
}

type UpdateNotificationPayload struct {
	Type           *NotificationType `json:"type"`
	Title          *string           `json:"title"`
	Message        *string           `json:"message"`
	IsRead         *bool             `json:"is_read"`
	RelatedEventID Optional[string]  `json:"related_event_id"`
}

type NotificationFilter struct {
	UserID *string
	Type   *NotificationType
	IsRead *bool
	Offset int
	Limit  int
}
