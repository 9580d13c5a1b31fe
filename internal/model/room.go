package model

import "time"

// Room is a bookable campus room.
type Room struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Capacity    int            `json:"capacity"`
	Location    *string        `json:"location"`
	Equipment   map[string]any `json:"equipment"`
	IsAvailable bool           `json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

type CreateRoomPayload struct {
	Name        string         `json:"name"`
	Capacity    int            `json:"capacity"`
	Location    *string        `json:"location"`
	Equipment   map[string]any `json:"equipment"`
	IsAvailable *bool          `json:"is_available"`
}

type UpdateRoomPayload struct {
	Name        *string                  `json:"name"`
	Capacity    *int                     `json:"capacity"`
	Location    Optional[string]         `json:"location"`
	Equipment   Optional[map[string]any] `json:"equipment"`
	IsAvailable *bool                    `json:"is_available"`
}

type RoomFilter struct {
	IsAvailable *bool
	Offset      int
	Limit       int
}
