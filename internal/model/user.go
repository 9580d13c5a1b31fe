package model

import "time"

// User is an account in the system. The password hash never leaves the
// service layer; the json tag strips it from every response.
type User struct {
	ID               string     `json:"id"`
	Login            string     `json:"login"`
	PasswordHash     string     `json:"-"`
	Role             UserRole   `json:"role"`
	TelegramUsername *string    `json:"telegram_username"`
	TelegramChatID   *string    `json:"telegram_chat_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

// CreateUserPayload is the admin-facing user creation payload. The hash
// is supplied pre-computed; self-service signup goes through /auth/register.
type CreateUserPayload struct {
	Login            string   `json:"login"`
	PasswordHash     string   `json:"password_hash"`
	Role             UserRole `json:"role"`
	TelegramUsername *string  `json:"telegram_username"`
	TelegramChatID   *string  `json:"telegram_chat_id"`
}

// UpdateUserPayload carries a partial update; absent fields are
// untouched, an explicit null clears the telegram columns.
type UpdateUserPayload struct {
	Login            *string          `json:"login"`
	PasswordHash     *string          `json:"password_hash"`
	Role             *UserRole        `json:"role"`
	TelegramUsername Optional[string] `json:"telegram_username"`
	TelegramChatID   Optional[string] `json:"telegram_chat_id"`
}

// UserFilter narrows a user listing. Unset fields impose no constraint.
type UserFilter struct {
	Role   *UserRole
	Offset int
	Limit  int
}

// UserProfile holds the optional per-user profile. At most one exists per
// user, enforced by a unique key on user_id.
type UserProfile struct {
	ID                      string         `json:"id"`
	UserID                  string         `json:"user_id"`
	Faculty                 *string        `json:"faculty"`
	StudyGroup              *string        `json:"study_group"`
	Interests               map[string]any `json:"interests"`
	NotificationPreferences map[string]any `json:"notification_preferences"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               *time.Time     `json:"updated_at"`
}

type CreateUserProfilePayload struct {
	UserID                  string         `json:"user_id"`
	Faculty                 *string        `json:"faculty"`
	StudyGroup              *string        `json:"study_group"`
	Interests               map[string]any `json:"interests"`
	NotificationPreferences map[string]any `json:"notification_preferences"`
}

type UpdateUserProfilePayload struct {
	Faculty                 Optional[string]         `json:"faculty"`
	StudyGroup              Optional[string]         `json:"study_group"`
	Interests               Optional[map[string]any] `json:"interests"`
	NotificationPreferences Optional[map[string]any] `json:"notification_preferences"`
}

type UserProfileFilter struct {
	UserID *string
	Offset int
	Limit  int
}
