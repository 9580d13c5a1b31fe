package model

// LoginPayload carries credentials for /auth/login.
type LoginPayload struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterPayload is self-service signup; the raw password is hashed by
// the auth service before any row is written.
type RegisterPayload struct {
	Login            string   `json:"login"`
	Password         string   `json:"password"`
	Role             UserRole `json:"role"`
	TelegramUsername *string  `json:"telegram_username"`
	TelegramChatID   *string  `json:"telegram_chat_id"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

// ErrorResponse is the JSON error envelope used by every failure path.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
