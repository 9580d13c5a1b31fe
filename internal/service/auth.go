package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/auth"
	"github.com/campus-hub/campus-events/internal/model"
)

// AuthService handles signup, credential checks and token issuance.
type AuthService struct {
	users  UserStore
	tokens *auth.TokenManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account from self-service signup. The password is
// hashed before any row is written; the response carries no token.
func (s *AuthService) Register(ctx context.Context, p model.RegisterPayload) (*model.User, error) {
	existing, err := s.users.GetByLogin(ctx, p.Login)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User login")
	}
	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	role := p.Role
	if role == "" {
		role = model.RoleStudent
	}
	return s.users.Create(ctx, model.CreateUserPayload{
		Login:            p.Login,
		PasswordHash:     hash,
		Role:             role,
		TelegramUsername: p.TelegramUsername,
		TelegramChatID:   p.TelegramChatID,
	})
}

// Login verifies credentials and issues a token. An unknown login is
// NotFound; a wrong password is "Invalid credentials".
func (s *AuthService) Login(ctx context.Context, p model.LoginPayload) (*model.TokenResponse, error) {
	u, err := s.users.GetByLogin(ctx, p.Login)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(p.Password, u.PasswordHash) {
		return nil, apperr.InvalidState("Invalid credentials")
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{AccessToken: token, TokenType: "bearer", UserID: u.ID}, nil
}

// Resolve maps a raw bearer token to the user it names.
func (s *AuthService) Resolve(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// Refresh issues a fresh token for an already-resolved caller.
func (s *AuthService) Refresh(ctx context.Context, u *model.User) (*model.TokenResponse, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{AccessToken: token, TokenType: "bearer", UserID: u.ID}, nil
}
