package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// UserService owns user accounts and their optional profiles.
type UserService struct {
	users    UserStore
	profiles UserProfileStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, profiles UserProfileStore) *UserService {
	return &UserService{users: users, profiles: profiles}
}

// CreateUser inserts an account. The login uniqueness pre-check is a fast
// reject; the unique key on users.login remains the real guard.
func (s *UserService) CreateUser(ctx context.Context, p model.CreateUserPayload) (*model.User, error) {
	if p.Role == "" {
		p.Role = model.RoleStudent
	}
	existing, err := s.users.GetByLogin(ctx, p.Login)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User login")
	}
	return s.users.Create(ctx, p)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, f model.UserFilter) ([]model.User, error) {
	return s.users.List(ctx, f)
}

// UpdateUser applies a partial update: nil payload fields leave the stored
// value untouched, and the merged record is written in full.
func (s *UserService) UpdateUser(ctx context.Context, id string, p model.UpdateUserPayload) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Login != nil && *p.Login != u.Login {
		existing, err := s.users.GetByLogin(ctx, *p.Login)
		if err != nil && !apperr.IsNotFound(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("User login")
		}
		u.Login = *p.Login
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.TelegramUsername.Set {
		u.TelegramUsername = p.TelegramUsername.Value
	}
	if p.TelegramChatID.Set {
		u.TelegramChatID = p.TelegramChatID.Value
	}
	return s.users.Update(ctx, u)
}

// DeleteUser removes the account and returns its last stored state.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateProfile inserts a profile after checking the user exists and has
// no profile yet. The unique key on user_id backs both checks.
func (s *UserService) CreateProfile(ctx context.Context, p model.CreateUserProfilePayload) (*model.UserProfile, error) {
	if _, err := s.users.GetByID(ctx, p.UserID); err != nil {
		return nil, err
	}
	existing, err := s.profiles.GetByUserID(ctx, p.UserID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("UserProfile")
	}
	return s.profiles.Create(ctx, p)
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

// GetProfileByUser resolves the profile attached to a user id. The user
// itself is not looked up: an unknown user and a user without a profile
// both answer a missing profile.
func (s *UserService) GetProfileByUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// ListProfiles honors the user_id short-circuit: with the filter set the
// result is the zero-or-one matching profile.
func (s *UserService) ListProfiles(ctx context.Context, f model.UserProfileFilter) ([]model.UserProfile, error) {
	if f.UserID != nil {
		p, err := s.profiles.GetByUserID(ctx, *f.UserID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return []model.UserProfile{}, nil
			}
			return nil, err
		}
		return []model.UserProfile{*p}, nil
	}
	return s.profiles.List(ctx, f)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, p model.UpdateUserProfilePayload) (*model.UserProfile, error) {
	prof, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Faculty.Set {
		prof.Faculty = p.Faculty.Value
	}
	if p.StudyGroup.Set {
		prof.StudyGroup = p.StudyGroup.Value
	}
	if p.Interests.Set {
		prof.Interests = nil
		if p.Interests.Value != nil {
			prof.Interests = *p.Interests.Value
		}
	}
	if p.NotificationPreferences.Set {
		prof.NotificationPreferences = nil
		if p.NotificationPreferences.Value != nil {
			prof.NotificationPreferences = *p.NotificationPreferences.Value
		}
	}
	return s.profiles.Update(ctx, prof)
}

func (s *UserService) DeleteProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	prof, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return nil, err
	}
	return prof, nil
}
