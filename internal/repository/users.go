package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

const userColumns = `id, login, password_hash, role, telegram_username, telegram_chat_id, created_at, updated_at`

// UserRepository handles persistence for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role,
		&u.TelegramUsername, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns it with a generated UUID.
func (r *UserRepository) Create(ctx context.Context, p model.CreateUserPayload) (*model.User, error) {
	u := &model.User{
		ID:               uuid.New().String(),
		Login:            p.Login,
		PasswordHash:     p.PasswordHash,
		Role:             p.Role,
		TelegramUsername: p.TelegramUsername,
		TelegramChatID:   p.TelegramChatID,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, login, password_hash, role, telegram_username, telegram_chat_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Login, u.PasswordHash, u.Role, u.TelegramUsername, u.TelegramChatID, u.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("User login")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByID returns a single user or a NotFoundError.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByLogin returns the user holding the given login or a NotFoundError.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = $1`, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// List returns users matching the filter in insertion order.
func (r *UserRepository) List(ctx context.Context, f model.UserFilter) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var clauses []string
	var args []any
	if f.Role != nil {
		args = append(args, *f.Role)
		clauses = append(clauses, fmt.Sprintf("role = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update writes every mutable column in one statement, so the merged
// record the service validated is exactly what lands in the row.
func (r *UserRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET login = $2, password_hash = $3, role = $4, telegram_username = $5, telegram_chat_id = $6, updated_at = $7
		 WHERE id = $1`,
		u.ID, u.Login, u.PasswordHash, u.Role, u.TelegramUsername, u.TelegramChatID, now,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("User login")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("User")
	}
	u.UpdatedAt = &now
	return u, nil
}

// Delete removes the user row; dependent rows cascade in the store.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

const profileColumns = `id, user_id, faculty, study_group, interests, notification_preferences, created_at, updated_at`

// UserProfileRepository handles persistence for user profiles.
type UserProfileRepository struct {
	db *pgxpool.Pool
}

// NewUserProfileRepository constructs a UserProfileRepository.
func NewUserProfileRepository(db *pgxpool.Pool) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func scanProfile(row pgx.Row) (*model.UserProfile, error) {
	var p model.UserProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Faculty, &p.StudyGroup,
		&p.Interests, &p.NotificationPreferences, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserProfileRepository) Create(ctx context.Context, p model.CreateUserProfilePayload) (*model.UserProfile, error) {
	profile := &model.UserProfile{
		ID:                      uuid.New().String(),
		UserID:                  p.UserID,
		Faculty:                 p.Faculty,
		StudyGroup:              p.StudyGroup,
		Interests:               p.Interests,
		NotificationPreferences: p.NotificationPreferences,
		CreatedAt:               time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles (id, user_id, faculty, study_group, interests, notification_preferences, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.UserID, profile.Faculty, profile.StudyGroup,
		profile.Interests, profile.NotificationPreferences, profile.CreatedAt,
	)
	if err != nil {
		switch {
		case uniqueViolation(err):
			return nil, apperr.Conflict("UserProfile")
		case foreignKeyViolation(err):
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("insert user profile: %w", err)
	}
	return profile, nil
}

func (r *UserProfileRepository) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("UserProfile")
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return p, nil
}

// GetByUserID returns the single profile owned by a user, if any.
func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("UserProfile")
		}
		return nil, fmt.Errorf("get user profile by user: %w", err)
	}
	return p, nil
}

func (r *UserProfileRepository) List(ctx context.Context, f model.UserProfileFilter) ([]model.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles`
	var clauses []string
	var args []any
	if f.UserID != nil {
		args = append(args, *f.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *UserProfileRepository) Update(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE user_profiles
		 SET faculty = $2, study_group = $3, interests = $4, notification_preferences = $5, updated_at = $6
		 WHERE id = $1`,
		p.ID, p.Faculty, p.StudyGroup, p.Interests, p.NotificationPreferences, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("UserProfile")
	}
	p.UpdatedAt = &now
	return p, nil
}

func (r *UserProfileRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("UserProfile")
	}
	return nil
}
