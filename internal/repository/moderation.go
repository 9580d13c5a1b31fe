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

const eventHistoryColumns = `id, event_id, curator_id, action, comment, created_at, updated_at`

// EventModerationHistoryRepository stores the audit trail of moderation
// acts on events.
type EventModerationHistoryRepository struct {
	db *pgxpool.Pool
}

// NewEventModerationHistoryRepository constructs an EventModerationHistoryRepository.
func NewEventModerationHistoryRepository(db *pgxpool.Pool) *EventModerationHistoryRepository {
	return &EventModerationHistoryRepository{db: db}
}

func scanEventHistory(row pgx.Row) (*model.EventModerationHistory, error) {
	var h model.EventModerationHistory
	err := row.Scan(&h.ID, &h.EventID, &h.CuratorID, &h.Action, &h.Comment, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *EventModerationHistoryRepository) Create(ctx context.Context, p model.CreateEventModerationHistoryPayload) (*model.EventModerationHistory, error) {
	h := &model.EventModerationHistory{
		ID:        uuid.New().String(),
		EventID:   p.EventID,
		CuratorID: p.CuratorID,
		Action:    p.Action,
		Comment:   p.Comment,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO event_moderation_history (id, event_id, curator_id, action, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.EventID, h.CuratorID, string(h.Action), h.Comment, h.CreatedAt,
	)
	if err != nil {
		if foreignKeyViolation(err) {
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("insert event moderation history: %w", err)
	}
	return h, nil
}

func (r *EventModerationHistoryRepository) GetByID(ctx context.Context, id string) (*model.EventModerationHistory, error) {
	h, err := scanEventHistory(r.db.QueryRow(ctx,
		`SELECT `+eventHistoryColumns+` FROM event_moderation_history WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventModerationHistory")
		}
		return nil, fmt.Errorf("get event moderation history: %w", err)
	}
	return h, nil
}

func (r *EventModerationHistoryRepository) List(ctx context.Context, f model.EventModerationHistoryFilter) ([]model.EventModerationHistory, error) {
	query := `SELECT ` + eventHistoryColumns + ` FROM event_moderation_history`
	var clauses []string
	var args []any
	if f.EventID != nil {
		args = append(args, *f.EventID)
		clauses = append(clauses, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if f.CuratorID != nil {
		args = append(args, *f.CuratorID)
		clauses = append(clauses, fmt.Sprintf("curator_id = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list event moderation history: %w", err)
	}
	defer rows.Close()

	var out []model.EventModerationHistory
	for rows.Next() {
		h, err := scanEventHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event moderation history: %w", err)
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *EventModerationHistoryRepository) Update(ctx context.Context, h *model.EventModerationHistory) (*model.EventModerationHistory, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE event_moderation_history SET action = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		h.ID, string(h.Action), h.Comment, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update event moderation history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("EventModerationHistory")
	}
	h.UpdatedAt = &now
	return h, nil
}

func (r *EventModerationHistoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_moderation_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event moderation history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("EventModerationHistory")
	}
	return nil
}

const applicationHistoryColumns = `id, application_id, moderator_id, action, comment, created_at, updated_at`

// ApplicationHistoryRepository stores the audit trail for participation
// applications.
type ApplicationHistoryRepository struct {
	db *pgxpool.Pool
}

// NewApplicationHistoryRepository constructs an ApplicationHistoryRepository.
func NewApplicationHistoryRepository(db *pgxpool.Pool) *ApplicationHistoryRepository {
	return &ApplicationHistoryRepository{db: db}
}

func scanApplicationHistory(row pgx.Row) (*model.ApplicationHistory, error) {
	var h model.ApplicationHistory
	err := row.Scan(&h.ID, &h.ApplicationID, &h.ModeratorID, &h.Action, &h.Comment, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *ApplicationHistoryRepository) Create(ctx context.Context, p model.CreateApplicationHistoryPayload) (*model.ApplicationHistory, error) {
	h := &model.ApplicationHistory{
		ID:            uuid.New().String(),
		ApplicationID: p.ApplicationID,
		ModeratorID:   p.ModeratorID,
		Action:        p.Action,
		Comment:       p.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO application_history (id, application_id, moderator_id, action, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.ApplicationID, h.ModeratorID, string(h.Action), h.Comment, h.CreatedAt,
	)
	if err != nil {
		if foreignKeyViolation(err) {
			return nil, apperr.NotFound("EventApplication")
		}
		return nil, fmt.Errorf("insert application history: %w", err)
	}
	return h, nil
}

func (r *ApplicationHistoryRepository) GetByID(ctx context.Context, id string) (*model.ApplicationHistory, error) {
	h, err := scanApplicationHistory(r.db.QueryRow(ctx,
		`SELECT `+applicationHistoryColumns+` FROM application_history WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("ApplicationHistory")
		}
		return nil, fmt.Errorf("get application history: %w", err)
	}
	return h, nil
}

func (r *ApplicationHistoryRepository) List(ctx context.Context, f model.ApplicationHistoryFilter) ([]model.ApplicationHistory, error) {
	query := `SELECT ` + applicationHistoryColumns + ` FROM application_history`
	var clauses []string
	var args []any
	if f.ApplicationID != nil {
		args = append(args, *f.ApplicationID)
		clauses = append(clauses, fmt.Sprintf("application_id = $%d", len(args)))
	}
	if f.ModeratorID != nil {
		args = append(args, *f.ModeratorID)
		clauses = append(clauses, fmt.Sprintf("moderator_id = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list application history: %w", err)
	}
	defer rows.Close()

	var out []model.ApplicationHistory
	for rows.Next() {
		h, err := scanApplicationHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application history: %w", err)
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *ApplicationHistoryRepository) Update(ctx context.Context, h *model.ApplicationHistory) (*model.ApplicationHistory, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE application_history SET action = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		h.ID, string(h.Action), h.Comment, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update application history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("ApplicationHistory")
	}
	h.UpdatedAt = &now
	return h, nil
}

func (r *ApplicationHistoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM application_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("ApplicationHistory")
	}
	return nil
}
