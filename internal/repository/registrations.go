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

const registrationColumns = `id, event_id, user_id, comment, created_at, updated_at`

// EventRegistrationRepository handles persistence for event registrations.
type EventRegistrationRepository struct {
	db *pgxpool.Pool
}

// NewEventRegistrationRepository constructs an EventRegistrationRepository.
func NewEventRegistrationRepository(db *pgxpool.Pool) *EventRegistrationRepository {
	return &EventRegistrationRepository{db: db}
}

func scanRegistration(row pgx.Row) (*model.EventRegistration, error) {
	var reg model.EventRegistration
	err := row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Comment, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *EventRegistrationRepository) Create(ctx context.Context, p model.CreateEventRegistrationPayload) (*model.EventRegistration, error) {
	reg := &model.EventRegistration{
		ID:        uuid.New().String(),
		EventID:   p.EventID,
		UserID:    p.UserID,
		Comment:   p.Comment,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO event_registrations (id, event_id, user_id, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reg.ID, reg.EventID, reg.UserID, reg.Comment, reg.CreatedAt,
	)
	if err != nil {
		switch {
		case uniqueViolation(err):
			return nil, apperr.Conflict("EventRegistration")
		case foreignKeyViolation(err):
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

func (r *EventRegistrationRepository) GetByID(ctx context.Context, id string) (*model.EventRegistration, error) {
	reg, err := scanRegistration(r.db.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM event_registrations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventRegistration")
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

// GetByPair resolves the registration for an (event, user) pair; used by
// the uniqueness pre-check.
func (r *EventRegistrationRepository) GetByPair(ctx context.Context, eventID, userID string) (*model.EventRegistration, error) {
	reg, err := scanRegistration(r.db.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM event_registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventRegistration")
		}
		return nil, fmt.Errorf("get registration by pair: %w", err)
	}
	return reg, nil
}

func (r *EventRegistrationRepository) List(ctx context.Context, f model.EventRegistrationFilter) ([]model.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations`
	var clauses []string
	var args []any
	if f.EventID != nil {
		args = append(args, *f.EventID)
		clauses = append(clauses, fmt.Sprintf("event_id = $%d", len(args)))
	}
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
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.EventRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}
	return regs, rows.Err()
}

func (r *EventRegistrationRepository) Update(ctx context.Context, reg *model.EventRegistration) (*model.EventRegistration, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE event_registrations SET comment = $2, updated_at = $3 WHERE id = $1`,
		reg.ID, reg.Comment, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("EventRegistration")
	}
	reg.UpdatedAt = &now
	return reg, nil
}

func (r *EventRegistrationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("EventRegistration")
	}
	return nil
}
