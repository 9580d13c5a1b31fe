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

const applicationColumns = `id, event_id, applicant_id, status, motivation, created_at, updated_at`

// EventApplicationRepository handles persistence for moderated join
// applications.
type EventApplicationRepository struct {
	db *pgxpool.Pool
}

// NewEventApplicationRepository constructs an EventApplicationRepository.
func NewEventApplicationRepository(db *pgxpool.Pool) *EventApplicationRepository {
	return &EventApplicationRepository{db: db}
}

func scanApplication(row pgx.Row) (*model.EventApplication, error) {
	var app model.EventApplication
	err := row.Scan(&app.ID, &app.EventID, &app.ApplicantID, &app.Status, &app.Motivation,
		&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *EventApplicationRepository) Create(ctx context.Context, app *model.EventApplication) (*model.EventApplication, error) {
	app.ID = uuid.New().String()
	app.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO event_applications (id, event_id, applicant_id, status, motivation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		app.ID, app.EventID, app.ApplicantID, app.Status, app.Motivation, app.CreatedAt,
	)
	if err != nil {
		switch {
		case uniqueViolation(err):
			return nil, apperr.Conflict("EventApplication")
		case foreignKeyViolation(err):
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return app, nil
}

func (r *EventApplicationRepository) GetByID(ctx context.Context, id string) (*model.EventApplication, error) {
	app, err := scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM event_applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventApplication")
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// GetByPair resolves the application for an (event, applicant) pair; used
// by the uniqueness pre-check.
func (r *EventApplicationRepository) GetByPair(ctx context.Context, eventID, applicantID string) (*model.EventApplication, error) {
	app, err := scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM event_applications WHERE event_id = $1 AND applicant_id = $2`,
		eventID, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventApplication")
		}
		return nil, fmt.Errorf("get application by pair: %w", err)
	}
	return app, nil
}

func (r *EventApplicationRepository) List(ctx context.Context, f model.EventApplicationFilter) ([]model.EventApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM event_applications`
	var clauses []string
	var args []any
	if f.EventID != nil {
		args = append(args, *f.EventID)
		clauses = append(clauses, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if f.ApplicantID != nil {
		args = append(args, *f.ApplicantID)
		clauses = append(clauses, fmt.Sprintf("applicant_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []model.EventApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *EventApplicationRepository) Update(ctx context.Context, app *model.EventApplication) (*model.EventApplication, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE event_applications SET status = $2, motivation = $3, updated_at = $4 WHERE id = $1`,
		app.ID, app.Status, app.Motivation, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("EventApplication")
	}
	app.UpdatedAt = &now
	return app, nil
}

func (r *EventApplicationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("EventApplication")
	}
	return nil
}
