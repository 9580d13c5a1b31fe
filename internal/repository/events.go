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

const eventColumns = `id, title, description, event_date, start_time, end_time, registered_count,
	max_participants, status, event_type, creator_id, curator_id, is_external_venue,
	room_id, external_location, need_approve_candidates, created_at, updated_at`

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// eventReferent names the entity behind a violated events foreign key:
// room_id points at rooms, creator_id and curator_id at users.
func eventReferent(constraint string) string {
	if strings.Contains(constraint, "room_id") {
		return "Room"
	}
	return "User"
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate.Time, &e.StartTime, &e.EndTime,
		&e.RegisteredCount, &e.MaxParticipants, &e.Status, &e.EventType, &e.CreatorID, &e.CuratorID,
		&e.IsExternalVenue, &e.RoomID, &e.ExternalLocation, &e.NeedApproveCandidates,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, p model.CreateEventPayload) (*model.Event, error) {
	e := &model.Event{
		ID:                    uuid.New().String(),
		Title:                 p.Title,
		Description:           p.Description,
		EventDate:             p.EventDate,
		StartTime:             p.StartTime,
		EndTime:               p.EndTime,
		RegisteredCount:       0,
		MaxParticipants:       p.MaxParticipants,
		Status:                p.Status,
		EventType:             p.EventType,
		CreatorID:             p.CreatorID,
		CuratorID:             p.CuratorID,
		IsExternalVenue:       p.IsExternalVenue,
		RoomID:                p.RoomID,
		ExternalLocation:      p.ExternalLocation,
		NeedApproveCandidates: p.NeedApproveCandidates,
		CreatedAt:             time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, title, description, event_date, start_time, end_time, registered_count,
			max_participants, status, event_type, creator_id, curator_id, is_external_venue,
			room_id, external_location, need_approve_candidates, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		e.ID, e.Title, e.Description, e.EventDate.Time, e.StartTime, e.EndTime, e.RegisteredCount,
		e.MaxParticipants, e.Status, e.EventType, e.CreatorID, e.CuratorID, e.IsExternalVenue,
		e.RoomID, e.ExternalLocation, e.NeedApproveCandidates, e.CreatedAt,
	)
	if err != nil {
		if name, ok := fkConstraint(err); ok {
			return nil, apperr.NotFound(eventReferent(name))
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var clauses []string
	var args []any
	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if f.Status != nil {
		add("status = $%d", *f.Status)
	}
	if f.EventType != nil {
		add("event_type = $%d", *f.EventType)
	}
	if f.CreatorID != nil {
		add("creator_id = $%d", *f.CreatorID)
	}
	if f.CuratorID != nil {
		add("curator_id = $%d", *f.CuratorID)
	}
	if f.RoomID != nil {
		add("room_id = $%d", *f.RoomID)
	}
	if f.DateFrom != nil {
		add("event_date >= $%d", f.DateFrom.Time)
	}
	if f.DateTo != nil {
		add("event_date <= $%d", f.DateTo.Time)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $2, description = $3, event_date = $4, start_time = $5, end_time = $6,
		     registered_count = $7, max_participants = $8, status = $9, event_type = $10,
		     creator_id = $11, curator_id = $12, is_external_venue = $13, room_id = $14,
		     external_location = $15, need_approve_candidates = $16, updated_at = $17
		 WHERE id = $1`,
		e.ID, e.Title, e.Description, e.EventDate.Time, e.StartTime, e.EndTime,
		e.RegisteredCount, e.MaxParticipants, e.Status, e.EventType,
		e.CreatorID, e.CuratorID, e.IsExternalVenue, e.RoomID,
		e.ExternalLocation, e.NeedApproveCandidates, now,
	)
	if err != nil {
		if name, ok := fkConstraint(err); ok {
			return nil, apperr.NotFound(eventReferent(name))
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("Event")
	}
	e.UpdatedAt = &now
	return e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Event")
	}
	return nil
}
