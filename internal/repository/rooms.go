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

const roomColumns = `id, name, capacity, location, equipment, is_available, created_at, updated_at`

// RoomRepository handles persistence for rooms.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

func scanRoom(row pgx.Row) (*model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.Location,
		&rm.Equipment, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, p model.CreateRoomPayload, isAvailable bool) (*model.Room, error) {
	room := &model.Room{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Capacity:    p.Capacity,
		Location:    p.Location,
		Equipment:   p.Equipment,
		IsAvailable: isAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO rooms (id, name, capacity, location, equipment, is_available, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		room.ID, room.Name, room.Capacity, room.Location, room.Equipment, room.IsAvailable, room.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("Room name")
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Room")
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

// GetByName resolves a room by its unique name; used by the service
// uniqueness pre-check.
func (r *RoomRepository) GetByName(ctx context.Context, name string) (*model.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Room")
		}
		return nil, fmt.Errorf("get room by name: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) List(ctx context.Context, f model.RoomFilter) ([]model.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	var clauses []string
	var args []any
	if f.IsAvailable != nil {
		args = append(args, *f.IsAvailable)
		clauses = append(clauses, fmt.Sprintf("is_available = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, *room)
	}
	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *model.Room) (*model.Room, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms
		 SET name = $2, capacity = $3, location = $4, equipment = $5, is_available = $6, updated_at = $7
		 WHERE id = $1`,
		room.ID, room.Name, room.Capacity, room.Location, room.Equipment, room.IsAvailable, now,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("Room name")
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("Room")
	}
	room.UpdatedAt = &now
	return room, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Room")
	}
	return nil
}
