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

const categoryColumns = `id, name, description, color, created_at, updated_at`

// EventCategoryRepository handles persistence for event categories.
type EventCategoryRepository struct {
	db *pgxpool.Pool
}

// NewEventCategoryRepository constructs an EventCategoryRepository.
func NewEventCategoryRepository(db *pgxpool.Pool) *EventCategoryRepository {
	return &EventCategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (*model.EventCategory, error) {
	var c model.EventCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *EventCategoryRepository) Create(ctx context.Context, p model.CreateEventCategoryPayload) (*model.EventCategory, error) {
	c := &model.EventCategory{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO event_categories (id, name, description, color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.Color, c.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("EventCategory name")
		}
		return nil, fmt.Errorf("insert event category: %w", err)
	}
	return c, nil
}

func (r *EventCategoryRepository) GetByID(ctx context.Context, id string) (*model.EventCategory, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventCategory")
		}
		return nil, fmt.Errorf("get event category: %w", err)
	}
	return c, nil
}

// GetByName resolves a category by its unique name; used by the service
// uniqueness pre-check.
func (r *EventCategoryRepository) GetByName(ctx context.Context, name string) (*model.EventCategory, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventCategory")
		}
		return nil, fmt.Errorf("get event category by name: %w", err)
	}
	return c, nil
}

func (r *EventCategoryRepository) List(ctx context.Context, f model.EventCategoryFilter) ([]model.EventCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM event_categories`
	var clauses []string
	var args []any
	if f.Name != nil {
		args = append(args, "%"+*f.Name+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list event categories: %w", err)
	}
	defer rows.Close()

	var categories []model.EventCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *EventCategoryRepository) Update(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE event_categories
		 SET name = $2, description = $3, color = $4, updated_at = $5
		 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Color, now,
	)
	if err != nil {
		if uniqueViolation(err) {
			return nil, apperr.Conflict("EventCategory name")
		}
		return nil, fmt.Errorf("update event category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("EventCategory")
	}
	c.UpdatedAt = &now
	return c, nil
}

func (r *EventCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("EventCategory")
	}
	return nil
}

const mappingColumns = `id, event_id, category_id, created_at, updated_at`

// EventCategoryMappingRepository handles the event/category link rows.
type EventCategoryMappingRepository struct {
	db *pgxpool.Pool
}

// NewEventCategoryMappingRepository constructs an EventCategoryMappingRepository.
func NewEventCategoryMappingRepository(db *pgxpool.Pool) *EventCategoryMappingRepository {
	return &EventCategoryMappingRepository{db: db}
}

func scanMapping(row pgx.Row) (*model.EventCategoryMapping, error) {
	var m model.EventCategoryMapping
	err := row.Scan(&m.ID, &m.EventID, &m.CategoryID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *EventCategoryMappingRepository) Create(ctx context.Context, p model.CreateEventCategoryMappingPayload) (*model.EventCategoryMapping, error) {
	m := &model.EventCategoryMapping{
		ID:         uuid.New().String(),
		EventID:    p.EventID,
		CategoryID: p.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO event_category_mapping (id, event_id, category_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		m.ID, m.EventID, m.CategoryID, m.CreatedAt,
	)
	if err != nil {
		switch {
		case uniqueViolation(err):
			return nil, apperr.Conflict("EventCategoryMapping")
		case foreignKeyViolation(err):
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("insert category mapping: %w", err)
	}
	return m, nil
}

func (r *EventCategoryMappingRepository) GetByID(ctx context.Context, id string) (*model.EventCategoryMapping, error) {
	m, err := scanMapping(r.db.QueryRow(ctx,
		`SELECT `+mappingColumns+` FROM event_category_mapping WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventCategoryMapping")
		}
		return nil, fmt.Errorf("get category mapping: %w", err)
	}
	return m, nil
}

// GetByPair resolves the mapping for an (event, category) pair; used by
// the uniqueness pre-check.
func (r *EventCategoryMappingRepository) GetByPair(ctx context.Context, eventID, categoryID string) (*model.EventCategoryMapping, error) {
	m, err := scanMapping(r.db.QueryRow(ctx,
		`SELECT `+mappingColumns+` FROM event_category_mapping WHERE event_id = $1 AND category_id = $2`,
		eventID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("EventCategoryMapping")
		}
		return nil, fmt.Errorf("get category mapping by pair: %w", err)
	}
	return m, nil
}

func (r *EventCategoryMappingRepository) List(ctx context.Context, f model.EventCategoryMappingFilter) ([]model.EventCategoryMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM event_category_mapping`
	var clauses []string
	var args []any
	if f.EventID != nil {
		args = append(args, *f.EventID)
		clauses = append(clauses, fmt.Sprintf("event_id = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list category mappings: %w", err)
	}
	defer rows.Close()

	var mappings []model.EventCategoryMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category mapping: %w", err)
		}
		mappings = append(mappings, *m)
	}
	return mappings, rows.Err()
}

func (r *EventCategoryMappingRepository) Update(ctx context.Context, m *model.EventCategoryMapping) (*model.EventCategoryMapping, error) {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE event_category_mapping
		 SET event_id = $2, category_id = $3, updated_at = $4
		 WHERE id = $1`,
		m.ID, m.EventID, m.CategoryID, now,
	)
	if err != nil {
		switch {
		case uniqueViolation(err):
			return nil, apperr.Conflict("EventCategoryMapping")
		case foreignKeyViolation(err):
			return nil, apperr.NotFound("Event")
		}
		return nil, fmt.Errorf("update category mapping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("EventCategoryMapping")
	}
	m.UpdatedAt = &now
	return m, nil
}

func (r *EventCategoryMappingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_category_mapping WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category mapping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("EventCategoryMapping")
	}
	return nil
}
