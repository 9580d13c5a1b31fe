package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// CategoryService owns event categories and the event-category mappings.
type CategoryService struct {
	categories EventCategoryStore
	mappings   EventCategoryMappingStore
	events     EventStore
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(categories EventCategoryStore, mappings EventCategoryMappingStore, events EventStore) *CategoryService {
	return &CategoryService{categories: categories, mappings: mappings, events: events}
}

func (s *CategoryService) CreateCategory(ctx context.Context, p model.CreateEventCategoryPayload) (*model.EventCategory, error) {
	existing, err := s.categories.GetByName(ctx, p.Name)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("EventCategory name")
	}
	return s.categories.Create(ctx, p)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*model.EventCategory, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context, f model.EventCategoryFilter) ([]model.EventCategory, error) {
	return s.categories.List(ctx, f)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, p model.UpdateEventCategoryPayload) (*model.EventCategory, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil && *p.Name != c.Name {
		existing, err := s.categories.GetByName(ctx, *p.Name)
		if err != nil && !apperr.IsNotFound(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("EventCategory name")
		}
		c.Name = *p.Name
	}
	if p.Description.Set {
		c.Description = p.Description.Value
	}
	if p.Color.Set {
		c.Color = p.Color.Value
	}
	return s.categories.Update(ctx, c)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (*model.EventCategory, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateMapping links an event to a category. Both referents must exist
// and the pair must be unused; the pair unique key is the final word.
func (s *CategoryService) CreateMapping(ctx context.Context, p model.CreateEventCategoryMappingPayload) (*model.EventCategoryMapping, error) {
	if _, err := s.events.GetByID(ctx, p.EventID); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, p.CategoryID); err != nil {
		return nil, err
	}
	existing, err := s.mappings.GetByPair(ctx, p.EventID, p.CategoryID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("EventCategoryMapping")
	}
	return s.mappings.Create(ctx, p)
}

func (s *CategoryService) GetMapping(ctx context.Context, id string) (*model.EventCategoryMapping, error) {
	return s.mappings.GetByID(ctx, id)
}

func (s *CategoryService) ListMappings(ctx context.Context, f model.EventCategoryMappingFilter) ([]model.EventCategoryMapping, error) {
	return s.mappings.List(ctx, f)
}

// UpdateMapping repoints a mapping; the merged pair is re-checked for
// existence and uniqueness against every row but itself.
func (s *CategoryService) UpdateMapping(ctx context.Context, id string, p model.UpdateEventCategoryMappingPayload) (*model.EventCategoryMapping, error) {
	m, err := s.mappings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.EventID != nil {
		m.EventID = *p.EventID
	}
	if p.CategoryID != nil {
		m.CategoryID = *p.CategoryID
	}
	if _, err := s.events.GetByID(ctx, m.EventID); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, m.CategoryID); err != nil {
		return nil, err
	}
	existing, err := s.mappings.GetByPair(ctx, m.EventID, m.CategoryID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, apperr.Conflict("EventCategoryMapping")
	}
	return s.mappings.Update(ctx, m)
}

func (s *CategoryService) DeleteMapping(ctx context.Context, id string) (*model.EventCategoryMapping, error) {
	m, err := s.mappings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.mappings.Delete(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}
