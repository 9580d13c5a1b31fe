package service

import (
	"context"
	"testing"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

type categoryFixture struct {
	svc   *CategoryService
	event model.Event
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()
	ef := newEventFixture(t)
	event, err := ef.svc.Create(context.Background(), ef.validPayload())
	if err != nil {
		t.Fatal(err)
	}
	return &categoryFixture{
		svc:   NewCategoryService(newFakeCategoryStore(), newFakeMappingStore(), ef.events),
		event: *event,
	}
}

func TestCategoryCreateNameUniqueness(t *testing.T) {
	f := newCategoryFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science"}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate name: expected Conflict, got %v", err)
	}
}

func TestCategoryUpdate(t *testing.T) {
	f := newCategoryFixture(t)
	ctx := context.Background()

	desc := "talks and workshops"
	a, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science", Description: &desc})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Sport"}); err != nil {
		t.Fatal(err)
	}

	taken := "Sport"
	if _, err := f.svc.UpdateCategory(ctx, a.ID, model.UpdateEventCategoryPayload{Name: &taken}); !apperr.IsConflict(err) {
		t.Fatalf("rename onto taken name: expected Conflict, got %v", err)
	}

	own := "Science"
	if _, err := f.svc.UpdateCategory(ctx, a.ID, model.UpdateEventCategoryPayload{Name: &own}); err != nil {
		t.Fatalf("rename to own name: %v", err)
	}

	updated, err := f.svc.UpdateCategory(ctx, a.ID, model.UpdateEventCategoryPayload{Description: model.Null[string]()})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Description != nil {
		t.Error("explicit null did not clear the description")
	}
	if updated.Name != "Science" {
		t.Error("partial update touched the name")
	}
}

func TestMappingCreate(t *testing.T) {
	f := newCategoryFixture(t)
	ctx := context.Background()

	cat, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: "absent", CategoryID: cat.ID}); !apperr.IsNotFound(err) {
		t.Fatalf("missing event: expected NotFound, got %v", err)
	}
	if _, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: "absent"}); !apperr.IsNotFound(err) {
		t.Fatalf("missing category: expected NotFound, got %v", err)
	}

	if _, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: cat.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: cat.ID}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate pair: expected Conflict, got %v", err)
	}
}

func TestMappingUpdateMergedPair(t *testing.T) {
	f := newCategoryFixture(t)
	ctx := context.Background()

	science, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science"})
	if err != nil {
		t.Fatal(err)
	}
	sport, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Sport"})
	if err != nil {
		t.Fatal(err)
	}
	first, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: science.ID})
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: sport.ID})
	if err != nil {
		t.Fatal(err)
	}

	// Repointing the second mapping onto the first one's pair collides.
	if _, err := f.svc.UpdateMapping(ctx, second.ID, model.UpdateEventCategoryMappingPayload{CategoryID: &science.ID}); !apperr.IsConflict(err) {
		t.Fatalf("merged pair collision: expected Conflict, got %v", err)
	}

	// Rewriting a mapping with its own pair is not a collision.
	if _, err := f.svc.UpdateMapping(ctx, first.ID, model.UpdateEventCategoryMappingPayload{CategoryID: &science.ID}); err != nil {
		t.Fatalf("rewrite with own pair: %v", err)
	}

	// The merged referents are re-checked.
	missing := "absent"
	if _, err := f.svc.UpdateMapping(ctx, first.ID, model.UpdateEventCategoryMappingPayload{EventID: &missing}); !apperr.IsNotFound(err) {
		t.Fatalf("repoint onto missing event: expected NotFound, got %v", err)
	}
}

func TestMappingDeleteReturnsRecord(t *testing.T) {
	f := newCategoryFixture(t)
	ctx := context.Background()

	cat, err := f.svc.CreateCategory(ctx, model.CreateEventCategoryPayload{Name: "Science"})
	if err != nil {
		t.Fatal(err)
	}
	m, err := f.svc.CreateMapping(ctx, model.CreateEventCategoryMappingPayload{EventID: f.event.ID, CategoryID: cat.ID})
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := f.svc.DeleteMapping(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.ID != m.ID || deleted.CategoryID != cat.ID {
		t.Error("delete did not return the stored record")
	}
	if _, err := f.svc.DeleteMapping(ctx, m.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second delete: expected NotFound, got %v", err)
	}
}
