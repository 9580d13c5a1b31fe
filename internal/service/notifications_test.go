package service

import (
	"context"
	"testing"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

func TestNotificationCreate(t *testing.T) {
	ef := newEventFixture(t)
	event, err := ef.svc.Create(context.Background(), ef.validPayload())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewNotificationService(newFakeNotificationStore(), ef.users, ef.events)
	ctx := context.Background()

	if _, err := svc.Create(ctx, model.CreateNotificationPayload{
		UserID: "absent", Type: model.NotificationSystem, Title: "t", Message: "m",
	}); !apperr.IsNotFound(err) {
		t.Fatalf("missing user: expected NotFound, got %v", err)
	}

	missing := "absent"
	if _, err := svc.Create(ctx, model.CreateNotificationPayload{
		UserID: ef.creator.ID, Type: model.NotificationSystem, Title: "t", Message: "m",
		RelatedEventID: &missing,
	}); !apperr.IsNotFound(err) {
		t.Fatalf("missing related event: expected NotFound, got %v", err)
	}

	n, err := svc.Create(ctx, model.CreateNotificationPayload{
		UserID: ef.creator.ID, Type: model.NotificationNewEvent, Title: "t", Message: "m",
		RelatedEventID: &event.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.IsRead {
		t.Error("is_read should default to false")
	}
}

func TestNotificationUpdate(t *testing.T) {
	ef := newEventFixture(t)
	svc := NewNotificationService(newFakeNotificationStore(), ef.users, ef.events)
	ctx := context.Background()

	n, err := svc.Create(ctx, model.CreateNotificationPayload{
		UserID: ef.creator.ID, Type: model.NotificationSystem, Title: "t", Message: "m",
	})
	if err != nil {
		t.Fatal(err)
	}

	read := true
	updated, err := svc.Update(ctx, n.ID, model.UpdateNotificationPayload{IsRead: &read})
	if err != nil {
		t.Fatal(err)
	}
	if !updated.IsRead {
		t.Error("is_read not updated")
	}
	if updated.Title != "t" || updated.Message != "m" {
		t.Error("partial update touched unrelated fields")
	}

	if _, err := svc.Update(ctx, n.ID, model.UpdateNotificationPayload{RelatedEventID: model.Some("absent")}); !apperr.IsNotFound(err) {
		t.Fatalf("missing related event on update: expected NotFound, got %v", err)
	}
}

func TestNotificationUpdateClearsRelatedEvent(t *testing.T) {
	ef := newEventFixture(t)
	event, err := ef.svc.Create(context.Background(), ef.validPayload())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewNotificationService(newFakeNotificationStore(), ef.users, ef.events)
	ctx := context.Background()

	n, err := svc.Create(ctx, model.CreateNotificationPayload{
		UserID: ef.creator.ID, Type: model.NotificationNewEvent, Title: "t", Message: "m",
		RelatedEventID: &event.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, n.ID, model.UpdateNotificationPayload{RelatedEventID: model.Null[string]()})
	if err != nil {
		t.Fatal(err)
	}
	if updated.RelatedEventID != nil {
		t.Error("explicit null did not detach the event")
	}
}
