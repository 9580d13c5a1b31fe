package service

import (
	"context"
	"testing"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

type joinFixture struct {
	registrations *RegistrationService
	applications  *ApplicationService
	event         model.Event
	user          model.User
}

func newJoinFixture(t *testing.T) *joinFixture {
	t.Helper()
	ef := newEventFixture(t)
	event, err := ef.svc.Create(context.Background(), ef.validPayload())
	if err != nil {
		t.Fatal(err)
	}
	return &joinFixture{
		registrations: NewRegistrationService(newFakeRegistrationStore(), ef.events, ef.users),
		applications:  NewApplicationService(newFakeApplicationStore(), ef.events, ef.users),
		event:         *event,
		user:          ef.creator,
	}
}

func TestRegistrationCreate(t *testing.T) {
	f := newJoinFixture(t)
	ctx := context.Background()

	if _, err := f.registrations.Create(ctx, model.CreateEventRegistrationPayload{EventID: "absent", UserID: f.user.ID}); !apperr.IsNotFound(err) {
		t.Fatalf("missing event: expected NotFound, got %v", err)
	}
	if _, err := f.registrations.Create(ctx, model.CreateEventRegistrationPayload{EventID: f.event.ID, UserID: "absent"}); !apperr.IsNotFound(err) {
		t.Fatalf("missing user: expected NotFound, got %v", err)
	}

	if _, err := f.registrations.Create(ctx, model.CreateEventRegistrationPayload{EventID: f.event.ID, UserID: f.user.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.registrations.Create(ctx, model.CreateEventRegistrationPayload{EventID: f.event.ID, UserID: f.user.ID}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate pair: expected Conflict, got %v", err)
	}
}

func TestRegistrationUpdateTouchesCommentOnly(t *testing.T) {
	f := newJoinFixture(t)
	ctx := context.Background()

	comment := "looking forward"
	reg, err := f.registrations.Create(ctx, model.CreateEventRegistrationPayload{EventID: f.event.ID, UserID: f.user.ID})
	if err != nil {
		t.Fatal(err)
	}
	updated, err := f.registrations.Update(ctx, reg.ID, model.UpdateEventRegistrationPayload{Comment: model.Some(comment)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Comment == nil || *updated.Comment != comment {
		t.Error("comment not updated")
	}
	if updated.EventID != f.event.ID || updated.UserID != f.user.ID {
		t.Error("pair changed on update")
	}

	cleared, err := f.registrations.Update(ctx, reg.ID, model.UpdateEventRegistrationPayload{Comment: model.Null[string]()})
	if err != nil {
		t.Fatal(err)
	}
	if cleared.Comment != nil {
		t.Error("explicit null did not clear the comment")
	}
}

func TestApplicationCreate(t *testing.T) {
	f := newJoinFixture(t)
	ctx := context.Background()

	app, err := f.applications.Create(ctx, model.CreateEventApplicationPayload{EventID: f.event.ID, ApplicantID: f.user.ID})
	if err != nil {
		t.Fatal(err)
	}
	if app.Status != string(model.ApplicationPending) {
		t.Errorf("status = %q, want default pending", app.Status)
	}

	if _, err := f.applications.Create(ctx, model.CreateEventApplicationPayload{EventID: f.event.ID, ApplicantID: f.user.ID}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate pair: expected Conflict, got %v", err)
	}
}

func TestApplicationUpdateStatus(t *testing.T) {
	f := newJoinFixture(t)
	ctx := context.Background()

	app, err := f.applications.Create(ctx, model.CreateEventApplicationPayload{EventID: f.event.ID, ApplicantID: f.user.ID})
	if err != nil {
		t.Fatal(err)
	}

	approved := model.ApplicationApproved
	updated, err := f.applications.Update(ctx, app.ID, model.UpdateEventApplicationPayload{Status: &approved})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "approved" {
		t.Errorf("status = %q, want approved", updated.Status)
	}

	// No transition rules: any valid status overwrites any other.
	pending := model.ApplicationPending
	updated, err = f.applications.Update(ctx, app.ID, model.UpdateEventApplicationPayload{Status: &pending})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "pending" {
		t.Errorf("status = %q, want pending", updated.Status)
	}
}
