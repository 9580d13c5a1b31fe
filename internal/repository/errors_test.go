package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintHelpers(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_login_key"})
	if !uniqueViolation(unique) {
		t.Error("uniqueViolation = false for a 23505 error")
	}
	if foreignKeyViolation(unique) {
		t.Error("foreignKeyViolation = true for a 23505 error")
	}

	fk := fmt.Errorf("insert event: %w", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "events_room_id_fkey"})
	if !foreignKeyViolation(fk) {
		t.Error("foreignKeyViolation = false for a 23503 error")
	}
	name, ok := fkConstraint(fk)
	if !ok || name != "events_room_id_fkey" {
		t.Errorf("fkConstraint = %q, %v, want events_room_id_fkey, true", name, ok)
	}

	plain := errors.New("connection reset")
	if uniqueViolation(plain) || foreignKeyViolation(plain) {
		t.Error("constraint helpers matched a non-postgres error")
	}
	if _, ok := fkConstraint(plain); ok {
		t.Error("fkConstraint matched a non-postgres error")
	}
}

func TestEventReferent(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"events_room_id_fkey", "Room"},
		{"events_creator_id_fkey", "User"},
		{"events_curator_id_fkey", "User"},
	}
	for _, tt := range tests {
		if got := eventReferent(tt.constraint); got != tt.want {
			t.Errorf("eventReferent(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
