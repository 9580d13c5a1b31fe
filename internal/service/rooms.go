package service

import (
	"context"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// RoomService owns bookable rooms.
type RoomService struct {
	rooms RoomStore
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) Create(ctx context.Context, p model.CreateRoomPayload) (*model.Room, error) {
	if p.Capacity <= 0 {
		return nil, apperr.InvalidState("capacity must be positive")
	}
	existing, err := s.rooms.GetByName(ctx, p.Name)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Room name")
	}
	isAvailable := true
	if p.IsAvailable != nil {
		isAvailable = *p.IsAvailable
	}
	return s.rooms.Create(ctx, p, isAvailable)
}

func (s *RoomService) Get(ctx context.Context, id string) (*model.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, f model.RoomFilter) ([]model.Room, error) {
	return s.rooms.List(ctx, f)
}

func (s *RoomService) Update(ctx context.Context, id string, p model.UpdateRoomPayload) (*model.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Capacity != nil {
		if *p.Capacity <= 0 {
			return nil, apperr.InvalidState("capacity must be positive")
		}
		room.Capacity = *p.Capacity
	}
	if p.Name != nil && *p.Name != room.Name {
		existing, err := s.rooms.GetByName(ctx, *p.Name)
		if err != nil && !apperr.IsNotFound(err) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("Room name")
		}
		room.Name = *p.Name
	}
	if p.Location.Set {
		room.Location = p.Location.Value
	}
	if p.Equipment.Set {
		room.Equipment = nil
		if p.Equipment.Value != nil {
			room.Equipment = *p.Equipment.Value
		}
	}
	if p.IsAvailable != nil {
		room.IsAvailable = *p.IsAvailable
	}
	return s.rooms.Update(ctx, room)
}

func (s *RoomService) Delete(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return nil, err
	}
	return room, nil
}
