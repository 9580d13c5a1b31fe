package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-hub/campus-events/internal/apperr"
	"github.com/campus-hub/campus-events/internal/model"
)

// In-memory stores backing the service tests. They mirror the repository
// contracts: NotFound on a missing id, Conflict on a duplicate key, and
// full-row writes on update.

type fakeUserStore struct {
	seq   int
	users map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (s *fakeUserStore) nextID() string {
	s.seq++
	return fmt.Sprintf("user-%d", s.seq)
}

func (s *fakeUserStore) add(u model.User) model.User {
	if u.ID == "" {
		u.ID = s.nextID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.users[u.ID] = u
	return u
}

func (s *fakeUserStore) Create(_ context.Context, p model.CreateUserPayload) (*model.User, error) {
	for _, u := range s.users {
		if u.Login == p.Login {
			return nil, apperr.Conflict("User login")
		}
	}
	u := s.add(model.User{
		Login:            p.Login,
		PasswordHash:     p.PasswordHash,
		Role:             p.Role,
		TelegramUsername: p.TelegramUsername,
		TelegramChatID:   p.TelegramChatID,
	})
	return &u, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return &u, nil
}

func (s *fakeUserStore) GetByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range s.users {
		if u.Login == login {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (s *fakeUserStore) List(_ context.Context, f model.UserFilter) ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, u *model.User) (*model.User, error) {
	if _, ok := s.users[u.ID]; !ok {
		return nil, apperr.NotFound("User")
	}
	now := time.Now().UTC()
	u.UpdatedAt = &now
	s.users[u.ID] = *u
	return u, nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(s.users, id)
	return nil
}

type fakeProfileStore struct {
	seq      int
	profiles map[string]model.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]model.UserProfile{}}
}

func (s *fakeProfileStore) Create(_ context.Context, p model.CreateUserProfilePayload) (*model.UserProfile, error) {
	for _, prof := range s.profiles {
		if prof.UserID == p.UserID {
			return nil, apperr.Conflict("UserProfile")
		}
	}
	s.seq++
	prof := model.UserProfile{
		ID:                      fmt.Sprintf("profile-%d", s.seq),
		UserID:                  p.UserID,
		Faculty:                 p.Faculty,
		StudyGroup:              p.StudyGroup,
		Interests:               p.Interests,
		NotificationPreferences: p.NotificationPreferences,
		CreatedAt:               time.Now().UTC(),
	}
	s.profiles[prof.ID] = prof
	return &prof, nil
}

func (s *fakeProfileStore) GetByID(_ context.Context, id string) (*model.UserProfile, error) {
	prof, ok := s.profiles[id]
	if !ok {
		return nil, apperr.NotFound("UserProfile")
	}
	return &prof, nil
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID string) (*model.UserProfile, error) {
	for _, prof := range s.profiles {
		if prof.UserID == userID {
			prof := prof
			return &prof, nil
		}
	}
	return nil, apperr.NotFound("UserProfile")
}

func (s *fakeProfileStore) List(_ context.Context, _ model.UserProfileFilter) ([]model.UserProfile, error) {
	var out []model.UserProfile
	for _, prof := range s.profiles {
		out = append(out, prof)
	}
	return out, nil
}

func (s *fakeProfileStore) Update(_ context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	if _, ok := s.profiles[p.ID]; !ok {
		return nil, apperr.NotFound("UserProfile")
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	s.profiles[p.ID] = *p
	return p, nil
}

func (s *fakeProfileStore) Delete(_ context.Context, id string) error {
	if _, ok := s.profiles[id]; !ok {
		return apperr.NotFound("UserProfile")
	}
	delete(s.profiles, id)
	return nil
}

type fakeRoomStore struct {
	seq   int
	rooms map[string]model.Room
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[string]model.Room{}}
}

func (s *fakeRoomStore) add(room model.Room) model.Room {
	if room.ID == "" {
		s.seq++
		room.ID = fmt.Sprintf("room-%d", s.seq)
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}
	s.rooms[room.ID] = room
	return room
}

func (s *fakeRoomStore) Create(_ context.Context, p model.CreateRoomPayload, isAvailable bool) (*model.Room, error) {
	for _, room := range s.rooms {
		if room.Name == p.Name {
			return nil, apperr.Conflict("Room name")
		}
	}
	room := s.add(model.Room{
		Name:        p.Name,
		Capacity:    p.Capacity,
		Location:    p.Location,
		Equipment:   p.Equipment,
		IsAvailable: isAvailable,
	})
	return &room, nil
}

func (s *fakeRoomStore) GetByID(_ context.Context, id string) (*model.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, apperr.NotFound("Room")
	}
	return &room, nil
}

func (s *fakeRoomStore) GetByName(_ context.Context, name string) (*model.Room, error) {
	for _, room := range s.rooms {
		if room.Name == name {
			room := room
			return &room, nil
		}
	}
	return nil, apperr.NotFound("Room")
}

func (s *fakeRoomStore) List(_ context.Context, f model.RoomFilter) ([]model.Room, error) {
	var out []model.Room
	for _, room := range s.rooms {
		if f.IsAvailable != nil && room.IsAvailable != *f.IsAvailable {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (s *fakeRoomStore) Update(_ context.Context, room *model.Room) (*model.Room, error) {
	if _, ok := s.rooms[room.ID]; !ok {
		return nil, apperr.NotFound("Room")
	}
	now := time.Now().UTC()
	room.UpdatedAt = &now
	s.rooms[room.ID] = *room
	return room, nil
}

func (s *fakeRoomStore) Delete(_ context.Context, id string) error {
	if _, ok := s.rooms[id]; !ok {
		return apperr.NotFound("Room")
	}
	delete(s.rooms, id)
	return nil
}

type fakeEventStore struct {
	seq    int
	events map[string]model.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[string]model.Event{}}
}

func (s *fakeEventStore) Create(_ context.Context, p model.CreateEventPayload) (*model.Event, error) {
	s.seq++
	e := model.Event{
		ID:                    fmt.Sprintf("event-%d", s.seq),
		Title:                 p.Title,
		Description:           p.Description,
		EventDate:             p.EventDate,
		StartTime:             p.StartTime,
		EndTime:               p.EndTime,
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
	s.events[e.ID] = e
	return &e, nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id string) (*model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	return &e, nil
}

func (s *fakeEventStore) List(_ context.Context, _ model.EventFilter) ([]model.Event, error) {
	var out []model.Event
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeEventStore) Update(_ context.Context, e *model.Event) (*model.Event, error) {
	if _, ok := s.events[e.ID]; !ok {
		return nil, apperr.NotFound("Event")
	}
	now := time.Now().UTC()
	e.UpdatedAt = &now
	s.events[e.ID] = *e
	return e, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id string) error {
	if _, ok := s.events[id]; !ok {
		return apperr.NotFound("Event")
	}
	delete(s.events, id)
	return nil
}

type fakeApplicationStore struct {
	seq  int
	apps map[string]model.EventApplication
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: map[string]model.EventApplication{}}
}

func (s *fakeApplicationStore) Create(_ context.Context, app *model.EventApplication) (*model.EventApplication, error) {
	for _, existing := range s.apps {
		if existing.EventID == app.EventID && existing.ApplicantID == app.ApplicantID {
			return nil, apperr.Conflict("EventApplication")
		}
	}
	s.seq++
	app.ID = fmt.Sprintf("application-%d", s.seq)
	app.CreatedAt = time.Now().UTC()
	s.apps[app.ID] = *app
	return app, nil
}

func (s *fakeApplicationStore) GetByID(_ context.Context, id string) (*model.EventApplication, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, apperr.NotFound("EventApplication")
	}
	return &app, nil
}

func (s *fakeApplicationStore) GetByPair(_ context.Context, eventID, applicantID string) (*model.EventApplication, error) {
	for _, app := range s.apps {
		if app.EventID == eventID && app.ApplicantID == applicantID {
			app := app
			return &app, nil
		}
	}
	return nil, apperr.NotFound("EventApplication")
}

func (s *fakeApplicationStore) List(_ context.Context, _ model.EventApplicationFilter) ([]model.EventApplication, error) {
	var out []model.EventApplication
	for _, app := range s.apps {
		out = append(out, app)
	}
	return out, nil
}

func (s *fakeApplicationStore) Update(_ context.Context, app *model.EventApplication) (*model.EventApplication, error) {
	if _, ok := s.apps[app.ID]; !ok {
		return nil, apperr.NotFound("EventApplication")
	}
	now := time.Now().UTC()
	app.UpdatedAt = &now
	s.apps[app.ID] = *app
	return app, nil
}

func (s *fakeApplicationStore) Delete(_ context.Context, id string) error {
	if _, ok := s.apps[id]; !ok {
		return apperr.NotFound("EventApplication")
	}
	delete(s.apps, id)
	return nil
}

type fakeRegistrationStore struct {
	seq  int
	regs map[string]model.EventRegistration
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{regs: map[string]model.EventRegistration{}}
}

func (s *fakeRegistrationStore) Create(_ context.Context, p model.CreateEventRegistrationPayload) (*model.EventRegistration, error) {
	for _, reg := range s.regs {
		if reg.EventID == p.EventID && reg.UserID == p.UserID {
			return nil, apperr.Conflict("EventRegistration")
		}
	}
	s.seq++
	reg := model.EventRegistration{
		ID:        fmt.Sprintf("registration-%d", s.seq),
		EventID:   p.EventID,
		UserID:    p.UserID,
		Comment:   p.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.regs[reg.ID] = reg
	return &reg, nil
}

func (s *fakeRegistrationStore) GetByID(_ context.Context, id string) (*model.EventRegistration, error) {
	reg, ok := s.regs[id]
	if !ok {
		return nil, apperr.NotFound("EventRegistration")
	}
	return &reg, nil
}

func (s *fakeRegistrationStore) GetByPair(_ context.Context, eventID, userID string) (*model.EventRegistration, error) {
	for _, reg := range s.regs {
		if reg.EventID == eventID && reg.UserID == userID {
			reg := reg
			return &reg, nil
		}
	}
	return nil, apperr.NotFound("EventRegistration")
}

func (s *fakeRegistrationStore) List(_ context.Context, _ model.EventRegistrationFilter) ([]model.EventRegistration, error) {
	var out []model.EventRegistration
	for _, reg := range s.regs {
		out = append(out, reg)
	}
	return out, nil
}

func (s *fakeRegistrationStore) Update(_ context.Context, reg *model.EventRegistration) (*model.EventRegistration, error) {
	if _, ok := s.regs[reg.ID]; !ok {
		return nil, apperr.NotFound("EventRegistration")
	}
	now := time.Now().UTC()
	reg.UpdatedAt = &now
	s.regs[reg.ID] = *reg
	return reg, nil
}

func (s *fakeRegistrationStore) Delete(_ context.Context, id string) error {
	if _, ok := s.regs[id]; !ok {
		return apperr.NotFound("EventRegistration")
	}
	delete(s.regs, id)
	return nil
}

type fakeNotificationStore struct {
	seq           int
	notifications map[string]model.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: map[string]model.Notification{}}
}

func (s *fakeNotificationStore) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	s.seq++
	n.ID = fmt.Sprintf("notification-%d", s.seq)
	n.CreatedAt = time.Now().UTC()
	s.notifications[n.ID] = *n
	return n, nil
}

func (s *fakeNotificationStore) GetByID(_ context.Context, id string) (*model.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, apperr.NotFound("Notification")
	}
	return &n, nil
}

func (s *fakeNotificationStore) List(_ context.Context, _ model.NotificationFilter) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range s.notifications {
		out = append(out, n)
	}
	return out, nil
}

func (s *fakeNotificationStore) Update(_ context.Context, n *model.Notification) (*model.Notification, error) {
	if _, ok := s.notifications[n.ID]; !ok {
		return nil, apperr.NotFound("Notification")
	}
	now := time.Now().UTC()
	n.UpdatedAt = &now
	s.notifications[n.ID] = *n
	return n, nil
}

func (s *fakeNotificationStore) Delete(_ context.Context, id string) error {
	if _, ok := s.notifications[id]; !ok {
		return apperr.NotFound("Notification")
	}
	delete(s.notifications, id)
	return nil
}

type fakeCategoryStore struct {
	seq        int
	categories map[string]model.EventCategory
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]model.EventCategory{}}
}

func (s *fakeCategoryStore) Create(_ context.Context, p model.CreateEventCategoryPayload) (*model.EventCategory, error) {
	for _, c := range s.categories {
		if c.Name == p.Name {
			return nil, apperr.Conflict("EventCategory name")
		}
	}
	s.seq++
	c := model.EventCategory{
		ID:          fmt.Sprintf("category-%d", s.seq),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   time.Now().UTC(),
	}
	s.categories[c.ID] = c
	return &c, nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, id string) (*model.EventCategory, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, apperr.NotFound("EventCategory")
	}
	return &c, nil
}

func (s *fakeCategoryStore) GetByName(_ context.Context, name string) (*model.EventCategory, error) {
	for _, c := range s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, apperr.NotFound("EventCategory")
}

func (s *fakeCategoryStore) List(_ context.Context, _ model.EventCategoryFilter) ([]model.EventCategory, error) {
	var out []model.EventCategory
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCategoryStore) Update(_ context.Context, c *model.EventCategory) (*model.EventCategory, error) {
	if _, ok := s.categories[c.ID]; !ok {
		return nil, apperr.NotFound("EventCategory")
	}
	now := time.Now().UTC()
	c.UpdatedAt = &now
	s.categories[c.ID] = *c
	return c, nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.categories[id]; !ok {
		return apperr.NotFound("EventCategory")
	}
	delete(s.categories, id)
	return nil
}

type fakeMappingStore struct {
	seq      int
	mappings map[string]model.EventCategoryMapping
}

func newFakeMappingStore() *fakeMappingStore {
	return &fakeMappingStore{mappings: map[string]model.EventCategoryMapping{}}
}

func (s *fakeMappingStore) Create(_ context.Context, p model.CreateEventCategoryMappingPayload) (*model.EventCategoryMapping, error) {
	for _, m := range s.mappings {
		if m.EventID == p.EventID && m.CategoryID == p.CategoryID {
			return nil, apperr.Conflict("EventCategoryMapping")
		}
	}
	s.seq++
	m := model.EventCategoryMapping{
		ID:         fmt.Sprintf("mapping-%d", s.seq),
		EventID:    p.EventID,
		CategoryID: p.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}
	s.mappings[m.ID] = m
	return &m, nil
}

func (s *fakeMappingStore) GetByID(_ context.Context, id string) (*model.EventCategoryMapping, error) {
	m, ok := s.mappings[id]
	if !ok {
		return nil, apperr.NotFound("EventCategoryMapping")
	}
	return &m, nil
}

func (s *fakeMappingStore) GetByPair(_ context.Context, eventID, categoryID string) (*model.EventCategoryMapping, error) {
	for _, m := range s.mappings {
		if m.EventID == eventID && m.CategoryID == categoryID {
			m := m
			return &m, nil
		}
	}
	return nil, apperr.NotFound("EventCategoryMapping")
}

func (s *fakeMappingStore) List(_ context.Context, _ model.EventCategoryMappingFilter) ([]model.EventCategoryMapping, error) {
	var out []model.EventCategoryMapping
	for _, m := range s.mappings {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeMappingStore) Update(_ context.Context, m *model.EventCategoryMapping) (*model.EventCategoryMapping, error) {
	if _, ok := s.mappings[m.ID]; !ok {
		return nil, apperr.NotFound("EventCategoryMapping")
	}
	now := time.Now().UTC()
	m.UpdatedAt = &now
	s.mappings[m.ID] = *m
	return m, nil
}

func (s *fakeMappingStore) Delete(_ context.Context, id string) error {
	if _, ok := s.mappings[id]; !ok {
		return apperr.NotFound("EventCategoryMapping")
	}
	delete(s.mappings, id)
	return nil
}

type fakeEventHistoryStore struct {
	seq  int
	rows map[string]model.EventModerationHistory
}

func newFakeEventHistoryStore() *fakeEventHistoryStore {
	return &fakeEventHistoryStore{rows: map[string]model.EventModerationHistory{}}
}

func (s *fakeEventHistoryStore) Create(_ context.Context, p model.CreateEventModerationHistoryPayload) (*model.EventModerationHistory, error) {
	s.seq++
	h := model.EventModerationHistory{
		ID:        fmt.Sprintf("event-history-%d", s.seq),
		EventID:   p.EventID,
		CuratorID: p.CuratorID,
		Action:    p.Action,
		Comment:   p.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.rows[h.ID] = h
	return &h, nil
}

func (s *fakeEventHistoryStore) GetByID(_ context.Context, id string) (*model.EventModerationHistory, error) {
	h, ok := s.rows[id]
	if !ok {
		return nil, apperr.NotFound("EventModerationHistory")
	}
	return &h, nil
}

func (s *fakeEventHistoryStore) List(_ context.Context, _ model.EventModerationHistoryFilter) ([]model.EventModerationHistory, error) {
	var out []model.EventModerationHistory
	for _, h := range s.rows {
		out = append(out, h)
	}
	return out, nil
}

func (s *fakeEventHistoryStore) Update(_ context.Context, h *model.EventModerationHistory) (*model.EventModerationHistory, error) {
	if _, ok := s.rows[h.ID]; !ok {
		return nil, apperr.NotFound("EventModerationHistory")
	}
	now := time.Now().UTC()
	h.UpdatedAt = &now
	s.rows[h.ID] = *h
	return h, nil
}

func (s *fakeEventHistoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.rows[id]; !ok {
		return apperr.NotFound("EventModerationHistory")
	}
	delete(s.rows, id)
	return nil
}

type fakeApplicationHistoryStore struct {
	seq  int
	rows map[string]model.ApplicationHistory
}

func newFakeApplicationHistoryStore() *fakeApplicationHistoryStore {
	return &fakeApplicationHistoryStore{rows: map[string]model.ApplicationHistory{}}
}

func (s *fakeApplicationHistoryStore) Create(_ context.Context, p model.CreateApplicationHistoryPayload) (*model.ApplicationHistory, error) {
	s.seq++
	h := model.ApplicationHistory{
		ID:            fmt.Sprintf("application-history-%d", s.seq),
		ApplicationID: p.ApplicationID,
		ModeratorID:   p.ModeratorID,
		Action:        p.Action,
		Comment:       p.Comment,
		CreatedAt:     time.Now().UTC(),
	}
	s.rows[h.ID] = h
	return &h, nil
}

func (s *fakeApplicationHistoryStore) GetByID(_ context.Context, id string) (*model.ApplicationHistory, error) {
	h, ok := s.rows[id]
	if !ok {
		return nil, apperr.NotFound("ApplicationHistory")
	}
	return &h, nil
}

func (s *fakeApplicationHistoryStore) List(_ context.Context, _ model.ApplicationHistoryFilter) ([]model.ApplicationHistory, error) {
	var out []model.ApplicationHistory
	for _, h := range s.rows {
		out = append(out, h)
	}
	return out, nil
}

func (s *fakeApplicationHistoryStore) Update(_ context.Context, h *model.ApplicationHistory) (*model.ApplicationHistory, error) {
	if _, ok := s.rows[h.ID]; !ok {
		return nil, apperr.NotFound("ApplicationHistory")
	}
	now := time.Now().UTC()
	h.UpdatedAt = &now
	s.rows[h.ID] = *h
	return h, nil
}

func (s *fakeApplicationHistoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.rows[id]; !ok {
		return apperr.NotFound("ApplicationHistory")
	}
	delete(s.rows, id)
	return nil
}
