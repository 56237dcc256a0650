package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"revobot/application/dto"
	"revobot/domain/entities"
	"revobot/domain/events"
	"revobot/domain/interfaces"
)

// memoryStore is an in-memory stand-in for the database shared by every unit of work
type memoryStore struct {
	mu            sync.Mutex
	nextID        int64
	settings      map[int64]*entities.GuildSettings
	arrivals      map[int64]*entities.Arrival
	condemnations map[int64]*entities.Condemnation
	published     []events.Event
	markCalls     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		settings:      make(map[int64]*entities.GuildSettings),
		arrivals:      make(map[int64]*entities.Arrival),
		condemnations: make(map[int64]*entities.Condemnation),
	}
}

func (s *memoryStore) configure(guildID int64, arrivalChannel, condemnationChannel, notifierRole *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[guildID] = &entities.GuildSettings{
		GuildID:               guildID,
		ArrivalChannelID:      arrivalChannel,
		CondemnationChannelID: condemnationChannel,
		NotifierRoleID:        notifierRole,
	}
}

func (s *memoryStore) addArrival(guildID int64, name string, date time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.arrivals[s.nextID] = &entities.Arrival{
		ID:          s.nextID,
		GuildID:     guildID,
		DisplayName: name,
		EventDate:   entities.CivilDate(date),
		Profile:     entities.ArrivalProfilePvmOpti,
	}
	return s.nextID
}

func (s *memoryStore) addCondemnation(guildID int64, name string, date time.Time, roleID *int64, label *string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.condemnations[s.nextID] = &entities.Condemnation{
		ID:               s.nextID,
		GuildID:          guildID,
		DisplayName:      name,
		EventDate:        entities.CivilDate(date),
		RestoreRoleID:    roleID,
		RestoreRoleLabel: label,
	}
	return s.nextID
}

func (s *memoryStore) arrivalSent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arrivals[id].ReminderSent
}

func (s *memoryStore) condemnationSent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.condemnations[id].ReminderSent
}

// fakeUnitOfWorkFactory creates units of work over a memoryStore
type fakeUnitOfWorkFactory struct {
	store *memoryStore
}

func (f *fakeUnitOfWorkFactory) CreateForGuild(guildID int64) UnitOfWork {
	return &fakeUnitOfWork{store: f.store, guildID: guildID}
}

func (f *fakeUnitOfWorkFactory) CreateGlobal() UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store   *memoryStore
	guildID int64
	started bool
	pending []events.Event
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	if u.started {
		return errors.New("transaction already started")
	}
	u.started = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if !u.started {
		return errors.New("no transaction to commit")
	}
	u.started = false
	u.store.mu.Lock()
	u.store.published = append(u.store.published, u.pending...)
	u.store.mu.Unlock()
	u.pending = nil
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.started = false
	u.pending = nil
	return nil
}

func (u *fakeUnitOfWork) GuildSettingsRepository() interfaces.GuildSettingsRepository {
	panic("not used by the dispatcher")
}

func (u *fakeUnitOfWork) ArrivalRepository() interfaces.ArrivalRepository {
	return &fakeArrivalRepository{store: u.store, guildID: u.guildID}
}

func (u *fakeUnitOfWork) CondemnationRepository() interfaces.CondemnationRepository {
	return &fakeCondemnationRepository{store: u.store, guildID: u.guildID}
}

func (u *fakeUnitOfWork) EventBus() interfaces.EventPublisher {
	return u
}

func (u *fakeUnitOfWork) Publish(event events.Event) error {
	u.pending = append(u.pending, event)
	return nil
}

type fakeArrivalRepository struct {
	store   *memoryStore
	guildID int64
}

func (r *fakeArrivalRepository) Create(ctx context.Context, arrival *entities.Arrival) error {
	arrival.ID = r.store.addArrival(r.guildID, arrival.DisplayName, arrival.EventDate)
	return nil
}

func (r *fakeArrivalRepository) GetByID(ctx context.Context, id int64) (*entities.Arrival, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.arrivals[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeArrivalRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	return r.due(asOf, false), nil
}

func (r *fakeArrivalRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	return r.due(asOf, true), nil
}

func (r *fakeArrivalRepository) due(asOf time.Time, scoped bool) []*entities.DueArrival {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var due []*entities.DueArrival
	for _, a := range r.store.arrivals {
		if scoped && a.GuildID != r.guildID {
			continue
		}
		settings := r.store.settings[a.GuildID]
		if a.ReminderSent || settings == nil || !settings.HasArrivalChannel() || !entities.IsReminderDue(a.EventDate, asOf) {
			continue
		}
		due = append(due, &entities.DueArrival{
			Arrival:        *a,
			ChannelID:      *settings.ArrivalChannelID,
			NotifierRoleID: settings.NotifierRoleID,
		})
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due
}

func (r *fakeArrivalRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.markCalls++
	a := r.store.arrivals[id]
	if a.ReminderSent {
		return false, nil
	}
	a.ReminderSent = true
	return true, nil
}

type fakeCondemnationRepository struct {
	store   *memoryStore
	guildID int64
}

func (r *fakeCondemnationRepository) Create(ctx context.Context, c *entities.Condemnation) error {
	c.ID = r.store.addCondemnation(r.guildID, c.DisplayName, c.EventDate, c.RestoreRoleID, c.RestoreRoleLabel)
	return nil
}

func (r *fakeCondemnationRepository) GetByID(ctx context.Context, id int64) (*entities.Condemnation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.condemnations[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCondemnationRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	return r.due(asOf, false), nil
}

func (r *fakeCondemnationRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	return r.due(asOf, true), nil
}

func (r *fakeCondemnationRepository) due(asOf time.Time, scoped bool) []*entities.DueCondemnation {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var due []*entities.DueCondemnation
	for _, c := range r.store.condemnations {
		if scoped && c.GuildID != r.guildID {
			continue
		}
		settings := r.store.settings[c.GuildID]
		if c.ReminderSent || settings == nil || !settings.HasCondemnationChannel() || !entities.IsReminderDue(c.EventDate, asOf) {
			continue
		}
		due = append(due, &entities.DueCondemnation{
			Condemnation:   *c,
			ChannelID:      *settings.CondemnationChannelID,
			NotifierRoleID: settings.NotifierRoleID,
		})
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due
}

func (r *fakeCondemnationRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.markCalls++
	c := r.store.condemnations[id]
	if c.ReminderSent {
		return false, nil
	}
	c.ReminderSent = true
	return true, nil
}

func (r *fakeCondemnationRepository) CountByDisplayName(ctx context.Context, displayName string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, c := range r.store.condemnations {
		if c.GuildID == r.guildID && strings.EqualFold(c.DisplayName, displayName) {
			count++
		}
	}
	return count, nil
}

// recordingPoster records delivered reminders and fails for configured channels
type recordingPoster struct {
	mu             sync.Mutex
	failChannels   map[int64]bool
	arrivals       []dto.ArrivalReminderDTO
	condemnations  []dto.CondemnationReminderDTO
	beforeDelivery func()
}

func newRecordingPoster() *recordingPoster {
	return &recordingPoster{failChannels: make(map[int64]bool)}
}

func (p *recordingPoster) failChannel(channelID int64, fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failChannels[channelID] = fail
}

func (p *recordingPoster) PostArrivalReminder(ctx context.Context, reminder dto.ArrivalReminderDTO) error {
	if p.beforeDelivery != nil {
		p.beforeDelivery()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failChannels[reminder.ChannelID] {
		return fmt.Errorf("channel %d not found", reminder.ChannelID)
	}
	p.arrivals = append(p.arrivals, reminder)
	return nil
}

func (p *recordingPoster) PostCondemnationReminder(ctx context.Context, reminder dto.CondemnationReminderDTO) error {
	if p.beforeDelivery != nil {
		p.beforeDelivery()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failChannels[reminder.ChannelID] {
		return fmt.Errorf("missing permissions for channel %d", reminder.ChannelID)
	}
	p.condemnations = append(p.condemnations, reminder)
	return nil
}

func (p *recordingPoster) arrivalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.arrivals)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
