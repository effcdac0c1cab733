// Package tracker holds the household's kids and missions behind a single
// state container. Every change goes through Dispatch, replaces the affected
// collection wholesale, and is written back to storage.
package tracker

import (
	"context"
	"time"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/storage"
	"github.com/akyairhashvil/kidquest/internal/util"
)

// maxIDAttempts bounds regeneration when an id source returns a taken id.
const maxIDAttempts = 8

// Snapshot is a read-only view of the store. The slices are shared with the
// store and must not be modified; the store never modifies them either.
type Snapshot struct {
	Kids   []models.Kid
	Tasks  []models.Task
	Filter models.FilterID
	Draft  models.Draft
}

// TrackerState returns the persisted part of the snapshot.
func (s Snapshot) TrackerState() models.TrackerState {
	return models.TrackerState{Kids: s.Kids, Tasks: s.Tasks}
}

// Store is the single writer of tracker state. It is not safe for concurrent
// use; the TUI drives it from one update loop.
type Store struct {
	kids   []models.Kid
	tasks  []models.Task
	filter models.FilterID
	draft  models.Draft

	backend storage.Backend
	key     string
	now     func() time.Time
	ids     IDSource

	restored   bool
	persistErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation and completion stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource overrides task id generation.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithStorageKey overrides the storage entry name.
func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New loads the stored state from backend, or the defaults when nothing valid
// is stored. A nil backend behaves like storage.Nop.
func New(ctx context.Context, backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     config.StorageKey,
		now:     time.Now,
		ids:     FallbackIDSource{},
		filter:  models.FilterToday,
	}
	for _, opt := range opts {
		opt(s)
	}
	if state, ok := storage.LoadState(ctx, backend, s.key); ok {
		s.kids, s.tasks = state.Kids, state.Tasks
		s.restored = true
	} else {
		defaults := DefaultState()
		s.kids, s.tasks = defaults.Kids, defaults.Tasks
	}
	s.draft = NewDraft(s.kids)
	return s
}

// State returns the current snapshot.
func (s *Store) State() Snapshot {
	return Snapshot{Kids: s.kids, Tasks: s.tasks, Filter: s.filter, Draft: s.draft}
}

// Restored reports whether New found a valid stored state.
func (s *Store) Restored() bool { return s.restored }

// LastPersistError is the error from the most recent write, nil once a write
// succeeds.
func (s *Store) LastPersistError() error { return s.persistErr }

// Dispatch applies action and persists both collections if either changed.
// It reports whether the action had any effect.
func (s *Store) Dispatch(ctx context.Context, action Action) bool {
	c := action.apply(s, s.now())
	if c.kids {
		s.draft = reconcileDraft(s.draft, s.kids)
	}
	if c.kids || c.tasks {
		s.persist(ctx)
	}
	return c.applied
}

func (s *Store) persist(ctx context.Context) {
	err := storage.SaveState(ctx, s.backend, s.key, models.TrackerState{Kids: s.kids, Tasks: s.tasks})
	if err != nil {
		util.LogError("persist tracker state", err)
	}
	s.persistErr = err
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) newTaskID() string {
	var id string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id = s.ids.NewID()
		if id != "" && s.taskIndex(id) < 0 {
			return id
		}
	}
	// The source keeps colliding; the fallback generator has its own entropy.
	for {
		id = fallbackID()
		if s.taskIndex(id) < 0 {
			return id
		}
	}
}

// Kid returns the kid with id.
func (s *Store) Kid(id string) (models.Kid, bool) {
	for _, kid := range s.kids {
		if kid.ID == id {
			return kid, true
		}
	}
	return models.Kid{}, false
}

// KidName returns the display name for id, or the placeholder for unknown kids.
func (s *Store) KidName(id string) string {
	if kid, ok := s.Kid(id); ok {
		return kid.Name
	}
	return config.UnknownKidName
}

func (s *Store) Stats() Stats               { return ComputeStats(s.kids, s.tasks) }
func (s *Store) FilterCounts() FilterCounts { return CountFilters(s.tasks) }
func (s *Store) Leaderboard() []models.Kid  { return Leaderboard(s.kids) }
func (s *Store) Upcoming() []models.Task    { return Upcoming(s.tasks, config.UpcomingLimit) }
func (s *Store) Rollups() []KidRollup       { return KidRollups(s.kids, s.tasks) }

// VisibleTasks is the mission board for the active filter.
func (s *Store) VisibleTasks() []models.Task { return VisibleTasks(s.tasks, s.filter) }

// Celebrating reports whether the today board has been cleared.
func (s *Store) Celebrating() bool {
	return s.filter == models.FilterToday && len(s.VisibleTasks()) == 0
}
