// Package mount tracks server-rendered avatars between the initial render
// and the image events the browser reports for them. Every mount owns its
// own state machine; nothing is shared between mounts.
package mount

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/avatarkit/internal/avatar"
	"github.com/nfrund/avatarkit/internal/pubsub"
	"github.com/nfrund/avatarkit/internal/theme"
)

var (
	ErrMountNotFound  = errors.New("mount: not found")
	ErrNotInteractive = errors.New("mount: avatar is not interactive")
)

// StateChanged is published whenever an image event changes a mount's state.
var StateChanged = pubsub.NewEvent[Transition]("avatar.state.changed", "An avatar mount moved to a new render state")

// Transition is the payload of StateChanged.
type Transition struct {
	MountID string `json:"mount_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// ClickFunc is the caller-supplied click handler.
type ClickFunc func(ctx context.Context, id string, spec avatar.Spec) error

// Mount is one rendered avatar instance.
type Mount struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	machine *avatar.Machine
}

// Spec returns the mounted descriptor.
func (m *Mount) Spec() avatar.Spec {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.machine.Spec()
}

// State returns the current render state.
func (m *Mount) State() avatar.RenderState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.machine.State()
}

// View resolves the current state against th.
func (m *Mount) View(th theme.Theme) avatar.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.machine.View(th)
}

func (m *Mount) apply(event func(*avatar.Machine)) (from, to avatar.RenderState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	from = m.machine.State()
	event(m.machine)
	return from, m.machine.State()
}

// Store holds live mounts keyed by id.
type Store struct {
	mu      sync.RWMutex
	mounts  map[string]*Mount
	order   []string // ids in creation order, may hold swept ids
	limit   int
	pub     pubsub.Publisher
	onClick ClickFunc
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPublisher publishes state transitions to p.
func WithPublisher(p pubsub.Publisher) Option {
	return func(s *Store) { s.pub = p }
}

// WithClickHandler sets the handler invoked for clicks on interactive mounts.
func WithClickHandler(fn ClickFunc) Option {
	return func(s *Store) { s.onClick = fn }
}

// WithMaxMounts caps the number of live mounts. Mounting beyond n evicts
// the oldest mounts first. Zero or less means no cap.
func WithMaxMounts(n int) Option {
	return func(s *Store) { s.limit = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		mounts: make(map[string]*Mount),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount registers a new instance of spec.
func (s *Store) Mount(spec avatar.Spec) *Mount {
	m := &Mount{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
		machine:   avatar.NewMachine(spec),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 {
		evicted := 0
		for len(s.mounts) >= s.limit && len(s.order) > 0 {
			id := s.order[0]
			s.order = s.order[1:]
			if _, ok := s.mounts[id]; ok {
				delete(s.mounts, id)
				evicted++
			}
		}
		if evicted > 0 {
			slog.Debug("Evicted oldest avatar mounts", "evicted", evicted, "limit", s.limit)
		}
	}
	s.mounts[m.ID] = m
	s.order = append(s.order, m.ID)
	return m
}

// Get looks up a mount.
func (s *Store) Get(id string) (*Mount, error) {
	s.mu.RLock()
	m, ok := s.mounts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrMountNotFound
	}
	return m, nil
}

// Len returns the number of live mounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mounts)
}

// Load records a successful image load for id.
func (s *Store) Load(ctx context.Context, id string) (*Mount, error) {
	return s.dispatch(ctx, id, (*avatar.Machine).OnLoad)
}

// Fail records an image error for id.
func (s *Store) Fail(ctx context.Context, id string) (*Mount, error) {
	return s.dispatch(ctx, id, (*avatar.Machine).OnError)
}

func (s *Store) dispatch(ctx context.Context, id string, event func(*avatar.Machine)) (*Mount, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	from, to := m.apply(event)
	if from != to {
		s.publish(ctx, Transition{MountID: id, From: from.String(), To: to.String()})
	}
	return m, nil
}

func (s *Store) publish(ctx context.Context, t Transition) {
	if s.pub == nil {
		return
	}
	if err := pubsub.Publish(ctx, s.pub, StateChanged, t.MountID, t); err != nil {
		slog.Warn("Failed to publish avatar transition", "mount_id", t.MountID, "error", err)
	}
}

// Click invokes the click handler for an interactive mount. Clicks on
// non-interactive mounts return ErrNotInteractive and do nothing.
func (s *Store) Click(ctx context.Context, id string) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}

	spec := m.Spec()
	if !spec.Interactive {
		return ErrNotInteractive
	}
	if s.onClick == nil {
		return nil
	}
	return s.onClick(ctx, id, spec)
}

// Sweep removes mounts created more than ttl ago and returns how many were removed.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, m := range s.mounts {
		if m.CreatedAt.Before(cutoff) {
			delete(s.mounts, id)
			removed++
		}
	}

	live := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.mounts[id]; ok {
			live = append(live, id)
		}
	}
	clear(s.order[len(live):])
	s.order = live
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(ttl); n > 0 {
				slog.Debug("Swept expired avatar mounts", "removed", n, "remaining", s.Len())
			}
		}
	}
}
