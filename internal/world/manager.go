package world

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/phases"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/presence"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
	"github.com/KirkDiggler/rpg-progression/internal/stores/progression"
)

// ManagerConfig holds the dependencies shared by every world
type ManagerConfig struct {
	Settings              *config.Config
	ProgressionRepository progressionrepo.Repository
	PartyRepository       partyrepo.Repository
	// PhaseSource is optional; without it only built-in phases exist
	PhaseSource phases.Source
	Clock       clock.Clock
	IDGenerator idgen.Generator
	// EventBus carries gameplay events to the loaded worlds. Each session
	// subscribes on load and unsubscribes on unload.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *ManagerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.ProgressionRepository == nil {
		vb.RequiredField("ProgressionRepository")
	}
	if c.PartyRepository == nil {
		vb.RequiredField("PartyRepository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Manager loads and unloads world sessions and flushes them periodically
type Manager struct {
	settings        *config.Config
	progressionRepo progressionrepo.Repository
	partyRepo       partyrepo.Repository
	phaseSource     phases.Source
	clock           clock.Clock
	idGen           idgen.Generator
	eventBus        events.EventBus
	presence        *presence.Tracker

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a manager with no worlds loaded
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracker, err := presence.New(&presence.Config{TTL: cfg.Settings.Proximity.PresenceTTL})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create presence tracker")
	}

	return &Manager{
		settings:        cfg.Settings,
		progressionRepo: cfg.ProgressionRepository,
		partyRepo:       cfg.PartyRepository,
		phaseSource:     cfg.PhaseSource,
		clock:           cfg.Clock,
		idGen:           cfg.IDGenerator,
		eventBus:        cfg.EventBus,
		presence:        tracker,
		sessions:        make(map[string]*Session),
	}, nil
}

// Presence returns the connected-player tracker shared by all worlds
func (m *Manager) Presence() *presence.Tracker {
	return m.presence
}

// Session returns a loaded world
func (m *Manager) Session(world string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[world]
	return s, ok
}

// Worlds returns the ids of the loaded worlds, sorted
func (m *Manager) Worlds() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sessions))
	for world := range m.sessions {
		out = append(out, world)
	}
	sort.Strings(out)
	return out
}

// Load builds the session for world and reads its persisted state. Loading
// an already loaded world returns the existing session.
func (m *Manager) Load(ctx context.Context, world string) (*Session, error) {
	if world == "" {
		return nil, errors.InvalidArgument("world cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[world]; ok {
		return s, nil
	}

	s, err := m.build(ctx, world)
	if err != nil {
		return nil, err
	}

	if err := s.progression.Load(ctx); err != nil {
		s.parties.Close()
		return nil, err
	}
	if err := s.parties.Load(ctx); err != nil {
		s.parties.Close()
		return nil, err
	}

	s.subscribe(m.eventBus)
	m.sessions[world] = s
	slog.InfoContext(ctx, "world loaded", "world", world)
	return s, nil
}

func (m *Manager) build(ctx context.Context, world string) (*Session, error) {
	registry, err := phases.New(ctx, &phases.Config{
		Builtins: m.settings.BuiltinPhases(),
		Source:   m.phaseSource,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create phase registry")
	}

	broadcaster, err := broadcast.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create broadcaster")
	}

	progressionStore, err := progression.New(&progression.Config{
		World:               world,
		Repository:          m.progressionRepo,
		Phases:              registry,
		Locator:             m.presence,
		Publisher:           broadcaster,
		MultiplierIncrement: m.settings.Party.MultiplierIncrement,
		ProximityRadius:     m.settings.Proximity.Radius,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create progression store")
	}

	partyStore, err := party.New(&party.Config{
		World:               world,
		Repository:          m.partyRepo,
		Phases:              registry,
		Progression:         progressionStore,
		Publisher:           broadcaster,
		IDGenerator:         m.idGen,
		Clock:               m.clock,
		MaxSize:             m.settings.Party.MaxSize,
		NameMinLength:       m.settings.Party.NameMinLength,
		NameMaxLength:       m.settings.Party.NameMaxLength,
		MultiplierIncrement: m.settings.Party.MultiplierIncrement,
		InviteTTL:           m.settings.Party.InviteTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create party store")
	}
	progressionStore.SetPartyLookup(partyStore)

	return &Session{
		world:       world,
		registry:    registry,
		progression: progressionStore,
		parties:     partyStore,
		broadcaster: broadcaster,
		presence:    m.presence,
	}, nil
}

// Unload flushes the world one last time and discards its session
func (m *Manager) Unload(ctx context.Context, world string) error {
	m.mu.Lock()
	s, ok := m.sessions[world]
	delete(m.sessions, world)
	m.mu.Unlock()

	if !ok {
		return errors.NotFoundf("world %s is not loaded", world)
	}

	err := s.close(ctx)
	slog.InfoContext(ctx, "world unloaded", "world", world)
	return err
}

// FlushAll flushes every loaded world. A failing world does not stop the
// others; the first error is returned.
func (m *Manager) FlushAll(ctx context.Context) error {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	var first error
	for _, s := range sessions {
		if err := s.Flush(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Run flushes all worlds every interval until ctx is cancelled, then
// unloads every world with a final flush
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.InvalidArgument("flush interval must be positive")
	}

	go m.presence.Start()
	defer m.presence.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// the run context is gone; the final flush gets its own
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return m.Close(shutdownCtx)
		case <-ticker.C:
			if err := m.FlushAll(ctx); err != nil {
				slog.WarnContext(ctx, "periodic flush incomplete", "error", err.Error())
			}
		}
	}
}

// Close unloads every world
func (m *Manager) Close(ctx context.Context) error {
	var first error
	for _, world := range m.Worlds() {
		if err := m.Unload(ctx, world); err != nil && first == nil {
			first = err
		}
	}
	return first
}
