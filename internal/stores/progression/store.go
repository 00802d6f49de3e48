// Package progression owns the per-player progression records of one world.
// Every record is an independently lockable unit; cross-record callers (the
// party store) must acquire their party before calling in here.
package progression

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/presence"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
)

// DefaultProximityRadius is the scan radius, in blocks, of the nearby-player multiplier
const DefaultProximityRadius = 32.0

// PhaseSource supplies the current phase definitions
type PhaseSource interface {
	AllPhases() []*entities.PhaseDefinition
	GetPhase(id entities.PhaseID) (*entities.PhaseDefinition, bool)
	ActiveDifficulty(completed map[entities.PhaseID]bool) entities.Difficulty
}

// Locator enumerates connected players of a world
type Locator interface {
	ForEachInWorld(world string, v presence.Visitor)
}

// PartyLookup is the view of the party store this store needs
type PartyLookup interface {
	// MultiplierFor returns the multiplier of the player's party
	MultiplierFor(playerID uuid.UUID) (float64, bool)
	// SendPartyUpdate pushes the player's party snapshot to its members
	SendPartyUpdate(playerID uuid.UUID)
}

// Config holds the dependencies for the store
type Config struct {
	World      string
	Repository progressionrepo.Repository
	Phases     PhaseSource
	Locator    Locator
	Publisher  broadcast.Sink

	MultiplierIncrement float64
	// ProximityRadius defaults to DefaultProximityRadius when zero
	ProximityRadius float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("World", c.World, vb)
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Phases == nil {
		vb.RequiredField("Phases")
	}
	if c.Locator == nil {
		vb.RequiredField("Locator")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	errors.ValidateNonNegative("MultiplierIncrement", c.MultiplierIncrement, vb)
	errors.ValidateNonNegative("ProximityRadius", c.ProximityRadius, vb)

	return vb.Build()
}

type entry struct {
	mu     sync.RWMutex
	record *entities.ProgressionRecord
}

// Store owns the progression records of one world
type Store struct {
	world     string
	repo      progressionrepo.Repository
	phases    PhaseSource
	locator   Locator
	publisher broadcast.Sink
	k         float64
	radius    float64

	mu      sync.RWMutex
	records map[uuid.UUID]*entry
	parties PartyLookup

	dirtyMu sync.Mutex
	dirty   map[uuid.UUID]struct{}
}

// New creates an empty store. Call Load to read persisted records.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	radius := cfg.ProximityRadius
	if radius == 0 {
		radius = DefaultProximityRadius
	}

	return &Store{
		world:     cfg.World,
		repo:      cfg.Repository,
		phases:    cfg.Phases,
		locator:   cfg.Locator,
		publisher: cfg.Publisher,
		k:         cfg.MultiplierIncrement,
		radius:    radius,
		records:   make(map[uuid.UUID]*entry),
		dirty:     make(map[uuid.UUID]struct{}),
	}, nil
}

// SetPartyLookup connects the party store. Until it is set every player
// counts as solo.
func (s *Store) SetPartyLookup(parties PartyLookup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = parties
}

func (s *Store) partyLookup() PartyLookup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parties
}

// World returns the world this store belongs to
func (s *Store) World() string {
	return s.world
}

func (s *Store) lookup(playerID uuid.UUID) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[playerID]
	return e, ok
}

// entry returns the player's record, creating a default one on first reference
func (s *Store) entry(playerID uuid.UUID) *entry {
	if e, ok := s.lookup(playerID); ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.records[playerID]; ok {
		return e
	}

	record := entities.NewProgressionRecord(playerID)
	record.Reevaluate(s.phases.AllPhases())
	e := &entry{record: record}
	s.records[playerID] = e
	return e
}

// mutate runs fn under the record's write lock and re-evaluates phases.
// It returns fn's result and whether any phase flag flipped.
func (s *Store) mutate(playerID uuid.UUID, fn func(r *entities.ProgressionRecord) bool) (changed, flipped bool) {
	e := s.entry(playerID)
	e.mu.Lock()
	defer e.mu.Unlock()

	changed = fn(e.record)
	if changed {
		flipped = e.record.Reevaluate(s.phases.AllPhases())
	}
	return changed, flipped
}

// Get returns a copy of the player's record, creating a default one if absent
func (s *Store) Get(playerID uuid.UUID) *entities.ProgressionRecord {
	e := s.entry(playerID)
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record.Clone()
}

// RecordKill increments the kill counter for mobType. Returns true when a
// phase flag flipped as a result.
func (s *Store) RecordKill(playerID uuid.UUID, mobType string) bool {
	_, flipped := s.mutate(playerID, func(r *entities.ProgressionRecord) bool {
		r.IncrementKill(mobType)
		return true
	})
	s.markDirtyAndSendProgression(playerID)

	if flipped {
		slog.Info("phase state changed",
			"world", s.world,
			"player_id", playerID.String(),
			"mob_type", mobType)
	}
	return flipped
}

// SetObjective sets a built-in objective flag. Returns false when the value
// was already set.
func (s *Store) SetObjective(playerID uuid.UUID, objective string, value bool) bool {
	changed, _ := s.mutate(playerID, func(r *entities.ProgressionRecord) bool {
		return r.SetObjective(objective, value)
	})
	if changed {
		s.markDirtyAndSendProgression(playerID)
	}
	return changed
}

// SetCustomObjective sets an objective of a custom phase
func (s *Store) SetCustomObjective(playerID uuid.UUID, phase entities.PhaseID, objective string, value bool) bool {
	changed, _ := s.mutate(playerID, func(r *entities.ProgressionRecord) bool {
		return r.SetCustomObjective(phase, objective, value)
	})
	if changed {
		s.markDirtyAndSendProgression(playerID)
	}
	return changed
}

// EvaluatePhases recomputes the player's phase flags against the current
// definitions. Returns true if any flag flipped.
func (s *Store) EvaluatePhases(playerID uuid.UUID) bool {
	_, flipped := s.mutate(playerID, func(*entities.ProgressionRecord) bool { return true })
	if flipped {
		s.markDirtyAndSendProgression(playerID)
	}
	return flipped
}

// ReevaluateAll recomputes every loaded record, e.g. after a phase reload.
// Returns the number of records whose flags changed.
func (s *Store) ReevaluateAll() int {
	s.mu.RLock()
	ids := make([]uuid.UUID, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	changed := 0
	for _, id := range ids {
		if s.EvaluatePhases(id) {
			changed++
		}
	}
	return changed
}

// IsPhaseLocked reports whether phase is enabled and not complete for the
// player. Unknown and disabled phases are never locked. Does not create a
// record for an unseen player.
func (s *Store) IsPhaseLocked(playerID uuid.UUID, phase entities.PhaseID) bool {
	def, ok := s.phases.GetPhase(phase)
	if !ok || !def.Enabled {
		return false
	}

	e, ok := s.lookup(playerID)
	if !ok {
		fresh := entities.NewProgressionRecord(playerID)
		fresh.Reevaluate(s.phases.AllPhases())
		return !fresh.PhaseComplete(phase)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.record.PhaseComplete(phase)
}

// CompletePhase forces phase complete for the player until Reset. Returns
// false for unknown phases or when the phase was already complete.
func (s *Store) CompletePhase(playerID uuid.UUID, phase entities.PhaseID) bool {
	if _, ok := s.phases.GetPhase(phase); !ok {
		return false
	}

	e := s.entry(playerID)
	e.mu.Lock()
	wasComplete := e.record.PhaseComplete(phase)
	e.record.Overrides[phase] = true
	e.record.Reevaluate(s.phases.AllPhases())
	e.mu.Unlock()

	s.MarkDirtyAndSendUpdates(playerID)

	slog.Info("phase completed by override",
		"world", s.world,
		"player_id", playerID.String(),
		"phase", string(phase))
	return !wasComplete
}

// Reset returns the player's record to defaults. Other players and the
// party's shared state are untouched.
func (s *Store) Reset(playerID uuid.UUID) {
	e := s.entry(playerID)
	e.mu.Lock()
	e.record = entities.NewProgressionRecord(playerID)
	e.record.Reevaluate(s.phases.AllPhases())
	e.mu.Unlock()

	s.MarkDirtyAndSendUpdates(playerID)

	slog.Info("progression reset",
		"world", s.world,
		"player_id", playerID.String())
}

// Progress returns a copy of the player's mergeable progress
func (s *Store) Progress(playerID uuid.UUID) entities.Progress {
	e := s.entry(playerID)
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record.Progress.Clone()
}

// Absorb merges p into the player's progress (monotone union). It does not
// push a party update, so it is safe to call while holding a party.
func (s *Store) Absorb(playerID uuid.UUID, p entities.Progress) bool {
	changed, _ := s.mutate(playerID, func(r *entities.ProgressionRecord) bool {
		return r.Merge(p)
	})
	if changed {
		s.markDirtyAndSendProgression(playerID)
	}
	return changed
}

// PhaseDifficulty returns the combined difficulty of the custom phases the
// player is currently working through
func (s *Store) PhaseDifficulty(playerID uuid.UUID) entities.Difficulty {
	e, ok := s.lookup(playerID)
	if !ok {
		return s.phases.ActiveDifficulty(nil)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return s.phases.ActiveDifficulty(e.record.Phases)
}

// multiplierAccumulator sums the multipliers of the players within radius
// of center
type multiplierAccumulator struct {
	center  entities.Position
	radius  float64
	solo    float64
	parties PartyLookup
	sum     float64
	n       int
}

// Visit implements presence.Visitor
func (a *multiplierAccumulator) Visit(playerID uuid.UUID, pos entities.Position) bool {
	if !a.center.Within(pos, a.radius) {
		return true
	}
	m := a.solo
	if a.parties != nil {
		if pm, ok := a.parties.MultiplierFor(playerID); ok {
			m = pm
		}
	}
	a.sum += m
	a.n++
	return true
}

func (a *multiplierAccumulator) average() float64 {
	if a.n == 0 {
		return 1.0
	}
	return a.sum / float64(a.n)
}

// accumulators are reused across spawn checks
var accumulators = sync.Pool{
	New: func() any { return new(multiplierAccumulator) },
}

// CalculateAverageMultiplierNearPosition averages the multiplier of every
// connected player of world within the proximity radius of (x, y, z).
// Partied players count with their party's multiplier, solo players with
// 1.0. Returns 1.0 when nobody is in range.
func (s *Store) CalculateAverageMultiplierNearPosition(x, y, z float64, world string) float64 {
	acc := accumulators.Get().(*multiplierAccumulator)
	*acc = multiplierAccumulator{
		center:  entities.Position{X: x, Y: y, Z: z},
		radius:  s.radius,
		solo:    entities.Multiplier(1, s.k),
		parties: s.partyLookup(),
	}

	s.locator.ForEachInWorld(world, acc)
	avg := acc.average()

	*acc = multiplierAccumulator{}
	accumulators.Put(acc)
	return avg
}

// MarkDirtyAndSendUpdates marks the record for the next flush and pushes
// fresh snapshots to the player and their party
func (s *Store) MarkDirtyAndSendUpdates(playerID uuid.UUID) {
	s.markDirty(playerID)
	s.sendProgression(playerID)
	if parties := s.partyLookup(); parties != nil {
		parties.SendPartyUpdate(playerID)
	}
}

// Snapshot returns the player's outbound snapshot
func (s *Store) Snapshot(playerID uuid.UUID) broadcast.ProgressionSnapshot {
	e := s.entry(playerID)
	e.mu.RLock()
	defer e.mu.RUnlock()
	return broadcast.NewProgressionSnapshot(e.record, s.phases.ActiveDifficulty(e.record.Phases))
}

// markDirtyAndSendProgression is the gameplay mutation path. The party
// snapshot carries only shared state, which the party store publishes itself
// when it changes.
func (s *Store) markDirtyAndSendProgression(playerID uuid.UUID) {
	s.markDirty(playerID)
	s.sendProgression(playerID)
}

func (s *Store) sendProgression(playerID uuid.UUID) {
	s.publisher.SendProgression(s.Snapshot(playerID))
}

func (s *Store) markDirty(playerID uuid.UUID) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.dirty[playerID] = struct{}{}
}

// DirtyCount returns the number of records waiting for a flush
func (s *Store) DirtyCount() int {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	return len(s.dirty)
}

// Load replaces the in-memory records with the persisted ones. Corrupted
// records come back as defaults and are marked dirty so the next flush
// rewrites them.
func (s *Store) Load(ctx context.Context) error {
	output, err := s.repo.LoadAll(ctx, progressionrepo.LoadAllInput{World: s.world})
	if err != nil {
		return errors.Wrapf(err, "failed to load progression for world %s", s.world)
	}

	defs := s.phases.AllPhases()
	records := make(map[uuid.UUID]*entry, len(output.Records))
	var stale []uuid.UUID
	for _, record := range output.Records {
		if record.Reevaluate(defs) {
			stale = append(stale, record.PlayerID)
		}
		records[record.PlayerID] = &entry{record: record}
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.dirtyMu.Lock()
	s.dirty = make(map[uuid.UUID]struct{})
	for _, id := range stale {
		s.dirty[id] = struct{}{}
	}
	for _, field := range output.Corrupted {
		if id, err := uuid.Parse(field); err == nil {
			s.dirty[id] = struct{}{}
		}
	}
	s.dirtyMu.Unlock()

	slog.InfoContext(ctx, "progression loaded",
		"world", s.world,
		"records", len(records),
		"corrupted", len(output.Corrupted))

	return nil
}

// Flush writes every dirty record. On failure the records stay dirty for
// the next attempt; the in-memory state remains authoritative.
func (s *Store) Flush(ctx context.Context) error {
	s.dirtyMu.Lock()
	pending := s.dirty
	s.dirty = make(map[uuid.UUID]struct{})
	s.dirtyMu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	batch := make([]*entities.ProgressionRecord, 0, len(pending))
	for id := range pending {
		e, ok := s.lookup(id)
		if !ok {
			continue
		}
		e.mu.RLock()
		batch = append(batch, e.record.Clone())
		e.mu.RUnlock()
	}

	_, err := s.repo.SaveBatch(ctx, progressionrepo.SaveBatchInput{
		World:   s.world,
		Records: batch,
	})
	if err != nil {
		s.dirtyMu.Lock()
		for id := range pending {
			s.dirty[id] = struct{}{}
		}
		s.dirtyMu.Unlock()

		slog.ErrorContext(ctx, "failed to flush progression, will retry",
			"world", s.world,
			"records", len(batch),
			"error", err.Error())
		return errors.Wrapf(err, "failed to flush progression for world %s", s.world)
	}

	slog.DebugContext(ctx, "progression flushed",
		"world", s.world,
		"records", len(batch))
	return nil
}
