// Package party owns the parties of one world: membership transitions, name
// uniqueness, the player to party index and the shared party progress.
//
// Lock order is store, then party, then player. Structural changes (create,
// join, leave, kick, promote, disband) hold the store lock for their whole
// duration, so a player can never end up in two parties.
package party

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
)

// Defaults used when the config leaves a bound at zero
const (
	DefaultMaxSize       = 4
	DefaultNameMinLength = 3
	DefaultNameMaxLength = 24
	DefaultInviteTTL     = 2 * time.Minute
)

// PhaseSource supplies the current phase definitions
type PhaseSource interface {
	AllPhases() []*entities.PhaseDefinition
}

// ProgressAccess is the view of the progression store used to merge
// progress in and out of parties
type ProgressAccess interface {
	Progress(playerID uuid.UUID) entities.Progress
	Absorb(playerID uuid.UUID, p entities.Progress) bool
}

// Config holds the dependencies for the store
type Config struct {
	World       string
	Repository  partyrepo.Repository
	Phases      PhaseSource
	Progression ProgressAccess
	Publisher   broadcast.Sink
	IDGenerator idgen.Generator
	Clock       clock.Clock

	MaxSize             int
	NameMinLength       int
	NameMaxLength       int
	MultiplierIncrement float64
	InviteTTL           time.Duration
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
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.MaxSize < 0 {
		vb.Field("MaxSize", "must not be negative")
	}
	if c.NameMinLength < 0 || c.NameMaxLength < 0 {
		vb.Field("NameLength", "must not be negative")
	}
	if c.NameMaxLength > 0 && c.NameMinLength > c.NameMaxLength {
		vb.Field("NameLength", "minimum exceeds maximum")
	}
	errors.ValidateNonNegative("MultiplierIncrement", c.MultiplierIncrement, vb)
	if c.InviteTTL < 0 {
		vb.Field("InviteTTL", "must not be negative")
	}

	return vb.Build()
}

type entry struct {
	mu     sync.RWMutex
	record *entities.PartyRecord
}

type inviteKey struct {
	Player uuid.UUID
	Party  uuid.UUID
}

// Invite is a pending leader-issued invitation
type Invite struct {
	PartyID   uuid.UUID `json:"party_id"`
	InvitedBy uuid.UUID `json:"invited_by"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Listing is one row of the public party list
type Listing struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Members    int       `json:"members"`
	MaxMembers int       `json:"max_members"`
}

// Store owns the parties of one world
type Store struct {
	world       string
	repo        partyrepo.Repository
	phases      PhaseSource
	progression ProgressAccess
	publisher   broadcast.Sink
	idGen       idgen.Generator
	clock       clock.Clock

	maxSize int
	nameMin int
	nameMax int
	k       float64

	mu       sync.RWMutex
	parties  map[uuid.UUID]*entry
	byName   map[string]uuid.UUID
	byPlayer map[uuid.UUID]uuid.UUID

	dirtyMu sync.Mutex
	dirty   map[uuid.UUID]struct{}
	deleted map[uuid.UUID]struct{}

	invites *ttlcache.Cache[inviteKey, Invite]
}

// New creates an empty store. Call Load to read persisted parties and Close
// when the world unloads.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Store{
		world:       cfg.World,
		repo:        cfg.Repository,
		phases:      cfg.Phases,
		progression: cfg.Progression,
		publisher:   cfg.Publisher,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		maxSize:     orDefault(cfg.MaxSize, DefaultMaxSize),
		nameMin:     orDefault(cfg.NameMinLength, DefaultNameMinLength),
		nameMax:     orDefault(cfg.NameMaxLength, DefaultNameMaxLength),
		k:           cfg.MultiplierIncrement,
		parties:     make(map[uuid.UUID]*entry),
		byName:      make(map[string]uuid.UUID),
		byPlayer:    make(map[uuid.UUID]uuid.UUID),
		dirty:       make(map[uuid.UUID]struct{}),
		deleted:     make(map[uuid.UUID]struct{}),
	}

	ttl := cfg.InviteTTL
	if ttl == 0 {
		ttl = DefaultInviteTTL
	}
	s.invites = ttlcache.New[inviteKey, Invite](
		ttlcache.WithTTL[inviteKey, Invite](ttl),
		ttlcache.WithDisableTouchOnHit[inviteKey, Invite](),
	)
	go s.invites.Start()

	return s, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// Close stops the invite expiry loop
func (s *Store) Close() {
	s.invites.Stop()
}

// MaxSize returns the member limit of every party
func (s *Store) MaxSize() int {
	return s.maxSize
}

// CreateParty creates a party led by leaderID. A non-nil password makes the
// party private.
func (s *Store) CreateParty(leaderID uuid.UUID, name string, password *string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPlayer[leaderID]; ok {
		return ResultAlreadyInParty
	}
	if !s.validName(name) {
		return ResultInvalidName
	}
	if _, ok := s.byName[name]; ok {
		return ResultNameTaken
	}

	if password != nil && len(*password) > entities.MaxPasswordLength {
		return ResultInvalidPassword
	}

	record, err := entities.NewPartyRecord(s.idGen.Generate(), name, leaderID, password, s.clock.Now())
	if err != nil {
		slog.Error("failed to create party record",
			"world", s.world,
			"leader_id", leaderID.String(),
			"error", err.Error())
		return ResultInvalidPassword
	}
	record.Shared.Merge(s.progression.Progress(leaderID))
	record.Reevaluate(s.phases.AllPhases(), s.k)

	s.parties[record.ID] = &entry{record: record}
	s.byName[name] = record.ID
	s.byPlayer[leaderID] = record.ID
	s.markDirty(record.ID)
	s.publish(record)

	slog.Info("party created",
		"world", s.world,
		"party_id", record.ID.String(),
		"leader_id", leaderID.String(),
		"visibility", string(record.Visibility))

	return ResultSuccess
}

func (s *Store) validName(name string) bool {
	if strings.TrimSpace(name) != name {
		return false
	}
	n := utf8.RuneCountInString(name)
	return n >= s.nameMin && n <= s.nameMax
}

// JoinParty adds playerID to the party called name. The password is only
// checked for private parties, and not at all for invited players. The
// joining player's progress is merged into the party's shared state.
func (s *Store) JoinParty(playerID uuid.UUID, name, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPlayer[playerID]; ok {
		return ResultAlreadyInParty
	}
	partyID, ok := s.byName[name]
	if !ok {
		return ResultPartyNotFound
	}

	e := s.parties[partyID]
	e.mu.Lock()
	defer e.mu.Unlock()

	key := inviteKey{Player: playerID, Party: partyID}
	invited := s.invites.Has(key)
	if !invited && !e.record.CheckPassword(password) {
		return ResultWrongPassword
	}
	if e.record.MemberCount() >= s.maxSize {
		return ResultPartyFull
	}

	e.record.Shared.Merge(s.progression.Progress(playerID))
	e.record.AddMember(playerID)
	e.record.Reevaluate(s.phases.AllPhases(), s.k)
	s.byPlayer[playerID] = partyID
	s.invites.Delete(key)

	s.markDirty(partyID)
	s.publish(e.record)

	slog.Info("player joined party",
		"world", s.world,
		"party_id", partyID.String(),
		"player_id", playerID.String(),
		"invited", invited,
		"members", e.record.MemberCount())

	return ResultSuccess
}

// LeaveParty removes playerID from their party. The party's shared progress
// is merged into the player's own record. Leadership passes to the oldest
// remaining member; the last member leaving destroys the party.
func (s *Store) LeaveParty(playerID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byPlayer[playerID]; !ok {
		return ResultNotInParty
	}
	s.leaveLocked(playerID)
	return ResultSuccess
}

// leaveLocked removes a member. Caller holds s.mu and has checked membership.
func (s *Store) leaveLocked(playerID uuid.UUID) {
	partyID := s.byPlayer[playerID]
	e := s.parties[partyID]

	e.mu.Lock()
	defer e.mu.Unlock()

	s.progression.Absorb(playerID, e.record.Shared.Clone())
	transferred := e.record.RemoveMember(playerID)
	delete(s.byPlayer, playerID)
	s.publisher.SendPartyLeft(playerID, partyID)

	if e.record.MemberCount() == 0 {
		s.destroyLocked(e.record)
		return
	}

	e.record.Reevaluate(s.phases.AllPhases(), s.k)
	s.markDirty(partyID)
	s.publish(e.record)

	slog.Info("player left party",
		"world", s.world,
		"party_id", partyID.String(),
		"player_id", playerID.String(),
		"leader_id", e.record.Leader.String(),
		"leader_changed", transferred)
}

func (s *Store) destroyLocked(record *entities.PartyRecord) {
	delete(s.parties, record.ID)
	delete(s.byName, record.Name)

	s.dirtyMu.Lock()
	delete(s.dirty, record.ID)
	s.deleted[record.ID] = struct{}{}
	s.dirtyMu.Unlock()

	slog.Info("party destroyed",
		"world", s.world,
		"party_id", record.ID.String(),
		"name", record.Name)
}

// leaderParty resolves the party led by leaderID for leader-only commands
func (s *Store) leaderParty(leaderID uuid.UUID) (*entry, Result) {
	partyID, ok := s.byPlayer[leaderID]
	if !ok {
		return nil, ResultNotInParty
	}
	e := s.parties[partyID]
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.record.Leader != leaderID {
		return nil, ResultNotLeader
	}
	return e, ResultSuccess
}

// memberTarget checks a leader-only command aimed at targetID
func (s *Store) memberTarget(leaderID, targetID uuid.UUID) (*entry, Result) {
	e, result := s.leaderParty(leaderID)
	if result != ResultSuccess {
		return nil, result
	}
	if targetID == leaderID {
		return nil, ResultCannotTargetSelf
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.record.IsMember(targetID) {
		return nil, ResultNotAMember
	}
	return e, ResultSuccess
}

// Kick removes targetID from the leader's party as if they had left
func (s *Store) Kick(leaderID, targetID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, result := s.memberTarget(leaderID, targetID); result != ResultSuccess {
		return result
	}
	s.leaveLocked(targetID)

	slog.Info("player kicked from party",
		"world", s.world,
		"leader_id", leaderID.String(),
		"player_id", targetID.String())
	return ResultSuccess
}

// Promote hands leadership to targetID without changing membership
func (s *Store) Promote(leaderID, targetID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, result := s.memberTarget(leaderID, targetID)
	if result != ResultSuccess {
		return result
	}

	e.mu.Lock()
	e.record.Leader = targetID
	s.markDirty(e.record.ID)
	s.publish(e.record)
	e.mu.Unlock()

	slog.Info("party leader promoted",
		"world", s.world,
		"party_id", e.record.ID.String(),
		"leader_id", targetID.String())
	return ResultSuccess
}

// DisbandParty removes every member, leader last, running the leave merge
// for each, and destroys the party
func (s *Store) DisbandParty(leaderID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, result := s.leaderParty(leaderID)
	if result != ResultSuccess {
		return result
	}

	e.mu.RLock()
	order := make([]uuid.UUID, 0, e.record.MemberCount())
	for _, member := range e.record.Members {
		if member != leaderID {
			order = append(order, member)
		}
	}
	partyID := e.record.ID
	e.mu.RUnlock()
	order = append(order, leaderID)

	for _, member := range order {
		s.leaveLocked(member)
	}

	slog.Info("party disbanded",
		"world", s.world,
		"party_id", partyID.String(),
		"members", len(order))
	return ResultSuccess
}

// Invite lets targetID join the leader's party without its password until
// the invite expires
func (s *Store) Invite(leaderID, targetID uuid.UUID) Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, result := s.leaderParty(leaderID)
	if result != ResultSuccess {
		return result
	}
	if targetID == leaderID {
		return ResultCannotTargetSelf
	}
	if _, ok := s.byPlayer[targetID]; ok {
		return ResultAlreadyInParty
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.record.MemberCount() >= s.maxSize {
		return ResultPartyFull
	}

	s.invites.Set(inviteKey{Player: targetID, Party: e.record.ID}, Invite{
		PartyID:   e.record.ID,
		InvitedBy: leaderID,
		IssuedAt:  s.clock.Now(),
	}, ttlcache.DefaultTTL)

	slog.Info("party invite issued",
		"world", s.world,
		"party_id", e.record.ID.String(),
		"leader_id", leaderID.String(),
		"player_id", targetID.String())
	return ResultSuccess
}

// PendingInvites returns the unexpired invites addressed to playerID
func (s *Store) PendingInvites(playerID uuid.UUID) []Invite {
	var out []Invite
	s.invites.Range(func(item *ttlcache.Item[inviteKey, Invite]) bool {
		if item.Key().Player == playerID {
			out = append(out, item.Value())
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })
	return out
}

// GetAdjustedRequirement scales base by the party's multiplier, rounding up
func (s *Store) GetAdjustedRequirement(party *entities.PartyRecord, base int) int {
	members := 1
	if party != nil {
		members = party.MemberCount()
	}
	return entities.AdjustedRequirement(base, members, s.k)
}

// ListPublicParties returns every public party ordered by name
func (s *Store) ListPublicParties() []Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Listing, 0, len(s.parties))
	for _, e := range s.parties {
		e.mu.RLock()
		if !e.record.IsPrivate() {
			out = append(out, Listing{
				ID:         e.record.ID,
				Name:       e.record.Name,
				Members:    e.record.MemberCount(),
				MaxMembers: s.maxSize,
			})
		}
		e.mu.RUnlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsPlayerInParty reports whether playerID belongs to a party
func (s *Store) IsPlayerInParty(playerID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byPlayer[playerID]
	return ok
}

// partyOf returns the entry of the player's party. Caller holds s.mu.
func (s *Store) partyOf(playerID uuid.UUID) (*entry, bool) {
	partyID, ok := s.byPlayer[playerID]
	if !ok {
		return nil, false
	}
	e, ok := s.parties[partyID]
	return e, ok
}

// GetPlayerParty returns a copy of the player's party
func (s *Store) GetPlayerParty(playerID uuid.UUID) (*entities.PartyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.partyOf(playerID)
	if !ok {
		return nil, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record.Clone(), true
}

// GetPartyByName returns a copy of the party called name
func (s *Store) GetPartyByName(name string) (*entities.PartyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partyID, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	e := s.parties[partyID]
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record.Clone(), true
}

// MultiplierFor returns the multiplier of the player's party
func (s *Store) MultiplierFor(playerID uuid.UUID) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.partyOf(playerID)
	if !ok {
		return 0, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return entities.Multiplier(e.record.MemberCount(), s.k), true
}

// Snapshot returns the outbound snapshot of the player's party
func (s *Store) Snapshot(playerID uuid.UUID) (broadcast.PartySnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.partyOf(playerID)
	if !ok {
		return broadcast.PartySnapshot{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return broadcast.NewPartySnapshot(e.record, s.maxSize, s.k), true
}

// SendPartyUpdate pushes the player's party snapshot to all members
func (s *Store) SendPartyUpdate(playerID uuid.UUID) {
	if snap, ok := s.Snapshot(playerID); ok {
		s.publisher.SendParty(snap)
	}
}

// updateShared mutates the shared progress of the player's party and
// re-evaluates its phases. Returns whether fn changed anything and whether a
// phase flag flipped.
func (s *Store) updateShared(playerID uuid.UUID, fn func(p *entities.Progress) bool) (changed, flipped bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.partyOf(playerID)
	if !ok {
		return false, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !fn(&e.record.Shared) {
		return false, false
	}
	flipped = e.record.Reevaluate(s.phases.AllPhases(), s.k)
	s.markDirty(e.record.ID)
	s.publish(e.record)
	return true, flipped
}

// RecordKill adds a kill to the shared counters of the player's party.
// Returns true when a shared phase flag flipped.
func (s *Store) RecordKill(playerID uuid.UUID, mobType string) bool {
	_, flipped := s.updateShared(playerID, func(p *entities.Progress) bool {
		p.IncrementKill(mobType)
		return true
	})
	return flipped
}

// SetObjective raises a shared objective flag of the player's party. Shared
// flags only ever move to true; the party state is a monotone union.
func (s *Store) SetObjective(playerID uuid.UUID, objective string) bool {
	changed, _ := s.updateShared(playerID, func(p *entities.Progress) bool {
		return p.SetObjective(objective, true)
	})
	return changed
}

// SetCustomObjective raises a shared custom phase objective
func (s *Store) SetCustomObjective(playerID uuid.UUID, phase entities.PhaseID, objective string) bool {
	changed, _ := s.updateShared(playerID, func(p *entities.Progress) bool {
		return p.SetCustomObjective(phase, objective, true)
	})
	return changed
}

// IsPhaseComplete reports whether the player's party has completed phase
func (s *Store) IsPhaseComplete(playerID uuid.UUID, phase entities.PhaseID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.partyOf(playerID)
	if !ok {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record.Phases[phase]
}

// ReevaluateAll recomputes every party's phases, e.g. after a phase reload
func (s *Store) ReevaluateAll() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defs := s.phases.AllPhases()
	changed := 0
	for _, e := range s.parties {
		e.mu.Lock()
		if e.record.Reevaluate(defs, s.k) {
			changed++
			s.markDirty(e.record.ID)
			s.publish(e.record)
		}
		e.mu.Unlock()
	}
	return changed
}

func (s *Store) publish(record *entities.PartyRecord) {
	s.publisher.SendParty(broadcast.NewPartySnapshot(record, s.maxSize, s.k))
}

func (s *Store) markDirty(partyID uuid.UUID) {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	s.dirty[partyID] = struct{}{}
}

// DirtyCount returns the number of parties waiting for a flush, destroyed
// parties included
func (s *Store) DirtyCount() int {
	s.dirtyMu.Lock()
	defer s.dirtyMu.Unlock()
	return len(s.dirty) + len(s.deleted)
}

// Load replaces the in-memory parties with the persisted ones. Parties are
// indexed oldest first; a later party that claims an already indexed name is
// dropped, and a player found in two parties stays in the older one.
func (s *Store) Load(ctx context.Context) error {
	output, err := s.repo.LoadAll(ctx, partyrepo.LoadAllInput{World: s.world})
	if err != nil {
		return errors.Wrapf(err, "failed to load parties for world %s", s.world)
	}

	loaded := output.Parties
	sort.Slice(loaded, func(i, j int) bool {
		if loaded[i].CreatedAt.Equal(loaded[j].CreatedAt) {
			return loaded[i].ID.String() < loaded[j].ID.String()
		}
		return loaded[i].CreatedAt.Before(loaded[j].CreatedAt)
	})

	defs := s.phases.AllPhases()
	parties := make(map[uuid.UUID]*entry, len(loaded))
	byName := make(map[string]uuid.UUID, len(loaded))
	byPlayer := make(map[uuid.UUID]uuid.UUID)
	dirty := make(map[uuid.UUID]struct{})
	deleted := make(map[uuid.UUID]struct{})
	for _, id := range output.Corrupted {
		if partyID, err := uuid.Parse(id); err == nil {
			deleted[partyID] = struct{}{}
		}
	}

	for _, record := range loaded {
		if _, taken := byName[record.Name]; taken {
			slog.WarnContext(ctx, "dropping party with duplicate name",
				"world", s.world,
				"party_id", record.ID.String(),
				"name", record.Name)
			deleted[record.ID] = struct{}{}
			continue
		}

		for _, member := range append([]uuid.UUID(nil), record.Members...) {
			if _, claimed := byPlayer[member]; claimed {
				slog.WarnContext(ctx, "removing player already in another party",
					"world", s.world,
					"party_id", record.ID.String(),
					"player_id", member.String())
				record.RemoveMember(member)
				dirty[record.ID] = struct{}{}
			}
		}
		if record.MemberCount() == 0 {
			deleted[record.ID] = struct{}{}
			delete(dirty, record.ID)
			continue
		}

		if record.Reevaluate(defs, s.k) {
			dirty[record.ID] = struct{}{}
		}
		parties[record.ID] = &entry{record: record}
		byName[record.Name] = record.ID
		for _, member := range record.Members {
			byPlayer[member] = record.ID
		}
	}

	s.mu.Lock()
	s.parties = parties
	s.byName = byName
	s.byPlayer = byPlayer
	s.mu.Unlock()

	s.dirtyMu.Lock()
	s.dirty = dirty
	s.deleted = deleted
	s.dirtyMu.Unlock()

	slog.InfoContext(ctx, "parties loaded",
		"world", s.world,
		"parties", len(parties),
		"corrupted", len(output.Corrupted))

	return nil
}

// Flush writes changed parties and removes destroyed ones. On failure the
// pending changes are kept for the next attempt.
func (s *Store) Flush(ctx context.Context) error {
	s.dirtyMu.Lock()
	pending, deleted := s.dirty, s.deleted
	s.dirty = make(map[uuid.UUID]struct{})
	s.deleted = make(map[uuid.UUID]struct{})
	s.dirtyMu.Unlock()

	if len(pending) == 0 && len(deleted) == 0 {
		return nil
	}

	batch := make([]*entities.PartyRecord, 0, len(pending))
	s.mu.RLock()
	for id := range pending {
		e, ok := s.parties[id]
		if !ok {
			continue
		}
		e.mu.RLock()
		batch = append(batch, e.record.Clone())
		e.mu.RUnlock()
	}
	s.mu.RUnlock()

	_, err := s.repo.SaveBatch(ctx, partyrepo.SaveBatchInput{
		World:   s.world,
		Parties: batch,
		Deleted: partyrepo.DeletedIDs(deleted),
	})
	if err != nil {
		s.dirtyMu.Lock()
		for id := range pending {
			s.dirty[id] = struct{}{}
		}
		for id := range deleted {
			s.deleted[id] = struct{}{}
		}
		s.dirtyMu.Unlock()

		slog.ErrorContext(ctx, "failed to flush parties, will retry",
			"world", s.world,
			"parties", len(batch),
			"deleted", len(deleted),
			"error", err.Error())
		return errors.Wrapf(err, "failed to flush parties for world %s", s.world)
	}

	slog.DebugContext(ctx, "parties flushed",
		"world", s.world,
		"parties", len(batch),
		"deleted", len(deleted))
	return nil
}
