// Package world ties the per-world stores together. A Session is built when
// a world loads and discarded when it unloads; nothing here is process-wide.
package world

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/phases"
	"github.com/KirkDiggler/rpg-progression/internal/presence"
	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
	"github.com/KirkDiggler/rpg-progression/internal/stores/progression"
)

// EntityDeathEvent reports a mob dying. Killer is uuid.Nil when no player
// was responsible. Participants are credited with objectives the death
// triggers, in addition to the killer.
type EntityDeathEvent struct {
	EntityType   string
	Killer       uuid.UUID
	Participants []uuid.UUID
	Position     entities.Position
}

// AdvancementEvent reports a player earning an advancement
type AdvancementEvent struct {
	PlayerID    uuid.UUID
	Advancement string
}

// BlockInteractionEvent reports a player using a block. TargetDimension is
// set when the interaction would move the player (e.g. lighting a portal).
type BlockInteractionEvent struct {
	PlayerID        uuid.UUID
	Block           string
	TargetDimension string
}

// Decision is the allow/deny answer for a gated action
type Decision struct {
	Allowed bool
	// LockedBy is the phase that must be completed first when denied
	LockedBy entities.PhaseID
}

// EventResult summarizes what a gameplay event changed
type EventResult struct {
	PhasesChanged bool
	Objectives    []phases.ObjectiveRef
}

// Session is one loaded world
type Session struct {
	world       string
	registry    *phases.Registry
	progression *progression.Store
	parties     *party.Store
	broadcaster *broadcast.Broadcaster
	presence    *presence.Tracker

	bus           events.EventBus
	subscriptions []string
}

// World returns the world id
func (s *Session) World() string { return s.world }

// Registry returns the phase registry of the world
func (s *Session) Registry() *phases.Registry { return s.registry }

// Progression returns the progression store
func (s *Session) Progression() *progression.Store { return s.progression }

// Parties returns the party store
func (s *Session) Parties() *party.Store { return s.parties }

// Broadcaster returns the snapshot broadcaster
func (s *Session) Broadcaster() *broadcast.Broadcaster { return s.broadcaster }

// HandleEntityDeath counts the kill for the killer (and their party) and
// sets any objective the entity's death triggers
func (s *Session) HandleEntityDeath(ctx context.Context, event EntityDeathEvent) EventResult {
	var result EventResult
	if event.Killer != uuid.Nil {
		if s.progression.RecordKill(event.Killer, event.EntityType) {
			result.PhasesChanged = true
		}
		if s.parties.RecordKill(event.Killer, event.EntityType) {
			result.PhasesChanged = true
		}
	}

	refs := s.registry.ObjectivesTriggeredBy(phases.Trigger{Kind: phases.TriggerEntityDeath, ID: event.EntityType})
	if len(refs) == 0 {
		return result
	}
	result.Objectives = refs

	credited := creditedPlayers(event.Killer, event.Participants)
	for _, player := range credited {
		if s.applyObjectives(player, refs) {
			result.PhasesChanged = true
		}
	}

	slog.InfoContext(ctx, "entity death triggered objectives",
		"world", s.world,
		"entity_type", event.EntityType,
		"objectives", len(refs),
		"players", len(credited))

	return result
}

func creditedPlayers(killer uuid.UUID, participants []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(participants)+1)
	seen := make(map[uuid.UUID]struct{}, len(participants)+1)
	for _, id := range append([]uuid.UUID{killer}, participants...) {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// HandleAdvancement sets the objectives an advancement triggers
func (s *Session) HandleAdvancement(ctx context.Context, event AdvancementEvent) EventResult {
	refs := s.registry.ObjectivesTriggeredBy(phases.Trigger{Kind: phases.TriggerAdvancement, ID: event.Advancement})
	if len(refs) == 0 {
		return EventResult{}
	}

	changed := s.applyObjectives(event.PlayerID, refs)

	slog.InfoContext(ctx, "advancement triggered objectives",
		"world", s.world,
		"player_id", event.PlayerID.String(),
		"advancement", event.Advancement,
		"objectives", len(refs))

	return EventResult{PhasesChanged: changed, Objectives: refs}
}

// applyObjectives raises each objective for the player and their party.
// Returns true if any phase flag flipped.
func (s *Session) applyObjectives(player uuid.UUID, refs []phases.ObjectiveRef) bool {
	before := s.completedPhases(player)
	for _, ref := range refs {
		if ref.Scoped {
			s.progression.SetCustomObjective(player, ref.Phase, ref.Name, true)
			s.parties.SetCustomObjective(player, ref.Phase, ref.Name)
			continue
		}
		s.progression.SetObjective(player, ref.Name, true)
		s.parties.SetObjective(player, ref.Name)
	}
	return !entities.PhasesEqual(before, s.completedPhases(player))
}

func (s *Session) completedPhases(player uuid.UUID) map[entities.PhaseID]bool {
	out := s.progression.Get(player).Phases
	if p, ok := s.parties.GetPlayerParty(player); ok {
		for id, done := range p.Phases {
			out["party:"+id] = done
		}
	}
	return out
}

// HandleBlockInteraction decides whether an interaction may go ahead. Only
// interactions that lead into a gated dimension can be denied.
func (s *Session) HandleBlockInteraction(ctx context.Context, event BlockInteractionEvent) Decision {
	if event.TargetDimension == "" {
		return Decision{Allowed: true}
	}

	decision := s.CanEnterDimension(event.PlayerID, event.TargetDimension)
	if !decision.Allowed {
		slog.InfoContext(ctx, "interaction denied by phase gate",
			"world", s.world,
			"player_id", event.PlayerID.String(),
			"block", event.Block,
			"dimension", event.TargetDimension,
			"phase", string(decision.LockedBy))
	}
	return decision
}

// CanEnterDimension allows entry unless the gating phase is locked for the
// player and not complete for the player's party
func (s *Session) CanEnterDimension(playerID uuid.UUID, dimension string) Decision {
	phase, gated := s.registry.IsDimensionGatedBy(dimension)
	if !gated {
		return Decision{Allowed: true}
	}
	if !s.progression.IsPhaseLocked(playerID, phase) {
		return Decision{Allowed: true}
	}
	if s.parties.IsPhaseComplete(playerID, phase) {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, LockedBy: phase}
}

// PlayerMoved records a connected player's position
func (s *Session) PlayerMoved(playerID uuid.UUID, pos entities.Position) {
	s.presence.Update(playerID, s.world, pos)
}

// PlayerDisconnected forgets the player's position
func (s *Session) PlayerDisconnected(playerID uuid.UUID) {
	s.presence.Remove(playerID)
}

// SpawnMultiplier returns the difficulty multiplier for a hostile entity
// spawning at pos
func (s *Session) SpawnMultiplier(pos entities.Position) float64 {
	return s.progression.CalculateAverageMultiplierNearPosition(pos.X, pos.Y, pos.Z, s.world)
}

// ReloadPhases re-reads custom phases and re-evaluates every record
func (s *Session) ReloadPhases(ctx context.Context) (*phases.LoadReport, error) {
	report, err := s.registry.Reload(ctx)
	if err != nil {
		return nil, err
	}

	players := s.progression.ReevaluateAll()
	parties := s.parties.ReevaluateAll()

	slog.InfoContext(ctx, "phases reloaded",
		"world", s.world,
		"players_changed", players,
		"parties_changed", parties)
	return report, nil
}

// Flush persists both stores. Both are attempted even if the first fails.
func (s *Session) Flush(ctx context.Context) error {
	progressionErr := s.progression.Flush(ctx)
	partyErr := s.parties.Flush(ctx)

	if progressionErr != nil {
		return progressionErr
	}
	if partyErr != nil {
		return partyErr
	}
	return nil
}

// close flushes and releases the session's resources
func (s *Session) close(ctx context.Context) error {
	if err := s.unsubscribe(); err != nil {
		slog.WarnContext(ctx, "event bus unsubscribe failed", "world", s.world, "error", err.Error())
	}
	err := s.Flush(ctx)
	s.parties.Close()
	s.broadcaster.Close()
	if err != nil {
		return errors.Wrapf(err, "final flush of world %s failed", s.world)
	}
	return nil
}
