package world

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Event types a Session subscribes to on the shared bus
const (
	EventEntityDeath      = "progression.entity_death"
	EventAdvancement      = "progression.advancement"
	EventBlockInteraction = "progression.block_interaction"
)

// Event context keys. The publisher sets the inputs; the session sets
// ContextResult (EventResult) or ContextDecision (Decision) before Publish
// returns.
const (
	ContextWorld           = "world"
	ContextParticipants    = "participants"
	ContextPosition        = "position"
	ContextAdvancement     = "advancement"
	ContextBlock           = "block"
	ContextTargetDimension = "target_dimension"
	ContextResult          = "result"
	ContextDecision        = "decision"
)

// handlerPriority places session handlers ahead of host handlers that read
// the decision afterwards
const handlerPriority = 0

// PlayerEntity is a player as seen by the event bus
type PlayerEntity struct {
	ID uuid.UUID
}

// GetID returns the player's uuid
func (p *PlayerEntity) GetID() string { return p.ID.String() }

// GetType returns "player"
func (p *PlayerEntity) GetType() string { return "player" }

// MobEntity is a non-player entity. Type is the namespaced entity type.
type MobEntity struct {
	ID   string
	Type string
}

// GetID returns the host's id for the mob
func (m *MobEntity) GetID() string { return m.ID }

// GetType returns the entity type, e.g. minecraft:zombie
func (m *MobEntity) GetType() string { return m.Type }

var (
	_ core.Entity = (*PlayerEntity)(nil)
	_ core.Entity = (*MobEntity)(nil)
)

// NewEntityDeathEvent builds the bus event for a death in world
func NewEntityDeathEvent(world string, death EntityDeathEvent) *events.GameEvent {
	var killer core.Entity
	if death.Killer != uuid.Nil {
		killer = &PlayerEntity{ID: death.Killer}
	}
	event := events.NewGameEvent(EventEntityDeath, killer, &MobEntity{Type: death.EntityType})
	event.Context().Set(ContextWorld, world)
	event.Context().Set(ContextParticipants, death.Participants)
	event.Context().Set(ContextPosition, death.Position)
	return event
}

// NewAdvancementEvent builds the bus event for an advancement in world
func NewAdvancementEvent(world string, adv AdvancementEvent) *events.GameEvent {
	event := events.NewGameEvent(EventAdvancement, &PlayerEntity{ID: adv.PlayerID}, nil)
	event.Context().Set(ContextWorld, world)
	event.Context().Set(ContextAdvancement, adv.Advancement)
	return event
}

// NewBlockInteractionEvent builds the bus event for a block interaction in
// world
func NewBlockInteractionEvent(world string, interaction BlockInteractionEvent) *events.GameEvent {
	event := events.NewGameEvent(EventBlockInteraction, &PlayerEntity{ID: interaction.PlayerID}, nil)
	event.Context().Set(ContextWorld, world)
	event.Context().Set(ContextBlock, interaction.Block)
	event.Context().Set(ContextTargetDimension, interaction.TargetDimension)
	return event
}

// EventResultOf reads the result a session left on a published event
func EventResultOf(event events.Event) (EventResult, bool) {
	v, ok := event.Context().Get(ContextResult)
	if !ok {
		return EventResult{}, false
	}
	result, ok := v.(EventResult)
	return result, ok
}

// DecisionOf reads the decision a session left on a published block
// interaction. An event no session handled is allowed.
func DecisionOf(event events.Event) Decision {
	v, ok := event.Context().Get(ContextDecision)
	if !ok {
		return Decision{Allowed: true}
	}
	decision, ok := v.(Decision)
	if !ok {
		return Decision{Allowed: true}
	}
	return decision
}

// subscribe registers the session's handlers on bus
func (s *Session) subscribe(bus events.EventBus) {
	s.bus = bus
	s.subscriptions = []string{
		bus.SubscribeFunc(EventEntityDeath, handlerPriority, s.onEntityDeath),
		bus.SubscribeFunc(EventAdvancement, handlerPriority, s.onAdvancement),
		bus.SubscribeFunc(EventBlockInteraction, handlerPriority, s.onBlockInteraction),
	}
}

// unsubscribe removes every handler subscribe registered
func (s *Session) unsubscribe() error {
	if s.bus == nil {
		return nil
	}
	var first error
	for _, id := range s.subscriptions {
		if err := s.bus.Unsubscribe(id); err != nil && first == nil {
			first = errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	s.subscriptions = nil
	return first
}

// owns reports whether event is addressed to this session's world
func (s *Session) owns(event events.Event) bool {
	world, _ := event.Context().Get(ContextWorld)
	return world == s.world
}

func (s *Session) onEntityDeath(ctx context.Context, event events.Event) error {
	if !s.owns(event) {
		return nil
	}
	target := event.Target()
	if target == nil || target.GetType() == "" {
		return errors.InvalidArgument("entity death event has no entity type")
	}

	death := EntityDeathEvent{EntityType: target.GetType()}
	if source := event.Source(); source != nil {
		killer, err := playerID(source)
		if err != nil {
			return err
		}
		death.Killer = killer
	}
	if v, ok := event.Context().Get(ContextParticipants); ok {
		participants, ok := v.([]uuid.UUID)
		if !ok {
			return errors.InvalidArgumentf("participants must be []uuid.UUID, got %T", v)
		}
		death.Participants = participants
	}
	if v, ok := event.Context().Get(ContextPosition); ok {
		if pos, ok := v.(entities.Position); ok {
			death.Position = pos
		}
	}

	event.Context().Set(ContextResult, s.HandleEntityDeath(ctx, death))
	return nil
}

func (s *Session) onAdvancement(ctx context.Context, event events.Event) error {
	if !s.owns(event) {
		return nil
	}
	player, err := playerID(event.Source())
	if err != nil {
		return err
	}
	advancement, _ := event.Context().Get(ContextAdvancement)
	name, ok := advancement.(string)
	if !ok || name == "" {
		return errors.InvalidArgument("advancement event has no advancement")
	}

	result := s.HandleAdvancement(ctx, AdvancementEvent{PlayerID: player, Advancement: name})
	event.Context().Set(ContextResult, result)
	return nil
}

func (s *Session) onBlockInteraction(ctx context.Context, event events.Event) error {
	if !s.owns(event) {
		return nil
	}
	player, err := playerID(event.Source())
	if err != nil {
		return err
	}
	interaction := BlockInteractionEvent{PlayerID: player}
	if v, ok := event.Context().Get(ContextBlock); ok {
		interaction.Block, _ = v.(string)
	}
	if v, ok := event.Context().Get(ContextTargetDimension); ok {
		interaction.TargetDimension, _ = v.(string)
	}

	event.Context().Set(ContextDecision, s.HandleBlockInteraction(ctx, interaction))
	return nil
}

func playerID(entity core.Entity) (uuid.UUID, error) {
	if entity == nil {
		return uuid.Nil, errors.InvalidArgument("event has no player")
	}
	if entity.GetType() != "player" {
		return uuid.Nil, errors.InvalidArgumentf("event source is a %s, not a player", entity.GetType())
	}
	id, err := uuid.Parse(entity.GetID())
	if err != nil {
		return uuid.Nil, errors.InvalidArgumentf("invalid player id %q", entity.GetID())
	}
	return id, nil
}
