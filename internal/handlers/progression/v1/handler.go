// Package v1 serves the progression gRPC service: commands and gameplay
// events in, snapshots out
package v1

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"
	"google.golang.org/grpc"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/world"
)

// HandlerConfig holds dependencies for the progression handler
type HandlerConfig struct {
	Commands commands.Executor
	Worlds   commands.SessionLookup
	// EventBus is the bus loaded worlds subscribe to; ReportEvent publishes
	// on it
	EventBus events.EventBus
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Commands == nil {
		return errors.InvalidArgument("commands executor is required")
	}
	if c.Worlds == nil {
		return errors.InvalidArgument("world lookup is required")
	}
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// Handler implements progressionv1.ProgressionServiceServer
type Handler struct {
	progressionv1.UnimplementedProgressionServiceServer
	commands commands.Executor
	worlds   commands.SessionLookup
	eventBus events.EventBus
}

// NewHandler creates a new progression handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		commands: cfg.Commands,
		worlds:   cfg.Worlds,
		eventBus: cfg.EventBus,
	}, nil
}

// Execute runs one administrative or party command
func (h *Handler) Execute(
	ctx context.Context,
	req *progressionv1.ExecuteRequest,
) (*progressionv1.ExecuteResponse, error) {
	input, err := convertExecuteRequestFromProto(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.commands.Execute(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return convertExecuteOutputToProto(out), nil
}

// Watch streams the player's current snapshots followed by every update
// until the client goes away or the world unloads
func (h *Handler) Watch(
	req *progressionv1.WatchRequest,
	stream grpc.ServerStreamingServer[progressionv1.WatchResponse],
) error {
	if req.GetWorld() == "" {
		return errors.ToGRPCError(errors.InvalidArgument("world is required"))
	}
	if req.GetPlayerId() == "" {
		return errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	playerID, err := uuid.Parse(req.GetPlayerId())
	if err != nil {
		return errors.ToGRPCError(errors.InvalidArgumentf("invalid player_id %q", req.GetPlayerId()))
	}

	session, ok := h.worlds.Session(req.GetWorld())
	if !ok {
		return errors.ToGRPCError(errors.NotFoundf("world %s is not loaded", req.GetWorld()))
	}

	ctx := stream.Context()

	// subscribe before reading state so no update falls in between
	sub := session.Broadcaster().Subscribe(playerID)
	defer sub.Close()

	progression := session.Progression().Snapshot(playerID)
	if err := stream.Send(convertMessageToProto(&broadcast.Message{
		Kind:        broadcast.KindProgression,
		Progression: &progression,
	})); err != nil {
		return err
	}
	if party, ok := session.Parties().Snapshot(playerID); ok {
		if err := stream.Send(convertMessageToProto(&broadcast.Message{
			Kind:  broadcast.KindParty,
			Party: &party,
		})); err != nil {
			return err
		}
	}

	slog.InfoContext(ctx, "watch started",
		"world", req.GetWorld(),
		"player_id", playerID.String())

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "watch ended",
				"world", req.GetWorld(),
				"player_id", playerID.String())
			return nil
		case msg, open := <-sub.C():
			if !open {
				return errors.ToGRPCError(errors.Unavailable("world unloaded"))
			}
			if err := stream.Send(convertMessageToProto(&msg)); err != nil {
				return err
			}
		}
	}
}

// ReportEvent publishes a gameplay event on the bus and returns what the
// world's session made of it
func (h *Handler) ReportEvent(
	ctx context.Context,
	req *progressionv1.ReportEventRequest,
) (*progressionv1.ReportEventResponse, error) {
	worldName := req.GetWorld()
	if worldName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("world is required"))
	}
	if _, ok := h.worlds.Session(worldName); !ok {
		return nil, errors.ToGRPCError(errors.NotFoundf("world %s is not loaded", worldName))
	}

	var event *events.GameEvent
	switch e := req.GetEvent().(type) {
	case *progressionv1.ReportEventRequest_EntityDeath:
		death, err := convertEntityDeathFromProto(e.EntityDeath)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		event = world.NewEntityDeathEvent(worldName, death)
	case *progressionv1.ReportEventRequest_Advancement:
		adv, err := convertAdvancementFromProto(e.Advancement)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		event = world.NewAdvancementEvent(worldName, adv)
	case *progressionv1.ReportEventRequest_BlockInteraction:
		interaction, err := convertBlockInteractionFromProto(e.BlockInteraction)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		event = world.NewBlockInteractionEvent(worldName, interaction)
	case nil:
		return nil, errors.ToGRPCError(errors.InvalidArgument("event is required"))
	default:
		return nil, errors.ToGRPCError(errors.Unimplemented("unsupported event type"))
	}

	if err := h.eventBus.Publish(ctx, event); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if event.Type() == world.EventBlockInteraction {
		return convertDecisionToProto(world.DecisionOf(event)), nil
	}
	result, ok := world.EventResultOf(event)
	if !ok {
		// the world unloaded between the lookup and the publish
		return nil, errors.ToGRPCError(errors.FailedPreconditionf("world %s did not handle the event", worldName))
	}
	return convertEventResultToProto(result), nil
}
