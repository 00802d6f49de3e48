package v1

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/world"
)

// parseOptionalID parses id; an empty id is uuid.Nil
func parseOptionalID(field, id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.InvalidArgumentf("invalid %s %q", field, id)
	}
	return parsed, nil
}

func parseIDs(field string, ids []string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		p, err := uuid.Parse(id)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid %s %q", field, id)
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}

func idStrings(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func convertExecuteRequestFromProto(req *progressionv1.ExecuteRequest) (*commands.ExecuteInput, error) {
	actor, err := parseOptionalID("actor_id", req.GetActorId())
	if err != nil {
		return nil, err
	}
	target, err := parseOptionalID("target_id", req.GetTargetId())
	if err != nil {
		return nil, err
	}

	return &commands.ExecuteInput{
		World:    req.GetWorld(),
		Actor:    actor,
		Command:  commands.Command(req.GetCommand()),
		Target:   target,
		Name:     req.GetName(),
		Password: req.Password,
		Value:    req.Value,
	}, nil
}

func convertExecuteOutputToProto(out *commands.ExecuteOutput) *progressionv1.ExecuteResponse {
	resp := &progressionv1.ExecuteResponse{
		Code:        string(out.Code),
		Message:     out.Message,
		Progression: convertProgressionSnapshotToProto(out.Progression),
		Party:       convertPartySnapshotToProto(out.Party),
		Loaded:      int32(out.Loaded),
		Skipped:     int32(out.Skipped),
	}
	for _, listing := range out.Parties {
		resp.Parties = append(resp.Parties, &progressionv1.PartyListing{
			Id:         listing.ID.String(),
			Name:       listing.Name,
			Members:    int32(listing.Members),
			MaxMembers: int32(listing.MaxMembers),
		})
	}
	for _, invite := range out.Invites {
		resp.Invites = append(resp.Invites, &progressionv1.PartyInvite{
			PartyId:   invite.PartyID.String(),
			InvitedBy: invite.InvitedBy.String(),
			IssuedAt:  timestamppb.New(invite.IssuedAt),
		})
	}
	return resp
}

func convertKillsToProto(kills map[string]int) map[string]int32 {
	if len(kills) == 0 {
		return nil
	}
	out := make(map[string]int32, len(kills))
	for entityType, n := range kills {
		out[entityType] = int32(n)
	}
	return out
}

func convertPhasesToProto(phases map[entities.PhaseID]bool) map[string]bool {
	if len(phases) == 0 {
		return nil
	}
	out := make(map[string]bool, len(phases))
	for id, done := range phases {
		out[string(id)] = done
	}
	return out
}

func convertProgressionSnapshotToProto(snapshot *broadcast.ProgressionSnapshot) *progressionv1.ProgressionSnapshot {
	if snapshot == nil {
		return nil
	}

	pb := &progressionv1.ProgressionSnapshot{
		PlayerId:   snapshot.PlayerID.String(),
		Objectives: snapshot.Objectives,
		Kills:      convertKillsToProto(snapshot.Kills),
		Phases:     convertPhasesToProto(snapshot.Phases),
		Difficulty: &progressionv1.Difficulty{
			Health: snapshot.Difficulty.Health,
			Damage: snapshot.Difficulty.Damage,
			Xp:     snapshot.Difficulty.XP,
		},
	}
	if len(snapshot.Custom) > 0 {
		pb.Custom = make(map[string]*progressionv1.CustomObjectives, len(snapshot.Custom))
		for id, objectives := range snapshot.Custom {
			pb.Custom[string(id)] = &progressionv1.CustomObjectives{Objectives: objectives}
		}
	}
	return pb
}

func convertPartySnapshotToProto(snapshot *broadcast.PartySnapshot) *progressionv1.PartySnapshot {
	if snapshot == nil {
		return nil
	}

	return &progressionv1.PartySnapshot{
		PartyId:     snapshot.PartyID.String(),
		Name:        snapshot.Name,
		Visibility:  string(snapshot.Visibility),
		LeaderId:    snapshot.Leader.String(),
		MemberIds:   idStrings(snapshot.Members),
		MemberCount: int32(snapshot.MemberCount),
		MaxMembers:  int32(snapshot.MaxMembers),
		Multiplier:  snapshot.Multiplier,
		Objectives:  snapshot.Objectives,
		Kills:       convertKillsToProto(snapshot.Kills),
		Phases:      convertPhasesToProto(snapshot.Phases),
	}
}

func convertMessageToProto(msg *broadcast.Message) *progressionv1.WatchResponse {
	resp := &progressionv1.WatchResponse{
		Kind:        string(msg.Kind),
		Progression: convertProgressionSnapshotToProto(msg.Progression),
		Party:       convertPartySnapshotToProto(msg.Party),
	}
	if msg.LeftParty != nil {
		resp.LeftPartyId = msg.LeftParty.String()
	}
	return resp
}

func convertEntityDeathFromProto(death *progressionv1.EntityDeath) (world.EntityDeathEvent, error) {
	if death.GetEntityType() == "" {
		return world.EntityDeathEvent{}, errors.InvalidArgument("entity_type is required")
	}
	killer, err := parseOptionalID("killer_id", death.GetKillerId())
	if err != nil {
		return world.EntityDeathEvent{}, err
	}
	participants, err := parseIDs("participant_id", death.GetParticipantIds())
	if err != nil {
		return world.EntityDeathEvent{}, err
	}

	event := world.EntityDeathEvent{
		EntityType:   death.GetEntityType(),
		Killer:       killer,
		Participants: participants,
	}
	if pos := death.GetPosition(); pos != nil {
		event.Position = entities.Position{X: pos.GetX(), Y: pos.GetY(), Z: pos.GetZ()}
	}
	return event, nil
}

func convertAdvancementFromProto(adv *progressionv1.Advancement) (world.AdvancementEvent, error) {
	player, err := uuid.Parse(adv.GetPlayerId())
	if err != nil {
		return world.AdvancementEvent{}, errors.InvalidArgumentf("invalid player_id %q", adv.GetPlayerId())
	}
	if adv.GetAdvancement() == "" {
		return world.AdvancementEvent{}, errors.InvalidArgument("advancement is required")
	}
	return world.AdvancementEvent{PlayerID: player, Advancement: adv.GetAdvancement()}, nil
}

func convertBlockInteractionFromProto(interaction *progressionv1.BlockInteraction) (world.BlockInteractionEvent, error) {
	player, err := uuid.Parse(interaction.GetPlayerId())
	if err != nil {
		return world.BlockInteractionEvent{}, errors.InvalidArgumentf("invalid player_id %q", interaction.GetPlayerId())
	}
	return world.BlockInteractionEvent{
		PlayerID:        player,
		Block:           interaction.GetBlock(),
		TargetDimension: interaction.GetTargetDimension(),
	}, nil
}

func convertEventResultToProto(result world.EventResult) *progressionv1.ReportEventResponse {
	resp := &progressionv1.ReportEventResponse{
		PhasesChanged: result.PhasesChanged,
		Allowed:       true,
	}
	for _, ref := range result.Objectives {
		resp.Objectives = append(resp.Objectives, ref.String())
	}
	return resp
}

func convertDecisionToProto(decision world.Decision) *progressionv1.ReportEventResponse {
	return &progressionv1.ReportEventResponse{
		Allowed:  decision.Allowed,
		LockedBy: string(decision.LockedBy),
	}
}
