// Package commands maps administrative and party commands onto the stores of
// a loaded world. Every command answers with a Code and a one-line message;
// only malformed requests are errors.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
	"github.com/KirkDiggler/rpg-progression/internal/world"
)

// Command names a supported command
type Command string

// Administrative commands
const (
	CommandCompletePhase1 Command = "complete-phase-1"
	CommandCompletePhase2 Command = "complete-phase-2"
	CommandCompletePhase  Command = "complete-phase"
	CommandResetAll       Command = "reset-all"
	CommandSetGoal        Command = "set-goal"
	CommandReloadPhases   Command = "reload-phases"
	CommandStatus         Command = "status"
)

// Party commands
const (
	CommandPartyCreate  Command = "party-create"
	CommandPartyJoin    Command = "party-join"
	CommandPartyLeave   Command = "party-leave"
	CommandPartyList    Command = "party-list"
	CommandPartyInfo    Command = "party-info"
	CommandPartyDisband Command = "party-disband"
	CommandPartyKick    Command = "party-kick"
	CommandPartyPromote Command = "party-promote"
	CommandPartyInvite  Command = "party-invite"
	CommandPartyInvites Command = "party-invites"
)

// Commands lists every supported command
var Commands = []Command{
	CommandCompletePhase1, CommandCompletePhase2, CommandCompletePhase,
	CommandResetAll, CommandSetGoal, CommandReloadPhases, CommandStatus,
	CommandPartyCreate, CommandPartyJoin, CommandPartyLeave, CommandPartyList,
	CommandPartyInfo, CommandPartyDisband, CommandPartyKick, CommandPartyPromote,
	CommandPartyInvite, CommandPartyInvites,
}

// customGoalSeparator splits "phase/objective" goal names of custom phases
const customGoalSeparator = "/"

// ExecuteInput is one command issued by Actor in World. Administrative
// commands act on Target when set, else on Actor.
type ExecuteInput struct {
	World    string    `json:"world"`
	Actor    uuid.UUID `json:"actor"`
	Command  Command   `json:"command"`
	Target   uuid.UUID `json:"target"`
	Name     string    `json:"name,omitempty"`
	Password *string   `json:"password,omitempty"`
	// Value is the flag set-goal writes; nil means true
	Value *bool `json:"value,omitempty"`
}

// ExecuteOutput carries the outcome and whatever state the command reports
type ExecuteOutput struct {
	Code        Code                           `json:"code"`
	Message     string                         `json:"message"`
	Progression *broadcast.ProgressionSnapshot `json:"progression,omitempty"`
	Party       *broadcast.PartySnapshot       `json:"party,omitempty"`
	Parties     []party.Listing                `json:"parties,omitempty"`
	Invites     []party.Invite                 `json:"invites,omitempty"`
	Loaded      int                            `json:"loaded,omitempty"`
	Skipped     int                            `json:"skipped,omitempty"`
}

//go:generate mockgen -destination=mock/mock_executor.go -package=commandsmock github.com/KirkDiggler/rpg-progression/internal/commands Executor

// Executor runs commands; Service is the implementation
type Executor interface {
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error)
}

// SessionLookup finds the session of a loaded world
type SessionLookup interface {
	Session(world string) (*world.Session, bool)
}

// Config holds the dependencies of the command service
type Config struct {
	Worlds SessionLookup
	// Limiter is optional; commands are unlimited without one
	Limiter Limiter
	// Authorizer is optional; without one every administrative command is
	// admitted and the caller is responsible for vetting Actor
	Authorizer Authorizer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Worlds == nil {
		vb.RequiredField("Worlds")
	}

	return vb.Build()
}

// Service executes commands against loaded worlds
type Service struct {
	worlds     SessionLookup
	limiter    Limiter
	authorizer Authorizer
}

// New creates a command service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = Unlimited()
	}

	authorizer := cfg.Authorizer
	if authorizer == nil {
		authorizer = AllowAll()
	}

	return &Service{
		worlds:     cfg.Worlds,
		limiter:    limiter,
		authorizer: authorizer,
	}, nil
}

// Execute runs one command. Expected failures come back as a Code in the
// output; an error means the request itself was malformed.
func (s *Service) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("world", input.World, vb)
	errors.ValidateRequired("command", string(input.Command), vb)
	if input.Actor == uuid.Nil {
		vb.RequiredField("actor")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if !s.limiter.Allow(input.Actor) {
		slog.WarnContext(ctx, "command rate limited",
			"player_id", input.Actor.String(),
			"command", string(input.Command))
		return fail(CodeRateLimited, input.Actor.String()), nil
	}

	session, ok := s.worlds.Session(input.World)
	if !ok {
		return fail(CodeWorldNotLoaded, input.World), nil
	}

	if input.Command.Administrative() && !s.authorizer.Authorize(ctx, input.Actor, input.Command, subject(input)) {
		slog.WarnContext(ctx, "command not authorized",
			"world", input.World,
			"player_id", input.Actor.String(),
			"target_id", subject(input).String(),
			"command", string(input.Command))
		return fail(CodeNotAuthorized, string(input.Command)), nil
	}

	output := s.dispatch(ctx, session, input)

	slog.InfoContext(ctx, "command executed",
		"world", input.World,
		"player_id", input.Actor.String(),
		"command", string(input.Command),
		"code", string(output.Code))
	return output, nil
}

func (s *Service) dispatch(ctx context.Context, session *world.Session, input *ExecuteInput) *ExecuteOutput {
	switch input.Command {
	case CommandCompletePhase1:
		return completePhase(session, subject(input), entities.PhaseOne)
	case CommandCompletePhase2:
		return completePhase(session, subject(input), entities.PhaseTwo)
	case CommandCompletePhase:
		if input.Name == "" {
			return fail(CodeMissingName, string(input.Command))
		}
		return completePhase(session, subject(input), entities.PhaseID(input.Name))
	case CommandResetAll:
		return resetAll(session, subject(input))
	case CommandSetGoal:
		return setGoal(session, subject(input), input.Name, input.Value)
	case CommandReloadPhases:
		return reloadPhases(ctx, session)
	case CommandStatus:
		return status(session, subject(input))
	case CommandPartyCreate:
		return partyCreate(session, input)
	case CommandPartyJoin:
		return partyJoin(session, input)
	case CommandPartyLeave:
		return partyResult(session.Parties().LeaveParty(input.Actor), "", "You left your party.")
	case CommandPartyList:
		return partyList(session)
	case CommandPartyInfo:
		return partyInfo(session, input)
	case CommandPartyDisband:
		return partyResult(session.Parties().DisbandParty(input.Actor), "", "Your party was disbanded.")
	case CommandPartyKick:
		if input.Target == uuid.Nil {
			return fail(CodeMissingTarget, string(input.Command))
		}
		out := partyResult(session.Parties().Kick(input.Actor, input.Target), "",
			fmt.Sprintf("Removed %s from the party.", input.Target))
		return withParty(session, input.Actor, out)
	case CommandPartyPromote:
		if input.Target == uuid.Nil {
			return fail(CodeMissingTarget, string(input.Command))
		}
		out := partyResult(session.Parties().Promote(input.Actor, input.Target), "",
			fmt.Sprintf("%s now leads the party.", input.Target))
		return withParty(session, input.Actor, out)
	case CommandPartyInvite:
		if input.Target == uuid.Nil {
			return fail(CodeMissingTarget, string(input.Command))
		}
		return partyResult(session.Parties().Invite(input.Actor, input.Target), "",
			fmt.Sprintf("Invited %s to the party.", input.Target))
	case CommandPartyInvites:
		invites := session.Parties().PendingInvites(input.Actor)
		return &ExecuteOutput{
			Code:    CodeSuccess,
			Message: fmt.Sprintf("You have %d pending invites.", len(invites)),
			Invites: invites,
		}
	default:
		return fail(CodeUnknownCommand, string(input.Command))
	}
}

func subject(input *ExecuteInput) uuid.UUID {
	if input.Target != uuid.Nil {
		return input.Target
	}
	return input.Actor
}

func fail(code Code, subject string) *ExecuteOutput {
	return &ExecuteOutput{Code: code, Message: failureMessage(code, subject)}
}

func progressionOutput(session *world.Session, playerID uuid.UUID, code Code, message string) *ExecuteOutput {
	snap := session.Progression().Snapshot(playerID)
	return &ExecuteOutput{Code: code, Message: message, Progression: &snap}
}

func completePhase(session *world.Session, playerID uuid.UUID, phase entities.PhaseID) *ExecuteOutput {
	if _, ok := session.Registry().GetPhase(phase); !ok {
		return fail(CodeUnknownPhase, string(phase))
	}
	if !session.Progression().CompletePhase(playerID, phase) {
		return progressionOutput(session, playerID, CodeNoChange,
			failureMessage(CodeNoChange, string(phase)))
	}
	return progressionOutput(session, playerID, CodeSuccess,
		fmt.Sprintf("Completed %s for %s.", phase, playerID))
}

func resetAll(session *world.Session, playerID uuid.UUID) *ExecuteOutput {
	session.Progression().Reset(playerID)
	return progressionOutput(session, playerID, CodeSuccess,
		fmt.Sprintf("Reset all progression of %s.", playerID))
}

// setGoal writes a built-in objective, or a custom phase objective named
// "phase/objective"
func setGoal(session *world.Session, playerID uuid.UUID, name string, value *bool) *ExecuteOutput {
	if name == "" {
		return fail(CodeMissingName, string(CommandSetGoal))
	}
	v := true
	if value != nil {
		v = *value
	}

	var changed bool
	switch {
	case entities.IsBuiltinObjective(name):
		changed = session.Progression().SetObjective(playerID, name, v)
	case strings.Contains(name, customGoalSeparator):
		phaseID, objective, _ := strings.Cut(name, customGoalSeparator)
		def, ok := session.Registry().GetPhase(entities.PhaseID(phaseID))
		if !ok || !def.Scoped || !definesObjective(def, objective) {
			return fail(CodeUnknownGoal, name)
		}
		changed = session.Progression().SetCustomObjective(playerID, def.ID, objective, v)
	default:
		return fail(CodeUnknownGoal, name)
	}

	if !changed {
		return progressionOutput(session, playerID, CodeNoChange, failureMessage(CodeNoChange, name))
	}
	return progressionOutput(session, playerID, CodeSuccess,
		fmt.Sprintf("Set %s to %t for %s.", name, v, playerID))
}

func definesObjective(def *entities.PhaseDefinition, name string) bool {
	for _, o := range def.Objectives {
		if o.Name == name {
			return true
		}
	}
	return false
}

func reloadPhases(ctx context.Context, session *world.Session) *ExecuteOutput {
	report, err := session.ReloadPhases(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "phase reload failed",
			"world", session.World(),
			"error", err.Error())
		return fail(CodeReloadFailed, errors.GetMessage(err))
	}
	return &ExecuteOutput{
		Code:    CodeSuccess,
		Message: fmt.Sprintf("Loaded %d custom phases, skipped %d.", report.Loaded, len(report.Skipped)),
		Loaded:  report.Loaded,
		Skipped: len(report.Skipped),
	}
}

func status(session *world.Session, playerID uuid.UUID) *ExecuteOutput {
	out := progressionOutput(session, playerID, CodeSuccess, fmt.Sprintf("Progression of %s.", playerID))
	if snap, ok := session.Parties().Snapshot(playerID); ok {
		out.Party = &snap
	}
	return out
}

func partyResult(result party.Result, subject, success string) *ExecuteOutput {
	if !result.OK() {
		return fail(fromParty(result), subject)
	}
	return &ExecuteOutput{Code: CodeSuccess, Message: success}
}

func withParty(session *world.Session, playerID uuid.UUID, out *ExecuteOutput) *ExecuteOutput {
	if !out.Code.OK() {
		return out
	}
	if snap, ok := session.Parties().Snapshot(playerID); ok {
		out.Party = &snap
	}
	return out
}

func partyCreate(session *world.Session, input *ExecuteInput) *ExecuteOutput {
	out := partyResult(session.Parties().CreateParty(input.Actor, input.Name, input.Password), input.Name,
		fmt.Sprintf("Created party %s.", input.Name))
	return withParty(session, input.Actor, out)
}

func partyJoin(session *world.Session, input *ExecuteInput) *ExecuteOutput {
	password := ""
	if input.Password != nil {
		password = *input.Password
	}
	out := partyResult(session.Parties().JoinParty(input.Actor, input.Name, password), input.Name,
		fmt.Sprintf("Joined party %s.", input.Name))
	return withParty(session, input.Actor, out)
}

func partyList(session *world.Session) *ExecuteOutput {
	listings := session.Parties().ListPublicParties()
	return &ExecuteOutput{
		Code:    CodeSuccess,
		Message: fmt.Sprintf("Found %d public parties.", len(listings)),
		Parties: listings,
	}
}

// partyInfo describes the named party, or the actor's own party without a
// name. Private parties are only described to their members.
func partyInfo(session *world.Session, input *ExecuteInput) *ExecuteOutput {
	parties := session.Parties()
	if input.Name == "" {
		snap, ok := parties.Snapshot(input.Actor)
		if !ok {
			return fail(fromParty(party.ResultNotInParty), "")
		}
		return &ExecuteOutput{Code: CodeSuccess, Message: describe(snap), Party: &snap}
	}

	record, ok := parties.GetPartyByName(input.Name)
	if !ok || (record.IsPrivate() && !record.IsMember(input.Actor)) {
		return fail(fromParty(party.ResultPartyNotFound), input.Name)
	}
	snap, ok := parties.Snapshot(record.Leader)
	if !ok {
		return fail(fromParty(party.ResultPartyNotFound), input.Name)
	}
	return &ExecuteOutput{Code: CodeSuccess, Message: describe(snap), Party: &snap}
}

func describe(snap broadcast.PartySnapshot) string {
	return fmt.Sprintf("Party %s (%s): %d/%d members, multiplier %.2f.",
		snap.Name, snap.Visibility, snap.MemberCount, snap.MaxMembers, snap.Multiplier)
}
