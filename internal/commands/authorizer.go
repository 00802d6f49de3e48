package commands

import (
	"context"

	"github.com/google/uuid"
)

// Administrative reports whether c changes or reads another player's
// progression. Party commands are governed by the party store itself.
func (c Command) Administrative() bool {
	switch c {
	case CommandCompletePhase1, CommandCompletePhase2, CommandCompletePhase,
		CommandResetAll, CommandSetGoal, CommandReloadPhases, CommandStatus:
		return true
	}
	return false
}

// Authorizer decides whether actor may run an administrative command
// against target. Target is the actor itself when the request names none.
type Authorizer interface {
	Authorize(ctx context.Context, actor uuid.UUID, command Command, target uuid.UUID) bool
}

type allowAll struct{}

// AllowAll admits every administrative command. Callers that expose the
// service to untrusted players must authenticate Actor themselves and
// configure an admin list instead.
func AllowAll() Authorizer { return allowAll{} }

func (allowAll) Authorize(context.Context, uuid.UUID, Command, uuid.UUID) bool { return true }

type adminList struct {
	admins map[uuid.UUID]struct{}
}

// NewAdminList admits every administrative command from the listed players.
// Everyone else may only ask for their own status.
func NewAdminList(admins []uuid.UUID) Authorizer {
	set := make(map[uuid.UUID]struct{}, len(admins))
	for _, id := range admins {
		set[id] = struct{}{}
	}
	return &adminList{admins: set}
}

func (a *adminList) Authorize(_ context.Context, actor uuid.UUID, command Command, target uuid.UUID) bool {
	if _, ok := a.admins[actor]; ok {
		return true
	}
	return command == CommandStatus && target == actor
}
