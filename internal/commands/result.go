package commands

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
)

// Code is the outcome of a command. Party commands pass the party store's
// result through unchanged.
type Code string

// Command outcome codes beyond the party results
const (
	CodeSuccess             = Code(party.ResultSuccess)
	CodeNoChange       Code = "NO_CHANGE"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	CodeUnknownGoal    Code = "UNKNOWN_GOAL"
	CodeUnknownPhase   Code = "UNKNOWN_PHASE"
	CodeMissingName    Code = "MISSING_NAME"
	CodeMissingTarget  Code = "MISSING_TARGET"
	CodeWorldNotLoaded Code = "WORLD_NOT_LOADED"
	CodeRateLimited    Code = "RATE_LIMITED"
	CodeNotAuthorized  Code = "NOT_AUTHORIZED"
	CodeReloadFailed   Code = "RELOAD_FAILED"
)

// OK reports whether the command applied
func (c Code) OK() bool {
	return c == CodeSuccess || c == CodeNoChange
}

func fromParty(r party.Result) Code {
	return Code(r)
}

var messages = map[Code]string{
	CodeNoChange:       "Nothing to change for %s.",
	CodeUnknownCommand: "Unknown command %s.",
	CodeUnknownGoal:    "Unknown goal %s.",
	CodeUnknownPhase:   "Unknown phase %s.",
	CodeMissingName:    "A name is required for %s.",
	CodeMissingTarget:  "A target player is required for %s.",
	CodeWorldNotLoaded: "World %s is not loaded.",
	CodeRateLimited:    "Slow down, too many commands from %s.",
	CodeNotAuthorized:  "You are not allowed to run %s.",
	CodeReloadFailed:   "Phase reload failed: %s.",

	Code(party.ResultAlreadyInParty):   "You are already in a party.",
	Code(party.ResultInvalidName):      "Party name %s is not allowed.",
	Code(party.ResultNameTaken):        "A party named %s already exists.",
	Code(party.ResultPartyNotFound):    "No party named %s.",
	Code(party.ResultWrongPassword):    "Wrong password for party %s.",
	Code(party.ResultInvalidPassword):  "Party passwords are limited to 72 bytes.",
	Code(party.ResultPartyFull):        "Party %s is full.",
	Code(party.ResultNotInParty):       "You are not in a party.",
	Code(party.ResultNotLeader):        "Only the party leader can do that.",
	Code(party.ResultNotAMember):       "That player is not in your party.",
	Code(party.ResultCannotTargetSelf): "You cannot target yourself.",
}

// failureMessage renders the one-line message for a failed command. subject
// fills the template when it takes one.
func failureMessage(code Code, subject string) string {
	tmpl, ok := messages[code]
	if !ok {
		return fmt.Sprintf("Command failed: %s.", code)
	}
	return render(tmpl, subject)
}

func render(tmpl, subject string) string {
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, subject)
	}
	return tmpl
}
