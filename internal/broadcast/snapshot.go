package broadcast

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// ProgressionSnapshot is the whole progression state of one player
type ProgressionSnapshot struct {
	PlayerID   uuid.UUID                            `json:"player_id"`
	Objectives map[string]bool                      `json:"objectives"`
	Custom     map[entities.PhaseID]map[string]bool `json:"custom,omitempty"`
	Kills      map[string]int                       `json:"kills"`
	Phases     map[entities.PhaseID]bool            `json:"phases"`
	Difficulty entities.Difficulty                  `json:"difficulty"`
}

// NewProgressionSnapshot copies record into a snapshot. Every built-in
// objective is listed, unset ones as false.
func NewProgressionSnapshot(record *entities.ProgressionRecord, difficulty entities.Difficulty) ProgressionSnapshot {
	objectives := make(map[string]bool, len(entities.BuiltinObjectives))
	for _, name := range entities.BuiltinObjectives {
		objectives[name] = false
	}
	for name, done := range record.Objectives {
		objectives[name] = done
	}

	clone := record.Clone()
	return ProgressionSnapshot{
		PlayerID:   record.PlayerID,
		Objectives: objectives,
		Custom:     clone.Custom,
		Kills:      clone.Kills,
		Phases:     clone.Phases,
		Difficulty: difficulty,
	}
}

// PartySnapshot is the whole visible state of one party. The password is
// never included.
type PartySnapshot struct {
	PartyID     uuid.UUID                 `json:"party_id"`
	Name        string                    `json:"name"`
	Visibility  entities.Visibility       `json:"visibility"`
	Leader      uuid.UUID                 `json:"leader"`
	Members     []uuid.UUID               `json:"members"`
	MemberCount int                       `json:"member_count"`
	MaxMembers  int                       `json:"max_members"`
	Multiplier  float64                   `json:"multiplier"`
	Objectives  map[string]bool           `json:"objectives"`
	Kills       map[string]int            `json:"kills"`
	Phases      map[entities.PhaseID]bool `json:"phases"`
}

// NewPartySnapshot copies party into a snapshot
func NewPartySnapshot(party *entities.PartyRecord, maxMembers int, k float64) PartySnapshot {
	clone := party.Clone()
	return PartySnapshot{
		PartyID:     clone.ID,
		Name:        clone.Name,
		Visibility:  clone.Visibility,
		Leader:      clone.Leader,
		Members:     clone.Members,
		MemberCount: clone.MemberCount(),
		MaxMembers:  maxMembers,
		Multiplier:  entities.Multiplier(clone.MemberCount(), k),
		Objectives:  clone.Shared.Objectives,
		Kills:       clone.Shared.Kills,
		Phases:      clone.Phases,
	}
}
