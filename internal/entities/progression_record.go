package entities

import "github.com/google/uuid"

// ProgressionRecord is one player's individual progress
type ProgressionRecord struct {
	PlayerID uuid.UUID `json:"player_id"`
	Progress
	Phases    map[PhaseID]bool `json:"phases"`
	Overrides map[PhaseID]bool `json:"overrides,omitempty"`
}

// NewProgressionRecord returns a default record for playerID
func NewProgressionRecord(playerID uuid.UUID) *ProgressionRecord {
	return &ProgressionRecord{
		PlayerID:  playerID,
		Progress:  NewProgress(),
		Phases:    make(map[PhaseID]bool),
		Overrides: make(map[PhaseID]bool),
	}
}

// Normalize fills maps a decoded record may be missing
func (r *ProgressionRecord) Normalize() {
	r.Progress.ensure()
	if r.Phases == nil {
		r.Phases = make(map[PhaseID]bool)
	}
	if r.Overrides == nil {
		r.Overrides = make(map[PhaseID]bool)
	}
}

// Clone returns a deep copy
func (r *ProgressionRecord) Clone() *ProgressionRecord {
	out := &ProgressionRecord{
		PlayerID:  r.PlayerID,
		Progress:  r.Progress.Clone(),
		Phases:    make(map[PhaseID]bool, len(r.Phases)),
		Overrides: make(map[PhaseID]bool, len(r.Overrides)),
	}
	for k, v := range r.Phases {
		out.Phases[k] = v
	}
	for k, v := range r.Overrides {
		out.Overrides[k] = v
	}
	return out
}

// PhaseComplete reports the derived completion flag for id
func (r *ProgressionRecord) PhaseComplete(id PhaseID) bool {
	return r.Phases[id]
}

// Reevaluate recomputes phase flags and reports whether any flipped
func (r *ProgressionRecord) Reevaluate(defs []*PhaseDefinition) bool {
	next := EvaluatePhases(defs, r.Progress, r.Overrides, IdentityQuota)
	if PhasesEqual(r.Phases, next) {
		return false
	}
	r.Phases = next
	return true
}
