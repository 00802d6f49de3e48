package entities

// Built-in objective identifiers
const (
	ObjectiveElderGuardian  = "elder_guardian"
	ObjectiveRaidWon        = "raid_won"
	ObjectiveWither         = "wither"
	ObjectiveWarden         = "warden"
	ObjectiveTrialVault     = "trial_vault"
	ObjectiveVoluntaryExile = "voluntary_exile"
)

// BuiltinObjectives lists every built-in objective in display order
var BuiltinObjectives = []string{
	ObjectiveElderGuardian,
	ObjectiveRaidWon,
	ObjectiveTrialVault,
	ObjectiveVoluntaryExile,
	ObjectiveWither,
	ObjectiveWarden,
}

// IsBuiltinObjective reports whether name is one of the built-in objectives
func IsBuiltinObjective(name string) bool {
	for _, o := range BuiltinObjectives {
		if o == name {
			return true
		}
	}
	return false
}

// Progress is the mergeable part of a record: objective flags, kill counters
// and the objective flags of custom phases. Both players and parties carry one.
type Progress struct {
	Objectives map[string]bool             `json:"objectives"`
	Kills      map[string]int              `json:"kills"`
	Custom     map[PhaseID]map[string]bool `json:"custom,omitempty"`
}

// NewProgress returns an empty Progress with initialized maps
func NewProgress() Progress {
	return Progress{
		Objectives: make(map[string]bool),
		Kills:      make(map[string]int),
		Custom:     make(map[PhaseID]map[string]bool),
	}
}

// Clone returns a deep copy
func (p Progress) Clone() Progress {
	out := NewProgress()
	for k, v := range p.Objectives {
		out.Objectives[k] = v
	}
	for k, v := range p.Kills {
		out.Kills[k] = v
	}
	for phase, objectives := range p.Custom {
		copied := make(map[string]bool, len(objectives))
		for k, v := range objectives {
			copied[k] = v
		}
		out.Custom[phase] = copied
	}
	return out
}

// ensure initializes nil maps left behind by decoding older records
func (p *Progress) ensure() {
	if p.Objectives == nil {
		p.Objectives = make(map[string]bool)
	}
	if p.Kills == nil {
		p.Kills = make(map[string]int)
	}
	if p.Custom == nil {
		p.Custom = make(map[PhaseID]map[string]bool)
	}
}

// Merge folds other into p: objective flags are OR-ed and counters take the
// per-key maximum. The operation is commutative, associative and idempotent,
// and never lowers anything already in p. Returns true if p changed.
func (p *Progress) Merge(other Progress) bool {
	p.ensure()
	changed := false

	for name, done := range other.Objectives {
		if done && !p.Objectives[name] {
			p.Objectives[name] = true
			changed = true
		}
	}

	for mob, count := range other.Kills {
		if count > p.Kills[mob] {
			p.Kills[mob] = count
			changed = true
		}
	}

	for phase, objectives := range other.Custom {
		for name, done := range objectives {
			if !done {
				continue
			}
			if p.Custom[phase] == nil {
				p.Custom[phase] = make(map[string]bool)
			}
			if !p.Custom[phase][name] {
				p.Custom[phase][name] = true
				changed = true
			}
		}
	}

	return changed
}

// IncrementKill adds one to the counter for mob and returns the new count
func (p *Progress) IncrementKill(mob string) int {
	p.ensure()
	p.Kills[mob]++
	return p.Kills[mob]
}

// SetObjective sets a built-in objective flag. Returns false when the value
// did not change.
func (p *Progress) SetObjective(name string, value bool) bool {
	p.ensure()
	if p.Objectives[name] == value {
		return false
	}
	if value {
		p.Objectives[name] = true
	} else {
		delete(p.Objectives, name)
	}
	return true
}

// SetCustomObjective sets an objective flag scoped to a custom phase
func (p *Progress) SetCustomObjective(phase PhaseID, name string, value bool) bool {
	p.ensure()
	if p.Custom[phase][name] == value {
		return false
	}
	if value {
		if p.Custom[phase] == nil {
			p.Custom[phase] = make(map[string]bool)
		}
		p.Custom[phase][name] = true
	} else {
		delete(p.Custom[phase], name)
	}
	return true
}

// KillCount returns the counter for mob, zero if never killed
func (p Progress) KillCount(mob string) int {
	return p.Kills[mob]
}

// HasObjective reads an objective for the given phase. Scoped (custom) phases
// read their own sub-state, built-in phases read the shared objective flags.
func (p Progress) HasObjective(def *PhaseDefinition, name string) bool {
	if def != nil && def.Scoped {
		return p.Custom[def.ID][name]
	}
	return p.Objectives[name]
}
