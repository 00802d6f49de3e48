package entities

// PhaseID identifies a progression phase
type PhaseID string

// Built-in phases
const (
	PhaseOne PhaseID = "phase_1"
	PhaseTwo PhaseID = "phase_2"
)

// ObjectiveRequirement is one named objective of a phase. Advancement and
// Entity name the gameplay triggers that set it; both are optional.
type ObjectiveRequirement struct {
	Name        string `json:"name" yaml:"name"`
	Required    bool   `json:"required" yaml:"required"`
	Advancement string `json:"advancement,omitempty" yaml:"advancement,omitempty"`
	Entity      string `json:"entity,omitempty" yaml:"entity,omitempty"`
}

// Difficulty multipliers applied to the simulation while a phase is active
type Difficulty struct {
	Health float64 `json:"health" yaml:"health"`
	Damage float64 `json:"damage" yaml:"damage"`
	XP     float64 `json:"xp" yaml:"xp"`
}

// NeutralDifficulty leaves the simulation unchanged
func NeutralDifficulty() Difficulty {
	return Difficulty{Health: 1, Damage: 1, XP: 1}
}

// Combine multiplies two difficulty sets component-wise
func (d Difficulty) Combine(other Difficulty) Difficulty {
	return Difficulty{
		Health: d.Health * other.Health,
		Damage: d.Damage * other.Damage,
		XP:     d.XP * other.XP,
	}
}

// PhaseDefinition is the uniform requirement set every phase is evaluated
// against, built-in or custom.
type PhaseDefinition struct {
	ID            PhaseID                `json:"id"`
	Enabled       bool                   `json:"enabled"`
	Prerequisites []PhaseID              `json:"prerequisites,omitempty"`
	Independent   bool                   `json:"independent,omitempty"`
	Objectives    []ObjectiveRequirement `json:"objectives,omitempty"`
	KillQuotas    map[string]int         `json:"kill_quotas,omitempty"`
	Dimension     string                 `json:"dimension,omitempty"`
	Difficulty    Difficulty             `json:"difficulty"`
	// Scoped objectives live in the record's per-phase custom sub-state
	Scoped bool `json:"scoped,omitempty"`
}

// QuotaFunc scales a base kill quota, e.g. by party size
type QuotaFunc func(base int) int

// IdentityQuota leaves quotas unchanged
func IdentityQuota(base int) int { return base }

// RequirementsMet reports whether every enabled objective and kill quota of
// the phase holds for p. Disabled objectives are vacuously satisfied.
func (d *PhaseDefinition) RequirementsMet(p Progress, quota QuotaFunc) bool {
	if quota == nil {
		quota = IdentityQuota
	}
	for _, o := range d.Objectives {
		if o.Required && !p.HasObjective(d, o.Name) {
			return false
		}
	}
	for mob, base := range d.KillQuotas {
		if p.KillCount(mob) < quota(base) {
			return false
		}
	}
	return true
}

// EvaluatePhases recomputes completion for defs, which must be ordered so
// that prerequisites come first. A phase is complete when it is overridden,
// disabled, or unlocked (see Unlocked) with its requirements met.
func EvaluatePhases(defs []*PhaseDefinition, p Progress, overrides map[PhaseID]bool, quota QuotaFunc) map[PhaseID]bool {
	result := make(map[PhaseID]bool, len(defs))
	chain := true
	for _, def := range defs {
		switch {
		case overrides[def.ID]:
			result[def.ID] = true
		case !def.Enabled:
			result[def.ID] = true
		default:
			result[def.ID] = Unlocked(def, result, chain) && def.RequirementsMet(p, quota)
		}
		if !def.Independent {
			chain = chain && result[def.ID]
		}
	}
	return result
}

// Unlocked reports whether def may complete. Its explicit prerequisites must
// be complete, and unless it is independent, chain must be true: every
// earlier phase that is not independent is complete. Independent phases
// neither wait on nor hold up the chain.
func Unlocked(def *PhaseDefinition, completed map[PhaseID]bool, chain bool) bool {
	if !def.Independent && !chain {
		return false
	}
	for _, prereq := range def.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// PhasesEqual reports whether two completion maps agree on every phase
func PhasesEqual(a, b map[PhaseID]bool) bool {
	for id, v := range a {
		if b[id] != v {
			return false
		}
	}
	for id, v := range b {
		if a[id] != v {
			return false
		}
	}
	return true
}
