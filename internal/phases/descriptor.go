package phases

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// descriptor is the on-disk shape of one custom phase. Pointer fields carry
// defaults when omitted.
type descriptor struct {
	ID            string                `yaml:"id"`
	Enabled       *bool                 `yaml:"enabled"`
	Prerequisites []string              `yaml:"prerequisites"`
	Independent   bool                  `yaml:"independent"`
	Dimension     string                `yaml:"dimension"`
	Objectives    []objectiveDescriptor `yaml:"objectives"`
	Kills         map[string]int        `yaml:"kills"`
	Difficulty    *difficultyDescriptor `yaml:"difficulty"`
}

type objectiveDescriptor struct {
	Name        string `yaml:"name"`
	Required    *bool  `yaml:"required"`
	Advancement string `yaml:"advancement"`
	Entity      string `yaml:"entity"`
}

type difficultyDescriptor struct {
	Health *float64 `yaml:"health"`
	Damage *float64 `yaml:"damage"`
	XP     *float64 `yaml:"xp"`
}

type document struct {
	Phases []yaml.Node `yaml:"phases"`
}

// SkippedPhase records a descriptor that was not loaded and why
type SkippedPhase struct {
	Index  int
	ID     string
	Reason string
}

// LoadReport summarizes one load of the custom phase source
type LoadReport struct {
	Loaded  int
	Skipped []SkippedPhase
}

func (r *LoadReport) absorb(skipped []SkippedPhase) {
	r.Skipped = append(r.Skipped, skipped...)
}

func skip(ctx context.Context, index int, id, reason string) SkippedPhase {
	slog.WarnContext(ctx, "skipping custom phase",
		"index", index,
		"phase_id", id,
		"reason", reason)
	return SkippedPhase{Index: index, ID: id, Reason: reason}
}

// parseDocument decodes each descriptor on its own so one malformed entry
// cannot take the rest down with it.
func parseDocument(ctx context.Context, data []byte) ([]indexedDefinition, *LoadReport) {
	report := &LoadReport{}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		report.absorb([]SkippedPhase{skip(ctx, -1, "", fmt.Sprintf("document: %v", err))})
		return nil, report
	}

	defs := make([]indexedDefinition, 0, len(doc.Phases))
	for i := range doc.Phases {
		var d descriptor
		if err := doc.Phases[i].Decode(&d); err != nil {
			report.absorb([]SkippedPhase{skip(ctx, i, "", err.Error())})
			continue
		}
		def, reason := d.toDefinition()
		if reason != "" {
			report.absorb([]SkippedPhase{skip(ctx, i, d.ID, reason)})
			continue
		}
		defs = append(defs, indexedDefinition{index: i, def: def})
	}

	return defs, report
}

type indexedDefinition struct {
	index int
	def   *entities.PhaseDefinition
}

func (d *descriptor) toDefinition() (*entities.PhaseDefinition, string) {
	if d.ID == "" {
		return nil, "missing id"
	}

	def := &entities.PhaseDefinition{
		ID:          entities.PhaseID(d.ID),
		Enabled:     d.Enabled == nil || *d.Enabled,
		Independent: d.Independent,
		Dimension:   d.Dimension,
		KillQuotas:  make(map[string]int, len(d.Kills)),
		Difficulty:  entities.NeutralDifficulty(),
		Scoped:      true,
	}

	for _, prereq := range d.Prerequisites {
		if prereq == d.ID {
			return nil, "phase lists itself as a prerequisite"
		}
		def.Prerequisites = append(def.Prerequisites, entities.PhaseID(prereq))
	}

	seen := make(map[string]bool, len(d.Objectives))
	for _, o := range d.Objectives {
		if o.Name == "" {
			return nil, "objective without a name"
		}
		if seen[o.Name] {
			return nil, fmt.Sprintf("duplicate objective %q", o.Name)
		}
		seen[o.Name] = true
		def.Objectives = append(def.Objectives, entities.ObjectiveRequirement{
			Name:        o.Name,
			Required:    o.Required == nil || *o.Required,
			Advancement: o.Advancement,
			Entity:      o.Entity,
		})
	}

	for mob, quota := range d.Kills {
		if mob == "" {
			return nil, "kill quota without a mob type"
		}
		if quota < 0 {
			return nil, fmt.Sprintf("negative kill quota for %s", mob)
		}
		def.KillQuotas[mob] = quota
	}

	if d.Difficulty != nil {
		for _, f := range []struct {
			name  string
			value *float64
			dst   *float64
		}{
			{"health", d.Difficulty.Health, &def.Difficulty.Health},
			{"damage", d.Difficulty.Damage, &def.Difficulty.Damage},
			{"xp", d.Difficulty.XP, &def.Difficulty.XP},
		} {
			if f.value == nil {
				continue
			}
			if *f.value <= 0 {
				return nil, fmt.Sprintf("difficulty %s must be positive", f.name)
			}
			*f.dst = *f.value
		}
	}

	return def, ""
}

type table struct {
	ordered     []*entities.PhaseDefinition
	byID        map[entities.PhaseID]*entities.PhaseDefinition
	byDimension map[string]entities.PhaseID
	triggers    map[Trigger][]ObjectiveRef
	skipped     []SkippedPhase
}

// buildTable merges built-in and custom definitions. Custom entries that
// collide with an existing id or dimension, reference an unknown phase, or
// sit on a prerequisite cycle are skipped.
func buildTable(ctx context.Context, builtins []*entities.PhaseDefinition, custom []indexedDefinition) *table {
	t := &table{
		byID:        make(map[entities.PhaseID]*entities.PhaseDefinition),
		byDimension: make(map[string]entities.PhaseID),
		triggers:    make(map[Trigger][]ObjectiveRef),
	}

	for _, def := range builtins {
		t.add(def)
	}

	pending := make(map[entities.PhaseID]indexedDefinition, len(custom))
	claimed := make(map[string]entities.PhaseID)
	for dimension, id := range t.byDimension {
		claimed[dimension] = id
	}
	for _, c := range custom {
		owner, taken := claimed[c.def.Dimension]
		switch {
		case t.byID[c.def.ID] != nil:
			t.skipped = append(t.skipped, skip(ctx, c.index, string(c.def.ID), "id already defined"))
		case pending[c.def.ID].def != nil:
			t.skipped = append(t.skipped, skip(ctx, c.index, string(c.def.ID), "duplicate id"))
		case c.def.Dimension != "" && taken:
			t.skipped = append(t.skipped, skip(ctx, c.index, string(c.def.ID),
				fmt.Sprintf("dimension %s already gated by %s", c.def.Dimension, owner)))
		default:
			pending[c.def.ID] = c
			if c.def.Dimension != "" {
				claimed[c.def.Dimension] = c.def.ID
			}
		}
	}

	// Drop entries whose prerequisites are unknown until nothing changes,
	// since dropping one may orphan another.
	for changed := true; changed; {
		changed = false
		for id, c := range pending {
			for _, prereq := range c.def.Prerequisites {
				if t.byID[prereq] == nil && pending[prereq].def == nil {
					t.skipped = append(t.skipped, skip(ctx, c.index, string(id),
						fmt.Sprintf("unknown prerequisite %s", prereq)))
					delete(pending, id)
					changed = true
					break
				}
			}
		}
	}

	// Kahn's algorithm, document order among ready entries. The resulting order
	// is the implicit phase chain.
	for len(pending) > 0 {
		ready := make([]entities.PhaseID, 0, len(pending))
		for id, c := range pending {
			satisfied := true
			for _, prereq := range c.def.Prerequisites {
				if t.byID[prereq] == nil {
					satisfied = false
					break
				}
			}
			if satisfied {
				ready = append(ready, id)
			}
		}

		if len(ready) == 0 {
			for id, c := range pending {
				t.skipped = append(t.skipped, skip(ctx, c.index, string(id), "prerequisite cycle"))
			}
			break
		}

		sort.Slice(ready, func(i, j int) bool { return pending[ready[i]].index < pending[ready[j]].index })
		for _, id := range ready {
			t.add(pending[id].def)
			delete(pending, id)
		}
	}

	sort.Slice(t.skipped, func(i, j int) bool { return t.skipped[i].Index < t.skipped[j].Index })
	return t
}

func (t *table) add(def *entities.PhaseDefinition) {
	t.ordered = append(t.ordered, def)
	t.byID[def.ID] = def
	if def.Dimension != "" {
		t.byDimension[def.Dimension] = def.ID
	}
	for _, o := range def.Objectives {
		ref := ObjectiveRef{Phase: def.ID, Name: o.Name, Scoped: def.Scoped}
		if o.Advancement != "" {
			key := Trigger{Kind: TriggerAdvancement, ID: o.Advancement}
			t.triggers[key] = append(t.triggers[key], ref)
		}
		if o.Entity != "" {
			key := Trigger{Kind: TriggerEntityDeath, ID: o.Entity}
			t.triggers[key] = append(t.triggers[key], ref)
		}
	}
}
