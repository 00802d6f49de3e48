package config

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Default dimensions gated by the built-in phases
const (
	DefaultPhase1Dimension = "minecraft:the_nether"
	DefaultPhase2Dimension = "minecraft:the_end"
)

type builtinObjective struct {
	name        string
	required    bool
	advancement string
	entity      string
}

var phase1Objectives = []builtinObjective{
	{name: entities.ObjectiveElderGuardian, required: true, entity: "minecraft:elder_guardian"},
	{name: entities.ObjectiveRaidWon, required: true, advancement: "minecraft:adventure/hero_of_the_village"},
	{name: entities.ObjectiveTrialVault, required: true, advancement: "minecraft:adventure/under_lock_and_key"},
	{name: entities.ObjectiveVoluntaryExile, required: false, advancement: "minecraft:adventure/voluntary_exile"},
}

var phase2Objectives = []builtinObjective{
	{name: entities.ObjectiveWither, required: true, entity: "minecraft:wither"},
	{name: entities.ObjectiveWarden, required: true, entity: "minecraft:warden"},
}

// BuiltinPhases produces the two built-in phase definitions. They are plain
// entries of the same shape custom phases use.
func (c *Config) BuiltinPhases() []*entities.PhaseDefinition {
	one := buildPhase(entities.PhaseOne, c.Phase1, phase1Objectives, DefaultPhase1Dimension)
	two := buildPhase(entities.PhaseTwo, c.Phase2, phase2Objectives, DefaultPhase2Dimension)
	two.Prerequisites = []entities.PhaseID{entities.PhaseOne}
	return []*entities.PhaseDefinition{one, two}
}

func buildPhase(id entities.PhaseID, cfg PhaseConfig, objectives []builtinObjective, dimension string) *entities.PhaseDefinition {
	def := &entities.PhaseDefinition{
		ID:         id,
		Enabled:    cfg.Enabled,
		KillQuotas: make(map[string]int, len(cfg.KillQuotas)),
		Dimension:  dimension,
		Difficulty: entities.NeutralDifficulty(),
	}
	if cfg.Dimension != "" {
		def.Dimension = cfg.Dimension
	}
	for _, o := range objectives {
		required := o.required
		if v, ok := cfg.Require[o.name]; ok {
			required = v
		}
		def.Objectives = append(def.Objectives, entities.ObjectiveRequirement{
			Name:        o.name,
			Required:    required,
			Advancement: o.advancement,
			Entity:      o.entity,
		})
	}
	for mob, quota := range cfg.KillQuotas {
		def.KillQuotas[mob] = quota
	}
	return def
}
