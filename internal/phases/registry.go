// Package phases loads phase definitions: the built-in phases produced from
// configuration plus custom phases described in an external YAML file.
package phases

//go:generate mockgen -destination=mock/mock_source.go -package=phasesmock github.com/KirkDiggler/rpg-progression/internal/phases Source

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Source supplies the raw custom phase document
type Source interface {
	Read(ctx context.Context) ([]byte, error)
}

// FileSource reads descriptors from a file on disk
type FileSource struct {
	Path string
}

// Read returns the file contents
func (f *FileSource) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read phase file %s", f.Path)
	}
	return data, nil
}

// TriggerKind is the kind of gameplay event that can set an objective
type TriggerKind string

// Trigger kinds
const (
	TriggerAdvancement TriggerKind = "advancement"
	TriggerEntityDeath TriggerKind = "entity"
)

// Trigger names one gameplay event
type Trigger struct {
	Kind TriggerKind
	ID   string
}

// ObjectiveRef points at one objective of one phase
type ObjectiveRef struct {
	Phase  entities.PhaseID
	Name   string
	Scoped bool
}

// String renders phase/name for scoped objectives and the bare name
// otherwise
func (r ObjectiveRef) String() string {
	if r.Scoped {
		return string(r.Phase) + "/" + r.Name
	}
	return r.Name
}

// Config holds the dependencies for the registry
type Config struct {
	Builtins []*entities.PhaseDefinition
	// Source is optional; without it only built-in phases exist
	Source Source
}

// Validate ensures the built-in phases are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Builtins) == 0 {
		vb.RequiredField("Builtins")
	}
	for _, def := range c.Builtins {
		if def == nil || def.ID == "" {
			vb.Field("Builtins", "every built-in phase needs an id")
		}
	}
	return vb.Build()
}

// Registry is a read-mostly table of phase definitions. Readers always see
// one complete table; Reload swaps in a new one atomically. Definitions it
// hands out must be treated as read-only.
type Registry struct {
	builtins []*entities.PhaseDefinition
	source   Source
	table    atomic.Pointer[table]
}

// New creates a registry and performs the initial load. A missing or broken
// source degrades to built-in phases only and never fails construction.
func New(ctx context.Context, cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &Registry{
		builtins: cfg.Builtins,
		source:   cfg.Source,
	}
	r.table.Store(buildTable(ctx, r.builtins, nil))

	if r.source != nil {
		if _, err := r.Reload(ctx); err != nil {
			slog.WarnContext(ctx, "custom phases unavailable, continuing with built-in phases",
				"error", err.Error())
		}
	}

	return r, nil
}

// Reload re-reads the source and swaps the table. On a read failure the
// current table stays in place.
func (r *Registry) Reload(ctx context.Context) (*LoadReport, error) {
	if r.source == nil {
		return &LoadReport{}, nil
	}

	data, err := r.source.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read custom phases")
	}

	descriptors, report := parseDocument(ctx, data)
	t := buildTable(ctx, r.builtins, descriptors)
	report.absorb(t.skipped)
	report.Loaded = len(t.ordered) - len(r.builtins)
	r.table.Store(t)

	slog.InfoContext(ctx, "custom phases loaded",
		"loaded", report.Loaded,
		"skipped", len(report.Skipped))

	return report, nil
}

// GetPhase returns the definition for id
func (r *Registry) GetPhase(id entities.PhaseID) (*entities.PhaseDefinition, bool) {
	def, ok := r.table.Load().byID[id]
	return def, ok
}

// AllPhases returns every phase with prerequisites ahead of dependents
func (r *Registry) AllPhases() []*entities.PhaseDefinition {
	return r.table.Load().ordered
}

// IsDimensionGatedBy returns the phase gating dimensionID, if any
func (r *Registry) IsDimensionGatedBy(dimensionID string) (entities.PhaseID, bool) {
	id, ok := r.table.Load().byDimension[dimensionID]
	return id, ok
}

// ObjectivesTriggeredBy returns the objectives set by a gameplay event
func (r *Registry) ObjectivesTriggeredBy(trigger Trigger) []ObjectiveRef {
	return r.table.Load().triggers[trigger]
}

// ActiveDifficulty multiplies the difficulty of every enabled custom phase
// that is unlocked but not yet complete. Phases are unlocked by the same rule
// as evaluation (entities.Unlocked).
func (r *Registry) ActiveDifficulty(completed map[entities.PhaseID]bool) entities.Difficulty {
	result := entities.NeutralDifficulty()
	chain := true
	for _, def := range r.table.Load().ordered {
		done := completed[def.ID]
		if def.Enabled && def.Scoped && !done && entities.Unlocked(def, completed, chain) {
			result = result.Combine(def.Difficulty)
		}
		if !def.Independent {
			chain = chain && (done || !def.Enabled)
		}
	}
	return result
}
