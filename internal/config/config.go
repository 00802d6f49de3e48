// Package config resolves the engine's typed configuration once at load time.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Config is the full engine configuration
type Config struct {
	RedisAddr     string        `env:"PROGRESSION_REDIS_ADDR" envDefault:"localhost:6379"`
	GRPCPort      int           `env:"PROGRESSION_GRPC_PORT" envDefault:"50061"`
	FlushInterval time.Duration `env:"PROGRESSION_FLUSH_INTERVAL" envDefault:"30s"`
	PhasesFile    string        `env:"PROGRESSION_PHASES_FILE"`

	Phase1    PhaseConfig     `envPrefix:"PROGRESSION_PHASE1_"`
	Phase2    PhaseConfig     `envPrefix:"PROGRESSION_PHASE2_"`
	Party     PartyConfig     `envPrefix:"PROGRESSION_PARTY_"`
	Proximity ProximityConfig `envPrefix:"PROGRESSION_PROXIMITY_"`
	Commands  CommandConfig   `envPrefix:"PROGRESSION_COMMANDS_"`
}

// PhaseConfig toggles a built-in phase and its requirements. Require maps
// objective names to whether they count; objectives absent from the map use
// the built-in default.
type PhaseConfig struct {
	Enabled    bool            `env:"ENABLED" envDefault:"true"`
	Require    map[string]bool `env:"REQUIRE"`
	KillQuotas map[string]int  `env:"KILL_QUOTAS"`
	Dimension  string          `env:"DIMENSION"`
}

// PartyConfig bounds party membership and names
type PartyConfig struct {
	MaxSize             int           `env:"MAX_SIZE" envDefault:"4"`
	MultiplierIncrement float64       `env:"MULTIPLIER_INCREMENT" envDefault:"0.75"`
	NameMinLength       int           `env:"NAME_MIN_LENGTH" envDefault:"3"`
	NameMaxLength       int           `env:"NAME_MAX_LENGTH" envDefault:"24"`
	InviteTTL           time.Duration `env:"INVITE_TTL" envDefault:"2m"`
}

// ProximityConfig drives the nearby-player multiplier scan
type ProximityConfig struct {
	Radius      float64       `env:"RADIUS" envDefault:"32"`
	PresenceTTL time.Duration `env:"PRESENCE_TTL" envDefault:"30s"`
}

// CommandConfig rate limits player-issued commands. Admins lists the player
// ids allowed to run administrative commands; empty admits everyone.
type CommandConfig struct {
	RefillPerSecond float64  `env:"REFILL_PER_SECOND" envDefault:"2"`
	Burst           int      `env:"BURST" envDefault:"5"`
	Admins          []string `env:"ADMINS"`
}

// AdminIDs returns the parsed admin ids, skipping any that do not parse.
// Validate reports those.
func (c CommandConfig) AdminIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Admins))
	for _, raw := range c.Admins {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// FromEnv parses the configuration from environment variables and validates it
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("parse env: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration the engine uses with no environment set
func Default() *Config {
	cfg := &Config{}
	// defaults come from struct tags, an empty environment cannot fail
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Validate checks bounds on every numeric setting
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if c.FlushInterval <= 0 {
		vb.Field("flush_interval", "must be positive")
	}
	errors.ValidateRange("party.max_size", c.Party.MaxSize, 1, 64, vb)
	errors.ValidateNonNegative("party.multiplier_increment", c.Party.MultiplierIncrement, vb)
	errors.ValidateRange("party.name_min_length", c.Party.NameMinLength, 1, 64, vb)
	errors.ValidateRange("party.name_max_length", c.Party.NameMaxLength, c.Party.NameMinLength, 64, vb)
	if c.Party.InviteTTL <= 0 {
		vb.Field("party.invite_ttl", "must be positive")
	}
	errors.ValidatePositive("proximity.radius", c.Proximity.Radius, vb)
	if c.Proximity.PresenceTTL <= 0 {
		vb.Field("proximity.presence_ttl", "must be positive")
	}
	errors.ValidatePositive("commands.refill_per_second", c.Commands.RefillPerSecond, vb)
	errors.ValidateRange("commands.burst", c.Commands.Burst, 1, 1000, vb)
	for _, raw := range c.Commands.Admins {
		if _, err := uuid.Parse(raw); err != nil {
			vb.Fieldf("commands.admins", "invalid player id %q", raw)
		}
	}

	for _, phase := range []struct {
		name string
		cfg  PhaseConfig
	}{{"phase1", c.Phase1}, {"phase2", c.Phase2}} {
		for mob, quota := range phase.cfg.KillQuotas {
			if quota < 0 {
				vb.Fieldf(phase.name+".kill_quotas", "%s quota must not be negative", mob)
			}
		}
		for name := range phase.cfg.Require {
			if !entities.IsBuiltinObjective(name) {
				vb.Fieldf(phase.name+".require", "unknown objective %q", name)
			}
		}
	}

	return vb.Build()
}
