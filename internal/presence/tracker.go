// Package presence tracks which players are connected to which world and
// where they stand. Entries expire when the host stops reporting a player.
package presence

import (
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Location is where a connected player was last seen
type Location struct {
	World    string
	Position entities.Position
}

// Config holds the settings for the tracker
type Config struct {
	// TTL is how long a player counts as connected after the last update
	TTL time.Duration
}

// Validate validates the config
func (c *Config) Validate() error {
	if c.TTL <= 0 {
		return errors.InvalidArgument("ttl must be positive")
	}
	return nil
}

// Tracker holds connected players. Safe for concurrent use.
type Tracker struct {
	players *ttlcache.Cache[uuid.UUID, Location]
}

// New creates a tracker. Call Start to begin evicting expired entries and
// Stop when the world unloads.
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Tracker{
		players: ttlcache.New[uuid.UUID, Location](
			ttlcache.WithTTL[uuid.UUID, Location](cfg.TTL),
			ttlcache.WithDisableTouchOnHit[uuid.UUID, Location](),
		),
	}, nil
}

// Start runs the expiry loop; it blocks until Stop is called
func (t *Tracker) Start() {
	t.players.Start()
}

// Stop ends the expiry loop
func (t *Tracker) Stop() {
	t.players.Stop()
}

// Update records the player's current location and refreshes its TTL
func (t *Tracker) Update(playerID uuid.UUID, world string, pos entities.Position) {
	t.players.Set(playerID, Location{World: world, Position: pos}, ttlcache.DefaultTTL)
}

// Remove forgets a disconnected player
func (t *Tracker) Remove(playerID uuid.UUID) {
	t.players.Delete(playerID)
}

// Lookup returns the last known location of a connected player
func (t *Tracker) Lookup(playerID uuid.UUID) (Location, bool) {
	item := t.players.Get(playerID)
	if item == nil {
		return Location{}, false
	}
	return item.Value(), true
}

// Visitor receives the players ForEachInWorld enumerates. Visit returns
// false to stop.
type Visitor interface {
	Visit(playerID uuid.UUID, pos entities.Position) bool
}

// VisitorFunc adapts a function to Visitor
type VisitorFunc func(playerID uuid.UUID, pos entities.Position) bool

// Visit calls f
func (f VisitorFunc) Visit(playerID uuid.UUID, pos entities.Position) bool {
	return f(playerID, pos)
}

// ForEachInWorld visits every connected player in world until v returns
// false. Expired entries are skipped.
func (t *Tracker) ForEachInWorld(world string, v Visitor) {
	t.players.Range(func(item *ttlcache.Item[uuid.UUID, Location]) bool {
		loc := item.Value()
		if loc.World != world {
			return true
		}
		return v.Visit(item.Key(), loc.Position)
	})
}

// Count returns the number of tracked players, expired or not
func (t *Tracker) Count() int {
	return t.players.Len()
}
