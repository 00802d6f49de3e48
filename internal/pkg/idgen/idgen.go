// Package idgen provides ID generation for parties and other records
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() uuid.UUID
}

// UUIDGenerator generates random (version 4) UUIDs
type UUIDGenerator struct{}

// NewUUID creates a new random UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new random UUID
func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}

// SequentialGenerator generates deterministic UUIDs for testing. The same
// namespace always yields the same sequence.
type SequentialGenerator struct {
	namespace uuid.UUID
	counter   uint64
}

// NewSequential creates a new sequential generator. The prefix seeds the
// namespace so separate generators do not collide.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(prefix))}
}

// Generate creates the next UUID in the sequence
func (g *SequentialGenerator) Generate() uuid.UUID {
	n := atomic.AddUint64(&g.counter, 1)
	return uuid.NewSHA1(g.namespace, []byte(strconv.FormatUint(n, 10)))
}
