// Package entities holds the progression engine's data model: per-player
// progression records, party records, phase definitions and the pure
// functions (merge, phase evaluation, multiplier) that operate on them.
//
// Nothing in this package locks. Ownership and serialization of access
// belong to the stores that hold these records.
package entities
