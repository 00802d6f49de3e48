// Package progression provides the interface for per-world progression record persistence
package progression

//go:generate mockgen -destination=mock/mock_repository.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/repositories/progression Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository persists one record table per world, keyed by player id
type Repository interface {
	// LoadAll retrieves every record of a world.
	// Records that fail to decode come back as defaults and are listed in Corrupted.
	// Returns errors.InvalidArgument for an empty world id
	// Returns errors.Internal for storage failures
	LoadAll(ctx context.Context, input LoadAllInput) (*LoadAllOutput, error)

	// SaveBatch writes the given records in one transaction.
	// Returns errors.InvalidArgument for an empty world id or nil record
	// Returns errors.Internal for storage failures
	SaveBatch(ctx context.Context, input SaveBatchInput) (*SaveBatchOutput, error)
}

// LoadAllInput defines the input for loading a world's records
type LoadAllInput struct {
	World string
}

// LoadAllOutput defines the output for loading a world's records
type LoadAllOutput struct {
	Records []*entities.ProgressionRecord
	// Corrupted lists the raw keys of records that were reset or dropped
	Corrupted []string
}

// SaveBatchInput defines the input for saving records
type SaveBatchInput struct {
	World   string
	Records []*entities.ProgressionRecord
}

// SaveBatchOutput defines the output for saving records
type SaveBatchOutput struct {
	Saved int
}
