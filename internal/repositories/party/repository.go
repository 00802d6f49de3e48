// Package party provides the interface for per-world party record persistence
package party

//go:generate mockgen -destination=mock/mock_repository.go -package=partymock github.com/KirkDiggler/rpg-progression/internal/repositories/party Repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository persists one party table per world, keyed by party id
type Repository interface {
	// LoadAll retrieves every party of a world.
	// Parties that fail to decode are dropped and listed in Corrupted.
	// Returns errors.InvalidArgument for an empty world id
	// Returns errors.Internal for storage failures
	LoadAll(ctx context.Context, input LoadAllInput) (*LoadAllOutput, error)

	// SaveBatch writes changed parties and removes destroyed ones in one transaction.
	// Returns errors.InvalidArgument for an empty world id or nil party
	// Returns errors.Internal for storage failures
	SaveBatch(ctx context.Context, input SaveBatchInput) (*SaveBatchOutput, error)
}

// LoadAllInput defines the input for loading a world's parties
type LoadAllInput struct {
	World string
}

// LoadAllOutput defines the output for loading a world's parties
type LoadAllOutput struct {
	Parties   []*entities.PartyRecord
	Corrupted []string
}

// SaveBatchInput defines the input for saving parties
type SaveBatchInput struct {
	World   string
	Parties []*entities.PartyRecord
	Deleted []uuid.UUID
}

// SaveBatchOutput defines the output for saving parties
type SaveBatchOutput struct {
	Saved   int
	Deleted int
}
