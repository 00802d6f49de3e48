package party

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	worldKeyPrefix = "party:world:"

	errWorldEmpty = "world cannot be empty"
	errPartyNil   = "party cannot be nil"
)

// WorldKey returns the hash key holding a world's parties
func WorldKey(world string) string {
	return worldKeyPrefix + world
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis party repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed party repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) LoadAll(ctx context.Context, input LoadAllInput) (*LoadAllOutput, error) {
	if input.World == "" {
		return nil, errors.InvalidArgument(errWorldEmpty)
	}

	raw, err := r.client.HGetAll(ctx, WorldKey(input.World)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load parties for world %s", input.World)
	}

	output := &LoadAllOutput{
		Parties: make([]*entities.PartyRecord, 0, len(raw)),
	}

	for field, value := range raw {
		var party entities.PartyRecord
		reason := ""
		switch err := json.Unmarshal([]byte(value), &party); {
		case err != nil:
			reason = err.Error()
		case party.ID.String() != field:
			reason = "party id mismatch"
		case len(party.Members) == 0:
			reason = "party has no members"
		case !party.IsMember(party.Leader):
			reason = "leader is not a member"
		}

		if reason != "" {
			slog.WarnContext(ctx, "dropping corrupted party record",
				"world", input.World,
				"party_id", field,
				"error", reason)
			output.Corrupted = append(output.Corrupted, field)
			continue
		}

		party.Normalize()
		output.Parties = append(output.Parties, &party)
	}

	slog.DebugContext(ctx, "loaded parties",
		"world", input.World,
		"count", len(output.Parties),
		"corrupted", len(output.Corrupted))

	return output, nil
}

func (r *redisRepository) SaveBatch(ctx context.Context, input SaveBatchInput) (*SaveBatchOutput, error) {
	if input.World == "" {
		return nil, errors.InvalidArgument(errWorldEmpty)
	}
	if len(input.Parties) == 0 && len(input.Deleted) == 0 {
		return &SaveBatchOutput{}, nil
	}

	values := make([]any, 0, len(input.Parties)*2)
	for _, party := range input.Parties {
		if party == nil {
			return nil, errors.InvalidArgument(errPartyNil)
		}
		data, err := json.Marshal(party)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal party %s", party.ID)
		}
		values = append(values, party.ID.String(), data)
	}

	key := WorldKey(input.World)
	pipe := r.client.TxPipeline()
	if len(values) > 0 {
		pipe.HSet(ctx, key, values...)
	}
	if len(input.Deleted) > 0 {
		fields := make([]string, 0, len(input.Deleted))
		for _, id := range input.Deleted {
			fields = append(fields, id.String())
		}
		pipe.HDel(ctx, key, fields...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save parties for world %s", input.World)
	}

	return &SaveBatchOutput{Saved: len(input.Parties), Deleted: len(input.Deleted)}, nil
}

// DeletedIDs is a helper for callers holding destroyed party ids in a set
func DeletedIDs(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
