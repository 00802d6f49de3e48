package progression

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
	worldKeyPrefix = "progression:world:"

	errWorldEmpty = "world cannot be empty"
	errRecordNil  = "record cannot be nil"
)

// WorldKey returns the hash key holding a world's progression records
func WorldKey(world string) string {
	return worldKeyPrefix + world
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis progression repository.
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

// NewRedis creates a new Redis-backed progression repository
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

	key := WorldKey(input.World)
	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load progression records for world %s", input.World)
	}

	output := &LoadAllOutput{
		Records: make([]*entities.ProgressionRecord, 0, len(raw)),
	}

	for field, value := range raw {
		playerID, err := uuid.Parse(field)
		if err != nil {
			slog.WarnContext(ctx, "dropping progression record with invalid player id",
				"world", input.World,
				"field", field,
				"error", err.Error())
			output.Corrupted = append(output.Corrupted, field)
			continue
		}

		var record entities.ProgressionRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil || record.PlayerID != playerID {
			reason := "player id mismatch"
			if err != nil {
				reason = err.Error()
			}
			slog.WarnContext(ctx, "resetting corrupted progression record to defaults",
				"world", input.World,
				"player_id", playerID.String(),
				"error", reason)
			output.Corrupted = append(output.Corrupted, field)
			output.Records = append(output.Records, entities.NewProgressionRecord(playerID))
			continue
		}

		record.Normalize()
		output.Records = append(output.Records, &record)
	}

	slog.DebugContext(ctx, "loaded progression records",
		"world", input.World,
		"count", len(output.Records),
		"corrupted", len(output.Corrupted))

	return output, nil
}

func (r *redisRepository) SaveBatch(ctx context.Context, input SaveBatchInput) (*SaveBatchOutput, error) {
	if input.World == "" {
		return nil, errors.InvalidArgument(errWorldEmpty)
	}
	if len(input.Records) == 0 {
		return &SaveBatchOutput{}, nil
	}

	values := make([]any, 0, len(input.Records)*2)
	for _, record := range input.Records {
		if record == nil {
			return nil, errors.InvalidArgument(errRecordNil)
		}
		data, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal progression record %s", record.PlayerID)
		}
		values = append(values, record.PlayerID.String(), data)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, WorldKey(input.World), values...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save progression records for world %s", input.World)
	}

	return &SaveBatchOutput{Saved: len(input.Records)}, nil
}
