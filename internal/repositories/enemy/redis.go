package enemy

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	enemyKeyPrefix   = "enemy:"
	worldIndexPrefix = "enemy:world:"

	// Error messages
	errEnemyNil     = "enemy cannot be nil"
	errEnemyIDEmpty = "enemy ID cannot be empty"
	errWorldIDEmpty = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis enemy repository.
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

// NewRedis creates a new Redis-backed enemy repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Enemy == nil {
		return nil, errors.InvalidArgument(errEnemyNil)
	}
	if input.Enemy.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	data, err := json.Marshal(input.Enemy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal enemy data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, enemyKeyPrefix+input.Enemy.ID, data, 0)
	if input.Enemy.WorldID != "" {
		pipe.SAdd(ctx, worldIndexPrefix+input.Enemy.WorldID, input.Enemy.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create enemy")
	}

	return &CreateOutput{Enemy: input.Enemy}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	result, err := r.client.Get(ctx, enemyKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("enemy with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get enemy")
	}

	var e entities.Enemy
	if err := json.Unmarshal([]byte(result), &e); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal enemy data")
	}

	return &GetOutput{Enemy: &e}, nil
}

func (r *redisRepository) ListByWorldID(
	ctx context.Context,
	input ListByWorldIDInput,
) (*ListByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	indexKey := worldIndexPrefix + input.WorldID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read enemy index %s", indexKey)
	}

	enemies := make([]*entities.Enemy, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		enemies = append(enemies, out.Enemy)
	}

	return &ListByWorldIDOutput{Enemies: enemies}, nil
}

func (r *redisRepository) DeleteByWorldID(
	ctx context.Context,
	input DeleteByWorldIDInput,
) (*DeleteByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	indexKey := worldIndexPrefix + input.WorldID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read enemy index %s", indexKey)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, enemyKeyPrefix+id)
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete enemies for world %s", input.WorldID)
	}

	return &DeleteByWorldIDOutput{Deleted: len(ids)}, nil
}
