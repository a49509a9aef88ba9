package world

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	"github.com/repoquest/repoquest/internal/pkg/clock"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	worldKeyPrefix    = "world:"
	fullNameKeyPrefix = "world:fullname:"
	worldIndexKey     = "worlds"

	// Error messages
	errWorldNil      = "world cannot be nil"
	errWorldIDEmpty  = "world ID cannot be empty"
	errFullNameEmpty = "full name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis world repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}
	if input.World.FullName == "" {
		return nil, errors.InvalidArgument(errFullNameEmpty)
	}

	// Uniqueness is on the repository, not the generated ID.
	exists, err := r.client.Exists(ctx, fullNameKeyPrefix+input.World.FullName).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("world for %s already exists", input.World.FullName)
	}

	now := r.clock.Now()
	input.World.DiscoveredAt = now
	input.World.LastScrapedAt = now

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, worldKeyPrefix+input.World.ID, data, 0)
	pipe.Set(ctx, fullNameKeyPrefix+input.World.FullName, input.World.ID, 0)
	pipe.SAdd(ctx, worldIndexKey, input.World.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create world")
	}

	return &CreateOutput{World: input.World}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	result, err := r.client.Get(ctx, worldKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get world")
	}

	var w entities.RepoWorld
	if err := json.Unmarshal([]byte(result), &w); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world data")
	}

	return &GetOutput{World: &w}, nil
}

func (r *redisRepository) GetByFullName(
	ctx context.Context,
	input GetByFullNameInput,
) (*GetByFullNameOutput, error) {
	if input.FullName == "" {
		return nil, errors.InvalidArgument(errFullNameEmpty)
	}

	id, err := r.client.Get(ctx, fullNameKeyPrefix+input.FullName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world for %s not found", input.FullName)
		}
		return nil, errors.Wrapf(err, "failed to resolve world for %s", input.FullName)
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return &GetByFullNameOutput{World: out.World}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.World.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.World.ID)
	}

	input.World.LastScrapedAt = r.clock.Now()

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world data")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update world")
	}

	return &UpdateOutput{World: input.World}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, worldIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list worlds")
	}

	worlds := make([]*entities.RepoWorld, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "world missing for index entry, cleaning up",
					"world_id", id)
				r.client.SRem(ctx, worldIndexKey, id)
				continue
			}
			return nil, err
		}
		worlds = append(worlds, out.World)
	}

	return &ListOutput{Worlds: worlds}, nil
}
