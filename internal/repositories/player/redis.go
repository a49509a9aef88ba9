package player

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	"github.com/repoquest/repoquest/internal/pkg/clock"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	playerKeyPrefix  = "player:"
	counterKeyPrefix = "player:counters:"
	playerIndexKey   = "players"

	// Error messages
	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errCounterEmpty  = "counter name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
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

// NewRedis creates a new Redis-backed player repository
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
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	now := r.clock.Now()
	input.Player.CreatedAt = now
	input.Player.UpdatedAt = now

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playerIndexKey, input.Player.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	return &CreateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player data")
	}

	return &GetOutput{Player: &p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.Player.ID)
	}

	input.Player.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Player: input.Player}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}

	players := make([]*entities.Player, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; drop it.
				r.client.SRem(ctx, playerIndexKey, id)
				continue
			}
			return nil, err
		}
		players = append(players, out.Player)
	}

	return &ListOutput{Players: players}, nil
}

func (r *redisRepository) IncrementCounter(
	ctx context.Context,
	input IncrementCounterInput,
) (*IncrementCounterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Counter == "" {
		return nil, errors.InvalidArgument(errCounterEmpty)
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	value, err := r.client.HIncrBy(ctx, counterKeyPrefix+input.PlayerID, input.Counter, delta).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to increment counter %s", input.Counter)
	}

	return &IncrementCounterOutput{Value: value}, nil
}

func (r *redisRepository) GetCounters(ctx context.Context, input GetCountersInput) (*GetCountersOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, counterKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get counters")
	}

	counters := make(map[string]int64, len(raw))
	for name, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt counter %s", name)
		}
		counters[name] = n
	}

	return &GetCountersOutput{Counters: counters}, nil
}
