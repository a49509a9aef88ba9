package quest

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	questKeyPrefix   = "quest:"
	worldIndexPrefix = "quest:world:"

	// Error messages
	errQuestNil     = "quest cannot be nil"
	errQuestIDEmpty = "quest ID cannot be empty"
	errWorldIDEmpty = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis quest repository.
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

// NewRedis creates a new Redis-backed quest repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Quest == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if input.Quest.ID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}
	if input.Quest.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	if input.Quest.Status == "" {
		input.Quest.Status = entities.QuestStatusNew
	}

	data, err := json.Marshal(input.Quest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal quest data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, questKeyPrefix+input.Quest.ID, data, 0)
	pipe.SAdd(ctx, worldIndexPrefix+input.Quest.WorldID, input.Quest.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create quest")
	}

	return &CreateOutput{Quest: input.Quest}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	result, err := r.client.Get(ctx, questKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("quest with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get quest")
	}

	var q entities.Quest
	if err := json.Unmarshal([]byte(result), &q); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal quest data")
	}

	return &GetOutput{Quest: &q}, nil
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
		return nil, errors.Wrapf(err, "failed to read quest index %s", indexKey)
	}

	quests := make([]*entities.Quest, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		quests = append(quests, out.Quest)
	}

	return &ListByWorldIDOutput{Quests: quests}, nil
}

func (r *redisRepository) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	out, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	q := out.Quest
	if !q.Status.CanTransitionTo(input.Status) {
		return nil, errors.FailedPreconditionf(
			"quest %s cannot move from %s to %s", q.ID, q.Status, input.Status)
	}
	q.Status = input.Status

	data, err := json.Marshal(q)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal quest data")
	}
	if err := r.client.Set(ctx, questKeyPrefix+q.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update quest status")
	}

	return &UpdateStatusOutput{Quest: q}, nil
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
		return nil, errors.Wrapf(err, "failed to read quest index %s", indexKey)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, questKeyPrefix+id)
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete quests for world %s", input.WorldID)
	}

	return &DeleteByWorldIDOutput{Deleted: len(ids)}, nil
}
