package room

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	roomKeyPrefix    = "room:"
	worldIndexPrefix = "room:world:"

	// Error messages
	errRoomNil      = "room cannot be nil"
	errRoomIDEmpty  = "room ID cannot be empty"
	errWorldIDEmpty = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis room repository.
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

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) CreateBatch(ctx context.Context, input CreateBatchInput) (*CreateBatchOutput, error) {
	if len(input.Rooms) == 0 {
		return &CreateBatchOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, room := range input.Rooms {
		if room == nil {
			return nil, errors.InvalidArgument(errRoomNil)
		}
		if room.ID == "" {
			return nil, errors.InvalidArgument(errRoomIDEmpty)
		}
		if room.WorldID == "" {
			return nil, errors.InvalidArgument(errWorldIDEmpty)
		}

		data, err := json.Marshal(room)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal room data")
		}

		pipe.Set(ctx, roomKeyPrefix+room.ID, data, 0)
		pipe.SAdd(ctx, worldIndexPrefix+room.WorldID, room.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store rooms")
	}

	return &CreateBatchOutput{Created: len(input.Rooms)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRoomIDEmpty)
	}

	result, err := r.client.Get(ctx, roomKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("room with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get room")
	}

	var room entities.DungeonRoom
	if err := json.Unmarshal([]byte(result), &room); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal room data")
	}

	return &GetOutput{Room: &room}, nil
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
		return nil, errors.Wrapf(err, "failed to read room index %s", indexKey)
	}

	rooms := make([]*entities.DungeonRoom, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		rooms = append(rooms, out.Room)
	}

	return &ListByWorldIDOutput{Rooms: rooms}, nil
}

func (r *redisRepository) MarkVisited(ctx context.Context, input MarkVisitedInput) (*MarkVisitedOutput, error) {
	out, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	room := out.Room
	if room.Visited {
		// Visited only flips once; repeat victories are a no-op.
		return &MarkVisitedOutput{Room: room}, nil
	}
	room.Visited = true

	data, err := json.Marshal(room)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal room data")
	}
	if err := r.client.Set(ctx, roomKeyPrefix+room.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to mark room visited")
	}

	return &MarkVisitedOutput{Room: room}, nil
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
		return nil, errors.Wrapf(err, "failed to read room index %s", indexKey)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, roomKeyPrefix+id)
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete rooms for world %s", input.WorldID)
	}

	return &DeleteByWorldIDOutput{Deleted: len(ids)}, nil
}
