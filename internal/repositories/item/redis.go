package item

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
)

const (
	itemKeyPrefix      = "item:"
	inventoryKeyPrefix = "inventory:"
	equippedKeyPrefix  = "inventory:equipped:"

	// Error messages
	errItemNil       = "item cannot be nil"
	errItemIDEmpty   = "item ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis item repository.
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

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item data")
	}

	if err := r.client.Set(ctx, itemKeyPrefix+input.Item.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, itemKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var it entities.Item
	if err := json.Unmarshal([]byte(result), &it); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item data")
	}

	return &GetOutput{Item: &it}, nil
}

func (r *redisRepository) AddToInventory(
	ctx context.Context,
	input AddToInventoryInput,
) (*AddToInventoryOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	total, err := r.client.HIncrBy(ctx, inventoryKeyPrefix+input.PlayerID, input.ItemID, int64(qty)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add item to inventory")
	}

	return &AddToInventoryOutput{Quantity: int(total)}, nil
}

func (r *redisRepository) RemoveFromInventory(
	ctx context.Context,
	input RemoveFromInventoryInput,
) (*RemoveFromInventoryOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	invKey := inventoryKeyPrefix + input.PlayerID

	held, err := r.client.HExists(ctx, invKey, input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check inventory")
	}
	if !held {
		return nil, errors.NotFoundf("player %s does not hold item %s", input.PlayerID, input.ItemID)
	}

	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	total, err := r.client.HIncrBy(ctx, invKey, input.ItemID, int64(-qty)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove item from inventory")
	}

	if total <= 0 {
		pipe := r.client.TxPipeline()
		pipe.HDel(ctx, invKey, input.ItemID)
		pipe.SRem(ctx, equippedKeyPrefix+input.PlayerID, input.ItemID)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to clear inventory slot")
		}
		total = 0
	}

	return &RemoveFromInventoryOutput{Quantity: int(total)}, nil
}

func (r *redisRepository) ListInventory(
	ctx context.Context,
	input ListInventoryInput,
) (*ListInventoryOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, inventoryKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory")
	}

	equippedIDs, err := r.client.SMembers(ctx, equippedKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read equipped set")
	}
	equipped := make(map[string]bool, len(equippedIDs))
	for _, id := range equippedIDs {
		equipped[id] = true
	}

	items := make([]*OwnedItem, 0, len(raw))
	for itemID, qtyStr := range raw {
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt inventory quantity for item %s", itemID)
		}

		out, err := r.Get(ctx, GetInput{ID: itemID})
		if err != nil {
			if errors.IsNotFound(err) {
				// Item record is gone; drop the orphaned slot.
				r.client.HDel(ctx, inventoryKeyPrefix+input.PlayerID, itemID)
				continue
			}
			return nil, err
		}

		items = append(items, &OwnedItem{
			Item:     out.Item,
			Quantity: qty,
			Equipped: equipped[itemID],
		})
	}

	return &ListInventoryOutput{Items: items}, nil
}

func (r *redisRepository) CountSlots(ctx context.Context, input CountSlotsInput) (*CountSlotsOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := r.client.HLen(ctx, inventoryKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count inventory slots")
	}

	return &CountSlotsOutput{Slots: int(n)}, nil
}

func (r *redisRepository) SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	held, err := r.client.HExists(ctx, inventoryKeyPrefix+input.PlayerID, input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check inventory")
	}
	if !held {
		return nil, errors.NotFoundf("player %s does not hold item %s", input.PlayerID, input.ItemID)
	}

	equippedKey := equippedKeyPrefix + input.PlayerID
	if input.Equipped {
		err = r.client.SAdd(ctx, equippedKey, input.ItemID).Err()
	} else {
		err = r.client.SRem(ctx, equippedKey, input.ItemID).Err()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update equipped set")
	}

	return &SetEquippedOutput{}, nil
}
