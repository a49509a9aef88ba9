package item_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
	"github.com/repoquest/repoquest/internal/repositories/item"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      item.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	repo, err := item.NewRedis(&item.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisRepositoryTestSuite) createItem(id string) *entities.Item {
	it := &entities.Item{
		ID:            id,
		Name:          "Neural Sword",
		Rarity:        entities.RarityRare,
		EquipmentType: entities.EquipmentWeapon,
		StatBonuses:   map[string]int{entities.StatAttack: 6},
	}
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: it})
	s.Require().NoError(err)
	return it
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	s.createItem("item_001")

	getOut, err := s.repo.Get(s.ctx, item.GetInput{ID: "item_001"})
	s.Require().NoError(err)
	s.Equal("Neural Sword", getOut.Item.Name)
	s.Equal(entities.RarityRare, getOut.Item.Rarity)
	s.Equal(6, getOut.Item.StatBonuses[entities.StatAttack])
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, item.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestAddToInventoryStacks() {
	s.createItem("item_001")

	out, err := s.repo.AddToInventory(s.ctx, item.AddToInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Quantity)

	out, err = s.repo.AddToInventory(s.ctx, item.AddToInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
		Quantity: 2,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Quantity)

	slots, err := s.repo.CountSlots(s.ctx, item.CountSlotsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(1, slots.Slots)
}

func (s *RedisRepositoryTestSuite) TestRemoveFromInventory() {
	s.createItem("item_001")

	_, err := s.repo.AddToInventory(s.ctx, item.AddToInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
		Quantity: 2,
	})
	s.Require().NoError(err)

	out, err := s.repo.RemoveFromInventory(s.ctx, item.RemoveFromInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Quantity)

	// Removing the last one drops the slot and any equipped flag.
	_, err = s.repo.SetEquipped(s.ctx, item.SetEquippedInput{
		PlayerID: "p1", ItemID: "item_001", Equipped: true,
	})
	s.Require().NoError(err)

	out, err = s.repo.RemoveFromInventory(s.ctx, item.RemoveFromInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
	})
	s.Require().NoError(err)
	s.Zero(out.Quantity)

	slots, err := s.repo.CountSlots(s.ctx, item.CountSlotsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Zero(slots.Slots)
}

func (s *RedisRepositoryTestSuite) TestRemoveFromInventoryNotHeld() {
	s.createItem("item_001")

	_, err := s.repo.RemoveFromInventory(s.ctx, item.RemoveFromInventoryInput{
		PlayerID: "p1",
		ItemID:   "item_001",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListInventory() {
	s.createItem("item_001")
	ring := &entities.Item{
		ID:            "item_002",
		Name:          "Server Ring",
		Rarity:        entities.RarityUncommon,
		EquipmentType: entities.EquipmentRing,
		StatBonuses:   map[string]int{entities.StatLuck: 2},
	}
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: ring})
	s.Require().NoError(err)

	for _, id := range []string{"item_001", "item_002"} {
		_, err := s.repo.AddToInventory(s.ctx, item.AddToInventoryInput{
			PlayerID: "p1",
			ItemID:   id,
		})
		s.Require().NoError(err)
	}
	_, err = s.repo.SetEquipped(s.ctx, item.SetEquippedInput{
		PlayerID: "p1", ItemID: "item_001", Equipped: true,
	})
	s.Require().NoError(err)

	listOut, err := s.repo.ListInventory(s.ctx, item.ListInventoryInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().Len(listOut.Items, 2)

	byID := map[string]*item.OwnedItem{}
	for _, owned := range listOut.Items {
		byID[owned.Item.ID] = owned
	}
	s.True(byID["item_001"].Equipped)
	s.False(byID["item_002"].Equipped)
	s.Equal(1, byID["item_002"].Quantity)
}

func (s *RedisRepositoryTestSuite) TestSetEquippedNotHeld() {
	_, err := s.repo.SetEquipped(s.ctx, item.SetEquippedInput{
		PlayerID: "p1", ItemID: "ghost", Equipped: true,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListInventoryEmpty() {
	listOut, err := s.repo.ListInventory(s.ctx, item.ListInventoryInput{PlayerID: "fresh"})
	s.Require().NoError(err)
	s.Empty(listOut.Items)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
