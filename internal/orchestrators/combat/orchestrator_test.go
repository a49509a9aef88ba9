package combat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	"github.com/repoquest/repoquest/internal/orchestrators/combat"
	"github.com/repoquest/repoquest/internal/pkg/clock"
	"github.com/repoquest/repoquest/internal/pkg/idgen"
	"github.com/repoquest/repoquest/internal/pkg/rng"
	redisclient "github.com/repoquest/repoquest/internal/redis"
	itemrepo "github.com/repoquest/repoquest/internal/repositories/item"
	playerrepo "github.com/repoquest/repoquest/internal/repositories/player"
	questrepo "github.com/repoquest/repoquest/internal/repositories/quest"
	roomrepo "github.com/repoquest/repoquest/internal/repositories/room"
)

type OrchestratorTestSuite struct {
	suite.Suite
	miniRedis  *miniredis.Miniredis
	client     redisclient.Client
	playerRepo playerrepo.Repository
	itemRepo   itemrepo.Repository
	roomRepo   roomrepo.Repository
	questRepo  questrepo.Repository
	svc        combat.Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})
	s.ctx = context.Background()

	playerRepo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.playerRepo = playerRepo

	s.itemRepo, err = itemrepo.NewRedis(&itemrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.roomRepo, err = roomrepo.NewRedis(&roomrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.questRepo, err = questrepo.NewRedis(&questrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	svc, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo:  s.playerRepo,
		ItemRepo:    s.itemRepo,
		RoomRepo:    s.roomRepo,
		QuestRepo:   s.questRepo,
		IDGenerator: idgen.NewSequential("item"),
		Random:      rng.New(99),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *OrchestratorTestSuite) createPlayer(id string) *entities.Player {
	p := entities.NewPlayer(id, "octocat")
	_, err := s.playerRepo.Create(s.ctx, playerrepo.CreateInput{Player: p})
	s.Require().NoError(err)
	return p
}

// weakEnemy dies to any single hit and cannot meaningfully hurt the player.
func weakEnemy(name string) *entities.Enemy {
	return &entities.Enemy{
		ID:    "enemy_" + name,
		Name:  name,
		Level: 2,
		HP:    1,
	}
}

func (s *OrchestratorTestSuite) TestAttackVictory() {
	s.createPlayer("p1")

	out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID:    "p1",
		Enemy:       weakEnemy("Null Pointer"),
		Action:      combat.ActionAttack,
		LootQuality: 2,
	})
	s.Require().NoError(err)

	s.Equal(combat.OutcomeVictory, out.Outcome)
	s.Equal(20, out.XPGained)
	s.Equal(20, out.Player.XP)
	s.LessOrEqual(out.Enemy.HP, 0)
	s.Contains(out.Messages[0], "You attack Null Pointer")
	s.Contains(out.Messages[1], "You defeated Null Pointer!")

	// XP and counters survive the turn.
	getOut, err := s.playerRepo.Get(s.ctx, playerrepo.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(20, getOut.Player.XP)

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(1), counters.Counters[playerrepo.CounterEnemiesDefeated])
	s.Equal(int64(20), counters.Counters[playerrepo.CounterTotalXPEarned])
	s.Zero(counters.Counters[playerrepo.CounterBossesDefeated])
}

func (s *OrchestratorTestSuite) TestBossVictoryPaysTriple() {
	s.createPlayer("p1")
	boss := weakEnemy("PR #17")
	boss.IsBoss = true

	out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    boss,
		Action:   combat.ActionAttack,
	})
	s.Require().NoError(err)

	s.Equal(combat.OutcomeVictory, out.Outcome)
	s.Equal(60, out.XPGained)

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(1), counters.Counters[playerrepo.CounterBossesDefeated])
}

func (s *OrchestratorTestSuite) TestVictoryClearsRoomAndQuest() {
	s.createPlayer("p1")

	_, err := s.roomRepo.CreateBatch(s.ctx, roomrepo.CreateBatchInput{
		Rooms: []*entities.DungeonRoom{{
			ID:          "room_1",
			WorldID:     "world_1",
			ZoneName:    "src",
			FilePath:    "src/main.py",
			DangerLevel: 3,
			LootQuality: 2,
		}},
	})
	s.Require().NoError(err)

	_, err = s.questRepo.Create(s.ctx, questrepo.CreateInput{
		Quest: &entities.Quest{
			ID:           "quest_1",
			WorldID:      "world_1",
			SourceType:   entities.QuestSourceIssue,
			SourceNumber: 12,
			Title:        "Fix the login bug",
			Difficulty:   5,
		},
	})
	s.Require().NoError(err)

	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID:    "p1",
		Enemy:       weakEnemy("Login Bug"),
		Action:      combat.ActionAttack,
		LootQuality: 2,
		RoomID:      "room_1",
		QuestID:     "quest_1",
	})
	s.Require().NoError(err)

	roomOut, err := s.roomRepo.Get(s.ctx, roomrepo.GetInput{ID: "room_1"})
	s.Require().NoError(err)
	s.True(roomOut.Room.Visited)

	questOut, err := s.questRepo.Get(s.ctx, questrepo.GetInput{ID: "quest_1"})
	s.Require().NoError(err)
	s.Equal(entities.QuestStatusCompleted, questOut.Quest.Status)

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(1), counters.Counters[playerrepo.CounterRoomsCleared])
	s.Equal(int64(1), counters.Counters[playerrepo.CounterQuestsCompleted])

	// Beating another enemy against the already completed quest is fine and
	// doesn't double-count.
	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    weakEnemy("Regression"),
		Action:   combat.ActionAttack,
		RoomID:   "room_1",
		QuestID:  "quest_1",
	})
	s.Require().NoError(err)

	counters, err = s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(1), counters.Counters[playerrepo.CounterQuestsCompleted])
}

func (s *OrchestratorTestSuite) TestLootDropsOverManyVictories() {
	player := s.createPlayer("p1")

	// The drop gate is probabilistic, so grind through enough victories that
	// at least one drop is certain for the fixed seed.
	dropped := 0
	for i := 0; i < 100; i++ {
		out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
			PlayerID:    "p1",
			Enemy:       weakEnemy("Fodder"),
			Action:      combat.ActionAttack,
			LootQuality: 6,
		})
		s.Require().NoError(err)
		s.Require().Equal(combat.OutcomeVictory, out.Outcome)
		if out.Loot != nil {
			dropped++
			s.Equal(entities.RarityLegendary, out.Loot.Rarity)
			s.NotEmpty(out.Loot.ID)
		}
	}
	s.Positive(dropped)

	inv, err := s.itemRepo.ListInventory(s.ctx, itemrepo.ListInventoryInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.NotEmpty(inv.Items)
	s.LessOrEqual(len(inv.Items), player.InventoryCapacity())

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(dropped), counters.Counters[playerrepo.CounterItemsCollected])
}

func (s *OrchestratorTestSuite) TestLootLostWhenInventoryFull() {
	player := s.createPlayer("p1")

	// Fill every slot up front.
	for i := 0; i < player.InventoryCapacity(); i++ {
		item := &entities.Item{ID: idgen.NewPrefixed("junk").Generate(), Name: "Code Ring"}
		_, err := s.itemRepo.Create(s.ctx, itemrepo.CreateInput{Item: item})
		s.Require().NoError(err)
		_, err = s.itemRepo.AddToInventory(s.ctx, itemrepo.AddToInventoryInput{
			PlayerID: "p1",
			ItemID:   item.ID,
		})
		s.Require().NoError(err)
	}

	sawLost := false
	for i := 0; i < 100; i++ {
		out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
			PlayerID:    "p1",
			Enemy:       weakEnemy("Fodder"),
			Action:      combat.ActionAttack,
			LootQuality: 6,
		})
		s.Require().NoError(err)
		s.Nil(out.Loot)
		for _, msg := range out.Messages {
			if strings.Contains(msg, "inventory is full") {
				sawLost = true
			}
		}
	}
	s.True(sawLost)

	slots, err := s.itemRepo.CountSlots(s.ctx, itemrepo.CountSlotsInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(player.InventoryCapacity(), slots.Slots)

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Zero(counters.Counters[playerrepo.CounterItemsCollected])
}

func (s *OrchestratorTestSuite) TestDefeat() {
	s.createPlayer("p1")

	enemy := &entities.Enemy{
		ID:     "enemy_crusher",
		Name:   "The Crusher",
		Level:  10,
		HP:     10000,
		Attack: 1000,
	}

	out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    enemy,
		Action:   combat.ActionAttack,
	})
	s.Require().NoError(err)

	s.Equal(combat.OutcomeDefeat, out.Outcome)
	s.Zero(out.XPLost) // a fresh player has no XP to lose
	s.Equal(out.Player.MaxHP()/2, out.Player.HP)
	s.Contains(out.Messages[len(out.Messages)-1], "You have been defeated!")

	getOut, err := s.playerRepo.Get(s.ctx, playerrepo.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(getOut.Player.MaxHP()/2, getOut.Player.HP)

	counters, err := s.playerRepo.GetCounters(s.ctx, playerrepo.GetCountersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(1), counters.Counters[playerrepo.CounterBattlesLost])
}

func (s *OrchestratorTestSuite) TestDefendHalvesIncomingDamage() {
	player := s.createPlayer("p1")

	// Attack 10 against doubled defense 10 leaves base damage 5; against the
	// plain defense 5 it would be 8 before variance.
	enemy := &entities.Enemy{
		ID:     "enemy_wall",
		Name:   "The Wall",
		Level:  3,
		HP:     1000,
		Attack: 10,
	}

	out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    enemy,
		Action:   combat.ActionDefend,
	})
	s.Require().NoError(err)

	s.Equal(combat.OutcomeOngoing, out.Outcome)
	taken := player.HP - out.Player.HP
	s.GreaterOrEqual(taken, 3)
	s.LessOrEqual(taken, 7)
	s.Equal(1000, out.Enemy.HP)
}

func (s *OrchestratorTestSuite) TestFlee() {
	s.createPlayer("p1")

	enemy := &entities.Enemy{
		ID:    "enemy_slow",
		Name:  "Tech Debt",
		Level: 1,
		HP:    1000,
	}

	fled, caught := 0, 0
	for i := 0; i < 60; i++ {
		out, err := s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
			PlayerID: "p1",
			Enemy:    enemy,
			Action:   combat.ActionFlee,
		})
		s.Require().NoError(err)

		switch out.Outcome {
		case combat.OutcomeFled:
			fled++
			s.Contains(out.Messages[len(out.Messages)-1], "successfully fled")
		case combat.OutcomeOngoing:
			caught++
			s.Contains(out.Messages, "You couldn't escape!")
		default:
			s.Failf("unexpected outcome", "outcome %s", out.Outcome)
		}

		// Top the player back up so the weak counterattacks never add up to
		// a defeat across iterations.
		_, err = s.svc.RestorePlayerHP(s.ctx, &combat.RestorePlayerHPInput{PlayerID: "p1"})
		s.Require().NoError(err)
	}

	s.Positive(fled)
	s.Positive(caught)
}

func (s *OrchestratorTestSuite) TestExecuteTurnValidation() {
	_, err := s.svc.ExecuteTurn(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{Enemy: weakEnemy("x")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{PlayerID: "p1"})
	s.True(errors.IsInvalidArgument(err))

	s.createPlayer("p1")
	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    weakEnemy("x"),
		Action:   combat.Action("dance"),
	})
	s.True(errors.IsInvalidArgument(err))

	dead := weakEnemy("x")
	dead.HP = 0
	_, err = s.svc.ExecuteTurn(s.ctx, &combat.ExecuteTurnInput{
		PlayerID: "p1",
		Enemy:    dead,
		Action:   combat.ActionAttack,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRestorePlayerHP() {
	player := s.createPlayer("p1")
	player.HP = 12
	_, err := s.playerRepo.Update(s.ctx, playerrepo.UpdateInput{Player: player})
	s.Require().NoError(err)

	out, err := s.svc.RestorePlayerHP(s.ctx, &combat.RestorePlayerHPInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(out.Player.MaxHP(), out.Player.HP)

	getOut, err := s.playerRepo.Get(s.ctx, playerrepo.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(getOut.Player.MaxHP(), getOut.Player.HP)
}

func (s *OrchestratorTestSuite) addItem(playerID string, item *entities.Item) {
	_, err := s.itemRepo.Create(s.ctx, itemrepo.CreateInput{Item: item})
	s.Require().NoError(err)
	_, err = s.itemRepo.AddToInventory(s.ctx, itemrepo.AddToInventoryInput{
		PlayerID: playerID,
		ItemID:   item.ID,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) equippedIDs(playerID string) map[string]bool {
	inv, err := s.itemRepo.ListInventory(s.ctx, itemrepo.ListInventoryInput{PlayerID: playerID})
	s.Require().NoError(err)

	equipped := make(map[string]bool)
	for _, owned := range inv.Items {
		if owned.Equipped {
			equipped[owned.Item.ID] = true
		}
	}
	return equipped
}

func (s *OrchestratorTestSuite) TestEquipItemDisplacesSameSlot() {
	s.createPlayer("p1")
	s.addItem("p1", &entities.Item{ID: "item_sword_a", Name: "Code Sword", EquipmentType: entities.EquipmentWeapon})
	s.addItem("p1", &entities.Item{ID: "item_sword_b", Name: "Neural Sword", EquipmentType: entities.EquipmentWeapon})
	s.addItem("p1", &entities.Item{ID: "item_shield", Name: "Web Shield", EquipmentType: entities.EquipmentShield})

	_, err := s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_sword_a"})
	s.Require().NoError(err)
	_, err = s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_shield"})
	s.Require().NoError(err)

	s.Equal(map[string]bool{"item_sword_a": true, "item_shield": true}, s.equippedIDs("p1"))

	// Equipping the second sword displaces the first but leaves the shield.
	_, err = s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_sword_b"})
	s.Require().NoError(err)

	s.Equal(map[string]bool{"item_sword_b": true, "item_shield": true}, s.equippedIDs("p1"))
}

func (s *OrchestratorTestSuite) TestEquipItemWithoutSlot() {
	s.createPlayer("p1")
	s.addItem("p1", &entities.Item{ID: "item_sword", Name: "Code Sword", EquipmentType: entities.EquipmentWeapon})
	s.addItem("p1", &entities.Item{ID: "item_charm", Name: "Lucky Charm"})

	_, err := s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_sword"})
	s.Require().NoError(err)
	_, err = s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_charm"})
	s.Require().NoError(err)

	s.Equal(map[string]bool{"item_sword": true, "item_charm": true}, s.equippedIDs("p1"))
}

func (s *OrchestratorTestSuite) TestEquipItemNotHeld() {
	s.createPlayer("p1")
	_, err := s.itemRepo.Create(s.ctx, itemrepo.CreateInput{
		Item: &entities.Item{ID: "item_sword", Name: "Code Sword", EquipmentType: entities.EquipmentWeapon},
	})
	s.Require().NoError(err)

	_, err = s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_sword"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUnequipItem() {
	s.createPlayer("p1")
	s.addItem("p1", &entities.Item{ID: "item_sword", Name: "Code Sword", EquipmentType: entities.EquipmentWeapon})

	_, err := s.svc.EquipItem(s.ctx, &combat.EquipItemInput{PlayerID: "p1", ItemID: "item_sword"})
	s.Require().NoError(err)
	_, err = s.svc.UnequipItem(s.ctx, &combat.UnequipItemInput{PlayerID: "p1", ItemID: "item_sword"})
	s.Require().NoError(err)

	s.Empty(s.equippedIDs("p1"))
}

func (s *OrchestratorTestSuite) TestConfigValidate() {
	_, err := combat.NewOrchestrator(&combat.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
