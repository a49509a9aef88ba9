// Package combat implements the combat orchestrator: turn resolution against
// an enemy, victory and defeat handling, loot, and equipment changes.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/repoquest/repoquest/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	"github.com/repoquest/repoquest/internal/pkg/idgen"
	"github.com/repoquest/repoquest/internal/pkg/rng"
	itemrepo "github.com/repoquest/repoquest/internal/repositories/item"
	playerrepo "github.com/repoquest/repoquest/internal/repositories/player"
	questrepo "github.com/repoquest/repoquest/internal/repositories/quest"
	roomrepo "github.com/repoquest/repoquest/internal/repositories/room"
)

// Action is the player's choice for one combat turn.
type Action string

// Combat actions.
const (
	ActionAttack Action = "attack"
	ActionDefend Action = "defend"
	ActionFlee   Action = "flee"
)

// Outcome is the state of the battle after a turn.
type Outcome string

// Turn outcomes.
const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFled    Outcome = "fled"
)

// Service defines the interface for combat operations
type Service interface {
	// ExecuteTurn resolves one combat turn and applies its consequences
	ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error)

	// RestorePlayerHP heals the player to full before entering combat
	RestorePlayerHP(ctx context.Context, input *RestorePlayerHPInput) (*RestorePlayerHPOutput, error)

	// EquipItem equips an item, displacing any equipped item in the same slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// UnequipItem removes an item's equipped flag
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
}

// ExecuteTurnInput defines the input for one combat turn. Enemy carries the
// battle's running enemy state; the caller keeps it between turns. RoomID and
// QuestID are optional and tie a victory back to the room or quest it clears.
type ExecuteTurnInput struct {
	PlayerID    string
	Enemy       *entities.Enemy
	Action      Action
	LootQuality int
	RoomID      string
	QuestID     string
}

// ExecuteTurnOutput defines the output for one combat turn
type ExecuteTurnOutput struct {
	Player    *entities.Player
	Enemy     *entities.Enemy
	Outcome   Outcome
	Messages  []string
	XPGained  int
	XPLost    int
	LeveledUp bool
	Loot      *entities.Item
}

// RestorePlayerHPInput defines the input for the pre-combat heal
type RestorePlayerHPInput struct {
	PlayerID string
}

// RestorePlayerHPOutput defines the output for the pre-combat heal
type RestorePlayerHPOutput struct {
	Player *entities.Player
}

// EquipItemInput defines the input for equipping an item
type EquipItemInput struct {
	PlayerID string
	ItemID   string
}

// EquipItemOutput defines the output for equipping an item
type EquipItemOutput struct {
	// Empty for now, can be extended later
}

// UnequipItemInput defines the input for unequipping an item
type UnequipItemInput struct {
	PlayerID string
	ItemID   string
}

// UnequipItemOutput defines the output for unequipping an item
type UnequipItemOutput struct {
	// Empty for now, can be extended later
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	ItemRepo    itemrepo.Repository
	RoomRepo    roomrepo.Repository
	QuestRepo   questrepo.Repository
	IDGenerator idgen.Generator

	// Random overrides the combat roll source, seeded in tests only.
	Random *rng.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.QuestRepo == nil {
		vb.RequiredField("QuestRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	itemRepo   itemrepo.Repository
	roomRepo   roomrepo.Repository
	questRepo  questrepo.Repository
	idGen      idgen.Generator
	random     *rng.Source
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	random := cfg.Random
	if random == nil {
		random = rng.NewRandom()
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		itemRepo:   cfg.ItemRepo,
		roomRepo:   cfg.RoomRepo,
		questRepo:  cfg.QuestRepo,
		idGen:      cfg.IDGenerator,
		random:     random,
	}, nil
}

func (o *orchestrator) ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Enemy == nil {
		return nil, errors.InvalidArgument("enemy cannot be nil")
	}
	if input.Enemy.HP <= 0 {
		return nil, errors.FailedPreconditionf("%s is already defeated", input.Enemy.Name)
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	player := playerOut.Player
	enemy := input.Enemy

	out := &ExecuteTurnOutput{
		Player:  player,
		Enemy:   enemy,
		Outcome: OutcomeOngoing,
	}

	switch input.Action {
	case ActionAttack:
		damage := calculateDamage(player.Attack, enemy.Defense, o.random)
		enemy.HP -= damage
		out.Messages = append(out.Messages, fmt.Sprintf("You attack %s for %d damage!", enemy.Name, damage))

		if enemy.HP <= 0 {
			out.Messages = append(out.Messages, fmt.Sprintf("You defeated %s!", enemy.Name))
			out.Outcome = OutcomeVictory
			break
		}
		o.enemyStrikes(player, enemy, player.Defense, out)

	case ActionDefend:
		// Defending doubles the effective defense for the counterattack.
		o.enemyStrikes(player, enemy, player.Defense*2, out)
		if out.Outcome == OutcomeOngoing {
			out.Messages = append(out.Messages, "You brace behind your guard.")
		}

	case ActionFlee:
		out.Messages = append(out.Messages, "You attempt to flee...")
		if o.random.Float64() < fleeChance {
			out.Messages = append(out.Messages, "You successfully fled from battle!")
			out.Outcome = OutcomeFled
			break
		}
		out.Messages = append(out.Messages, "You couldn't escape!")
		o.enemyStrikes(player, enemy, player.Defense, out)

	default:
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	switch out.Outcome {
	case OutcomeVictory:
		if err := o.handleVictory(ctx, input, player, enemy, out); err != nil {
			return nil, err
		}
	case OutcomeDefeat:
		out.XPLost = applyDefeatPenalty(player)
		if _, err := o.playerRepo.IncrementCounter(ctx, playerrepo.IncrementCounterInput{
			PlayerID: player.ID,
			Counter:  playerrepo.CounterBattlesLost,
		}); err != nil {
			return nil, err
		}
		if _, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: player}); err != nil {
			return nil, err
		}
	default:
		// HP changes during an ongoing battle persist too.
		if _, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: player}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// enemyStrikes resolves the enemy's counterattack against the given
// effective defense, flipping the outcome to defeat when the player drops.
func (o *orchestrator) enemyStrikes(player *entities.Player, enemy *entities.Enemy, defense int, out *ExecuteTurnOutput) {
	damage := calculateDamage(enemy.Attack, defense, o.random)
	player.HP -= damage
	out.Messages = append(out.Messages, fmt.Sprintf("%s attacks you for %d damage!", enemy.Name, damage))

	if player.HP <= 0 {
		out.Messages = append(out.Messages, "You have been defeated!")
		out.Outcome = OutcomeDefeat
	}
}

func (o *orchestrator) handleVictory(
	ctx context.Context,
	input *ExecuteTurnInput,
	player *entities.Player,
	enemy *entities.Enemy,
	out *ExecuteTurnOutput,
) error {
	xp := xpReward(enemy)
	out.XPGained = xp
	out.LeveledUp = awardXP(player, xp)
	if out.LeveledUp {
		out.Messages = append(out.Messages, fmt.Sprintf("You reached level %d!", player.Level))
	}

	counters := []playerrepo.IncrementCounterInput{
		{PlayerID: player.ID, Counter: playerrepo.CounterEnemiesDefeated},
		{PlayerID: player.ID, Counter: playerrepo.CounterTotalXPEarned, Delta: int64(xp)},
	}
	if enemy.IsBoss {
		counters = append(counters, playerrepo.IncrementCounterInput{
			PlayerID: player.ID, Counter: playerrepo.CounterBossesDefeated,
		})
	}

	if o.random.Float64() < lootDropChance {
		if err := o.grantLoot(ctx, player, enemy, input.LootQuality, out); err != nil {
			return err
		}
		if out.Loot != nil {
			counters = append(counters, playerrepo.IncrementCounterInput{
				PlayerID: player.ID, Counter: playerrepo.CounterItemsCollected,
			})
		}
	}

	if input.RoomID != "" {
		if _, err := o.roomRepo.MarkVisited(ctx, roomrepo.MarkVisitedInput{ID: input.RoomID}); err != nil {
			return err
		}
		counters = append(counters, playerrepo.IncrementCounterInput{
			PlayerID: player.ID, Counter: playerrepo.CounterRoomsCleared,
		})
	}

	if input.QuestID != "" {
		if _, err := o.questRepo.UpdateStatus(ctx, questrepo.UpdateStatusInput{
			ID:     input.QuestID,
			Status: entities.QuestStatusCompleted,
		}); err != nil && !errors.IsFailedPrecondition(err) {
			return err
		} else if err == nil {
			counters = append(counters, playerrepo.IncrementCounterInput{
				PlayerID: player.ID, Counter: playerrepo.CounterQuestsCompleted,
			})
		}
	}

	for _, c := range counters {
		if _, err := o.playerRepo.IncrementCounter(ctx, c); err != nil {
			return err
		}
	}

	if _, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: player}); err != nil {
		return err
	}
	return nil
}

// grantLoot rolls an item and stores it, unless the player's inventory is
// already at capacity, in which case the drop is silently lost.
func (o *orchestrator) grantLoot(
	ctx context.Context,
	player *entities.Player,
	enemy *entities.Enemy,
	lootQuality int,
	out *ExecuteTurnOutput,
) error {
	if lootQuality < entities.MinLootQuality {
		lootQuality = entities.MinLootQuality
	}

	slots, err := o.itemRepo.CountSlots(ctx, itemrepo.CountSlotsInput{PlayerID: player.ID})
	if err != nil {
		return err
	}
	if slots.Slots >= player.InventoryCapacity() {
		slog.WarnContext(ctx, "inventory full, loot lost",
			"player_id", player.ID,
			"capacity", player.InventoryCapacity())
		out.Messages = append(out.Messages, "Your inventory is full! The loot is lost.")
		return nil
	}

	loot := generateLoot(enemy, lootQuality, o.random)
	loot.ID = o.idGen.Generate()

	if _, err := o.itemRepo.Create(ctx, itemrepo.CreateInput{Item: loot}); err != nil {
		return err
	}
	if _, err := o.itemRepo.AddToInventory(ctx, itemrepo.AddToInventoryInput{
		PlayerID: player.ID,
		ItemID:   loot.ID,
	}); err != nil {
		return err
	}

	out.Loot = loot
	out.Messages = append(out.Messages, fmt.Sprintf("%s dropped %s (%s)!", enemy.Name, loot.Name, loot.Rarity))
	return nil
}

func (o *orchestrator) RestorePlayerHP(ctx context.Context, input *RestorePlayerHPInput) (*RestorePlayerHPOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	playerOut, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	player := playerOut.Player

	if player.HP < player.MaxHP() {
		player.HP = player.MaxHP()
		if _, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: player}); err != nil {
			return nil, err
		}
	}

	return &RestorePlayerHPOutput{Player: player}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil || input.PlayerID == "" || input.ItemID == "" {
		return nil, errors.InvalidArgument("player ID and item ID are required")
	}

	itemOut, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}

	// One equipped item per slot. Items with no equipment type are equipped
	// as-is without displacing anything.
	if slot := itemOut.Item.EquipmentType; slot != "" {
		inv, err := o.itemRepo.ListInventory(ctx, itemrepo.ListInventoryInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, err
		}
		for _, owned := range inv.Items {
			if !owned.Equipped || owned.Item.ID == input.ItemID || owned.Item.EquipmentType != slot {
				continue
			}
			if _, err := o.itemRepo.SetEquipped(ctx, itemrepo.SetEquippedInput{
				PlayerID: input.PlayerID,
				ItemID:   owned.Item.ID,
				Equipped: false,
			}); err != nil {
				return nil, err
			}
		}
	}

	if _, err := o.itemRepo.SetEquipped(ctx, itemrepo.SetEquippedInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
		Equipped: true,
	}); err != nil {
		return nil, err
	}

	return &EquipItemOutput{}, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil || input.PlayerID == "" || input.ItemID == "" {
		return nil, errors.InvalidArgument("player ID and item ID are required")
	}

	if _, err := o.itemRepo.SetEquipped(ctx, itemrepo.SetEquippedInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
		Equipped: false,
	}); err != nil {
		return nil, err
	}

	return &UnequipItemOutput{}, nil
}
