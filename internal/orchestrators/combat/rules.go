package combat

import (
	"fmt"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/pkg/rng"
)

// Loot tuning.
const (
	lootDropChance = 0.2
	fleeChance     = 0.7
	bossXPFactor   = 3
)

var (
	lootStats = []string{
		entities.StatHP,
		entities.StatAttack,
		entities.StatDefense,
		entities.StatSpeed,
		entities.StatLuck,
	}

	lootItemTypes = []string{"Sword", "Shield", "Armor", "Ring", "Amulet", "Boots"}

	lootEquipmentTypes = map[string]entities.EquipmentType{
		"Sword":  entities.EquipmentWeapon,
		"Shield": entities.EquipmentShield,
		"Armor":  entities.EquipmentArmor,
		"Ring":   entities.EquipmentRing,
		"Amulet": entities.EquipmentAmulet,
		"Boots":  entities.EquipmentBoots,
	}
)

// calculateDamage applies the damage formula: attack minus half the defense,
// plus a small variance, never below 1.
func calculateDamage(attack, defense int, src *rng.Source) int {
	base := attack - defense/2
	if base < 1 {
		base = 1
	}

	damage := base + src.IntBetween(-2, 2)
	if damage < 1 {
		damage = 1
	}
	return damage
}

// xpReward is the XP for defeating an enemy; bosses pay triple.
func xpReward(enemy *entities.Enemy) int {
	xp := enemy.Level * 10
	if enemy.IsBoss {
		xp *= bossXPFactor
	}
	return xp
}

// awardXP adds XP to the player and applies level-ups. The threshold is
// level*100 and is re-checked after every level so a large award can carry
// through several levels. Reports whether at least one level was gained.
func awardXP(player *entities.Player, xp int) bool {
	player.XP += xp
	leveledUp := false

	needed := player.Level * 100
	for player.XP >= needed {
		player.XP -= needed
		player.Level++
		leveledUp = true

		player.HP += 10
		player.Attack += 2
		player.Defense++
		player.Speed++
		player.Luck++

		needed = player.Level * 100
	}

	return leveledUp
}

// generateLoot rolls a loot item for a defeated enemy. Rarity is driven by
// the room's loot quality with a boss bonus on the random roll; the item name
// comes from the enemy's strongest theme tag.
func generateLoot(enemy *entities.Enemy, lootQuality int, src *rng.Source) *entities.Item {
	roll := src.Float64()

	var rarity entities.Rarity
	switch {
	case lootQuality >= 6 || (enemy.IsBoss && roll < 0.3):
		rarity = entities.RarityLegendary
	case lootQuality >= 4 || (enemy.IsBoss && roll < 0.5):
		rarity = entities.RarityEpic
	case lootQuality >= 3 || roll < 0.3:
		rarity = entities.RarityRare
	case lootQuality >= 2 || roll < 0.5:
		rarity = entities.RarityUncommon
	default:
		rarity = entities.RarityCommon
	}

	prefix := "Code"
	switch {
	case enemy.HasTag("ai"):
		prefix = "Neural"
	case enemy.HasTag("web"):
		prefix = "Web"
	case enemy.HasTag("backend"):
		prefix = "Server"
	case enemy.HasTag("cli"):
		prefix = "Terminal"
	}

	itemType := rng.Pick(src, lootItemTypes)

	bonuses := make(map[string]int)
	for i := 0; i < lootQuality*2; i++ {
		stat := rng.Pick(src, lootStats)
		bonuses[stat]++
	}

	return &entities.Item{
		Name:          fmt.Sprintf("%s %s", prefix, itemType),
		Rarity:        rarity,
		StatBonuses:   bonuses,
		Description:   fmt.Sprintf("A %s item dropped by %s", rarity, enemy.Name),
		EquipmentType: lootEquipmentTypes[itemType],
	}
}

// applyDefeatPenalty takes back XP and resets HP to half of max. The XP loss
// is capped at level*10 so one defeat never undoes a whole level.
func applyDefeatPenalty(player *entities.Player) (xpLost int) {
	xpLost = player.Level * 10
	if xpLost > player.XP {
		xpLost = player.XP
	}
	player.XP -= xpLost

	hp := player.MaxHP() / 2
	if hp < 1 {
		hp = 1
	}
	player.HP = hp

	return xpLost
}
