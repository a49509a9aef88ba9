package combat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/pkg/rng"
)

func TestCalculateDamage(t *testing.T) {
	src := rng.New(42)

	t.Run("stays within variance bounds", func(t *testing.T) {
		// Base 10-5/2=8, variance [-2,2].
		for i := 0; i < 200; i++ {
			damage := calculateDamage(10, 5, src)
			assert.GreaterOrEqual(t, damage, 6)
			assert.LessOrEqual(t, damage, 10)
		}
	})

	t.Run("never drops below one", func(t *testing.T) {
		// Base clamps to 1, so the worst roll still lands a hit.
		for i := 0; i < 200; i++ {
			damage := calculateDamage(1, 100, src)
			assert.GreaterOrEqual(t, damage, 1)
			assert.LessOrEqual(t, damage, 3)
		}
	})
}

func TestXPReward(t *testing.T) {
	regular := &entities.Enemy{Name: "Null Pointer", Level: 3}
	assert.Equal(t, 30, xpReward(regular))

	boss := &entities.Enemy{Name: "PR #17", Level: 3, IsBoss: true}
	assert.Equal(t, 90, xpReward(boss))
}

func TestAwardXP(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		player := entities.NewPlayer("p1", "octocat")

		leveled := awardXP(player, 50)

		assert.False(t, leveled)
		assert.Equal(t, 1, player.Level)
		assert.Equal(t, 50, player.XP)
	})

	t.Run("single level", func(t *testing.T) {
		player := entities.NewPlayer("p1", "octocat")

		leveled := awardXP(player, 130)

		assert.True(t, leveled)
		assert.Equal(t, 2, player.Level)
		assert.Equal(t, 30, player.XP)
		assert.Equal(t, entities.DefaultPlayerHP+10, player.HP)
		assert.Equal(t, entities.DefaultPlayerAttack+2, player.Attack)
		assert.Equal(t, entities.DefaultPlayerDefense+1, player.Defense)
		assert.Equal(t, entities.DefaultPlayerSpeed+1, player.Speed)
		assert.Equal(t, entities.DefaultPlayerLuck+1, player.Luck)
	})

	t.Run("carries through multiple levels", func(t *testing.T) {
		player := entities.NewPlayer("p1", "octocat")

		// 100 for level 1, 200 for level 2, nothing left over.
		leveled := awardXP(player, 300)

		assert.True(t, leveled)
		assert.Equal(t, 3, player.Level)
		assert.Equal(t, 0, player.XP)
		assert.Equal(t, entities.DefaultPlayerHP+20, player.HP)
		assert.Equal(t, entities.DefaultPlayerAttack+4, player.Attack)
	})
}

func TestGenerateLoot(t *testing.T) {
	src := rng.New(7)
	enemy := &entities.Enemy{Name: "The Gatekeeper", Level: 5, Tags: []string{"ai", "web"}}

	t.Run("high quality forces legendary", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			loot := generateLoot(enemy, 6, src)
			assert.Equal(t, entities.RarityLegendary, loot.Rarity)
		}
	})

	t.Run("low quality never exceeds rare without a boss", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			loot := generateLoot(enemy, 1, src)
			assert.LessOrEqual(t, loot.Rarity.Rank(), entities.RarityRare.Rank())
		}
	})

	t.Run("boss bonus can reach legendary at low quality", func(t *testing.T) {
		boss := &entities.Enemy{Name: "PR #17", Level: 8, IsBoss: true}
		seen := map[entities.Rarity]bool{}
		for i := 0; i < 200; i++ {
			seen[generateLoot(boss, 1, src).Rarity] = true
		}
		assert.True(t, seen[entities.RarityLegendary])
		assert.True(t, seen[entities.RarityEpic])
	})

	t.Run("name and description follow the strongest tag", func(t *testing.T) {
		loot := generateLoot(enemy, 3, src)

		require.True(t, strings.HasPrefix(loot.Name, "Neural "))
		suffix := strings.TrimPrefix(loot.Name, "Neural ")
		assert.Contains(t, lootItemTypes, suffix)
		assert.Equal(t, lootEquipmentTypes[suffix], loot.EquipmentType)
		assert.Equal(t, fmt.Sprintf("A %s item dropped by %s", loot.Rarity, enemy.Name), loot.Description)
	})

	t.Run("untagged enemies drop Code items", func(t *testing.T) {
		plain := &entities.Enemy{Name: "Merge Conflict", Level: 2}
		loot := generateLoot(plain, 2, src)
		assert.True(t, strings.HasPrefix(loot.Name, "Code "))
	})

	t.Run("bonus points scale with quality", func(t *testing.T) {
		loot := generateLoot(enemy, 4, src)

		total := 0
		for stat, bonus := range loot.StatBonuses {
			assert.Contains(t, lootStats, stat)
			total += bonus
		}
		assert.Equal(t, 8, total)
	})
}

func TestApplyDefeatPenalty(t *testing.T) {
	t.Run("takes back a level's worth of xp", func(t *testing.T) {
		player := entities.NewPlayer("p1", "octocat")
		player.Level = 2
		player.XP = 50
		player.HP = 0

		xpLost := applyDefeatPenalty(player)

		assert.Equal(t, 20, xpLost)
		assert.Equal(t, 30, player.XP)
		assert.Equal(t, player.MaxHP()/2, player.HP)
	})

	t.Run("loss capped at current xp", func(t *testing.T) {
		player := entities.NewPlayer("p1", "octocat")
		player.XP = 5

		xpLost := applyDefeatPenalty(player)

		assert.Equal(t, 5, xpLost)
		assert.Equal(t, 0, player.XP)
	})
}
