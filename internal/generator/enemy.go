package generator

import (
	"fmt"
	"sort"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/pkg/rng"
)

// MaxEnemyLevel caps every generated enemy.
const MaxEnemyLevel = 100

// MainEnemyInput carries the repository metrics that scale the world boss.
type MainEnemyInput struct {
	Features      *entities.ReadmeFeatures
	WorldID       string
	Stars         int
	Forks         int
	ActivityScore int
	TotalFiles    int
	CommitCount   int
}

// GenerateMainEnemy produces the world's main enemy from README features and
// repository scale. Each level factor is independently capped so one huge
// dimension cannot dominate. Deterministic for a fixed input: the source is
// reseeded with the README seed before any draw.
func GenerateMainEnemy(input MainEnemyInput, src *rng.Source) *entities.Enemy {
	features := input.Features
	if features == nil {
		features = &entities.ReadmeFeatures{}
	}

	src.Reseed(features.Seed)

	enemy := &entities.Enemy{
		WorldID:         input.WorldID,
		CreatureImageID: src.IntBetween(entities.MinCreatureImageID, entities.MaxCreatureImageID),
		IsBoss:          false,
	}

	enemy.Name = GenerateName(features.KeywordHits, features.Seed, features.WordCount, src)

	activityLevel := capped(input.ActivityScore/100, 30)
	fileLevel := capped(input.TotalFiles/10, 25)
	starsLevel := capped(input.Stars/100, 20)
	forksLevel := capped(input.Forks/50, 15)
	commitLevel := capped(input.CommitCount/5, 10)
	readmeBonus := capped(features.WordCount/500, 5)

	enemy.Level = capped(
		1+activityLevel+fileLevel+starsLevel+forksLevel+commitLevel+readmeBonus,
		MaxEnemyLevel,
	)

	enemy.HP = 50 + enemy.Level*10 + input.TotalFiles*2
	enemy.Attack = 5 + enemy.Level*2 + capped(input.Stars/50, 20)
	enemy.Defense = 5 + enemy.Level + capped(input.ActivityScore/200, 15)
	enemy.Speed = src.IntBetween(5, 20)

	enemy.Tags = themeTags(features.KeywordHits)

	return enemy
}

// GenerateRoomEnemy produces a trash enemy for a room. The danger level sets
// the stats; base only lends its name and tags as flavor. Image selection is
// intentionally unseeded so repeat visits meet different creatures.
func GenerateRoomEnemy(dangerLevel int, worldID string, base *entities.Enemy, src *rng.Source) *entities.Enemy {
	level := dangerLevel
	if level < 1 {
		level = 1
	}

	enemy := &entities.Enemy{
		WorldID:         worldID,
		Level:           level,
		HP:              30 + dangerLevel*15,
		Attack:          4 + dangerLevel,
		Defense:         1 + dangerLevel/2,
		Speed:           6 + dangerLevel/2,
		IsBoss:          false,
		CreatureImageID: src.IntBetween(entities.MinCreatureImageID, entities.MaxCreatureImageID),
	}

	if base != nil {
		switch {
		case dangerLevel <= 2:
			enemy.Name = "Weak " + base.Name
		case dangerLevel <= 5:
			enemy.Name = "Lesser " + base.Name
		default:
			enemy.Name = base.Name
		}
		enemy.Tags = append([]string{}, base.Tags...)
	} else {
		enemy.Name = fmt.Sprintf("Code Fragment (Level %d)", dangerLevel)
		enemy.Tags = []string{"generic"}
	}

	return enemy
}

// GeneratePRBoss builds the boss enemy for a pull request at the given level
// (see analyzer.PRBossLevel).
func GeneratePRBoss(pr entities.PullRequestData, level int, worldID string) *entities.Enemy {
	title := pr.Title
	if len(title) > 30 {
		title = title[:30]
	}

	return &entities.Enemy{
		WorldID: worldID,
		Name:    fmt.Sprintf("PR #%d: %s", pr.PRNumber, title),
		Level:   level,
		HP:      100 + level*10,
		Attack:  10 + level*2,
		Defense: 5 + level,
		Speed:   8 + level/2,
		IsBoss:  true,
		Tags:    []string{"pull-request", "boss"},
	}
}

// themeTags lists the theme groups with at least one hit, in a stable order.
func themeTags(keywordHits map[string]int) []string {
	var tags []string
	for name, hits := range keywordHits {
		if hits > 0 {
			tags = append(tags, name)
		}
	}
	sort.Strings(tags)
	return tags
}

func capped(value, maxValue int) int {
	if value > maxValue {
		return maxValue
	}
	return value
}
