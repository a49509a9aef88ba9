package generator

import (
	"strings"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/pkg/rng"
)

var (
	codeExtensions = map[string]bool{
		"py": true, "js": true, "ts": true, "java": true, "cpp": true, "c": true,
	}
	docExtensions = map[string]bool{
		"md": true, "txt": true,
	}
)

// BaseLootQuality is the stars/health-derived loot tier of a world, shown as
// the dungeon's expected reward tier. Room loot rolls are independent of it.
func BaseLootQuality(stars int, health entities.HealthState) int {
	base := 1
	switch {
	case stars > 1000:
		base = 6
	case stars > 100:
		base = 4
	case stars > 10:
		base = 2
	}

	switch health {
	case entities.HealthVibrant:
		base++
	case entities.HealthUndead:
		if base > 1 {
			base--
		}
	}

	if base > entities.MaxLootQuality {
		base = entities.MaxLootQuality
	}
	return base
}

// GenerateRooms maps each file in the tree to a dungeon room. Directories
// and blank paths are skipped, and duplicate file paths are dropped (first
// occurrence wins) so no two rooms in a world share a path. Danger grows with
// how crowded a zone is; loot quality is a flat probabilistic roll.
func GenerateRooms(tree []entities.TreeEntry, worldID string, src *rng.Source) []*entities.DungeonRoom {
	rooms := make([]*entities.DungeonRoom, 0, len(tree))
	zoneFileCounts := make(map[string]int)
	seenPaths := make(map[string]bool)

	for _, entry := range tree {
		if entry.IsDir || strings.TrimSpace(entry.Path) == "" {
			continue
		}
		if seenPaths[entry.Path] {
			continue
		}
		seenPaths[entry.Path] = true

		zoneName := "root"
		if idx := strings.LastIndex(entry.Path, "/"); idx >= 0 {
			zoneName = entry.Path[:idx]
		}

		zoneFileCounts[zoneName]++

		rooms = append(rooms, &entities.DungeonRoom{
			WorldID:     worldID,
			ZoneName:    zoneName,
			FilePath:    entry.Path,
			DangerLevel: dangerLevel(zoneName, entry.FileType, zoneFileCounts[zoneName]),
			LootQuality: rollLootQuality(src),
			Visited:     false,
		})
	}

	return rooms
}

// dangerLevel derives a room's danger from its zone's running file count,
// the file type, and special zone names. Clamped to [1, 10].
func dangerLevel(zoneName, fileType string, zoneFileCount int) int {
	danger := 1 + zoneFileCount/5
	if danger > entities.MaxDangerLevel {
		danger = entities.MaxDangerLevel
	}

	switch {
	case codeExtensions[fileType]:
		danger++
	case docExtensions[fileType]:
		if danger > 1 {
			danger--
		}
	}

	lowerZone := strings.ToLower(zoneName)
	if strings.Contains(lowerZone, "test") {
		danger += 2
	}
	if strings.Contains(lowerZone, "doc") {
		danger--
	}

	if danger > entities.MaxDangerLevel {
		danger = entities.MaxDangerLevel
	}
	if danger < entities.MinDangerLevel {
		danger = entities.MinDangerLevel
	}
	return danger
}

// rollLootQuality rolls the flat distribution: 95% quality 1-3 (uniform),
// 2.5% quality 4, 2% quality 5, 0.5% quality 6.
func rollLootQuality(src *rng.Source) int {
	roll := src.Float64()
	switch {
	case roll < 0.95:
		return src.IntBetween(1, 3)
	case roll < 0.975:
		return 4
	case roll < 0.995:
		return 5
	default:
		return 6
	}
}
