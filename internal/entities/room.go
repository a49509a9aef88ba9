package entities

// Danger and loot bounds for a room.
const (
	MinDangerLevel = 1
	MaxDangerLevel = 10
	MinLootQuality = 1
	MaxLootQuality = 6
)

// DungeonRoom is one encounter unit derived from one file in the repository
// tree. FilePath is unique within a world. Visited starts false and flips
// true exactly once, on victory.
type DungeonRoom struct {
	ID          string `json:"id"`
	WorldID     string `json:"world_id"`
	ZoneName    string `json:"zone_name"`
	FilePath    string `json:"file_path"`
	DangerLevel int    `json:"danger_level"`
	LootQuality int    `json:"loot_quality"`
	Visited     bool   `json:"visited"`
}
