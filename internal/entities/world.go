package entities

import (
	"time"
)

// HealthState classifies how alive a repository is, from recent commit and
// reputation signals.
type HealthState string

// Health states, most to least alive.
const (
	HealthVibrant HealthState = "Vibrant"
	HealthStable  HealthState = "Stable"
	HealthFrail   HealthState = "Frail"
	HealthUndead  HealthState = "Undead"
	HealthUnknown HealthState = "Unknown"
)

// ReadmeFeatures holds the normalized features extracted from a repository
// README. Immutable once computed; Seed is the sole source of determinism for
// the world boss identity across rescrapes with an unchanged README.
type ReadmeFeatures struct {
	WordCount       int            `json:"word_count"`
	CharCount       int            `json:"char_count"`
	HeadingCount    int            `json:"heading_count"`
	WordFrequencies map[string]int `json:"word_frequencies,omitempty"`
	KeywordHits     map[string]int `json:"keyword_hits,omitempty"`
	Seed            uint64         `json:"seed"`
}

// ZoneCount tallies files and directories under one top-level zone.
type ZoneCount struct {
	Files int `json:"files"`
	Dirs  int `json:"dirs"`
}

// StructureFeatures holds counts derived from the repository file tree.
type StructureFeatures struct {
	TotalFiles       int                  `json:"total_files"`
	TotalDirs        int                  `json:"total_dirs"`
	FilesByExtension map[string]int       `json:"files_by_extension,omitempty"`
	Zones            map[string]ZoneCount `json:"zones,omitempty"`
}

// RepoWorld is the generated game representation of one source repository.
// FullName ("owner/repo") is the unique key. A rescrape refreshes the stats
// and regenerates the world's rooms.
type RepoWorld struct {
	ID                string             `json:"id"`
	Owner             string             `json:"owner"`
	Repo              string             `json:"repo"`
	FullName          string             `json:"full_name"`
	PrimaryLanguage   string             `json:"primary_language,omitempty"`
	Stars             int                `json:"stars"`
	Forks             int                `json:"forks"`
	Watchers          int                `json:"watchers"`
	ActivityScore     int                `json:"activity_score"`
	HealthState       HealthState        `json:"health_state"`
	MainEnemyID       string             `json:"main_enemy_id,omitempty"`
	ReadmeFeatures    *ReadmeFeatures    `json:"readme_features,omitempty"`
	StructureFeatures *StructureFeatures `json:"structure_features,omitempty"`
	DiscoveredAt      time.Time          `json:"discovered_at"`
	LastScrapedAt     time.Time          `json:"last_scraped_at"`
}
