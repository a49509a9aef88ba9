package analyzer

import (
	"strings"

	"github.com/repoquest/repoquest/internal/entities"
)

// ComputeStructureFeatures partitions tree entries into files and
// directories, buckets files by extension, and buckets both by top-level
// zone. A file at the repository root lands in the "root" zone; a root-level
// directory is its own zone.
func ComputeStructureFeatures(tree []entities.TreeEntry) *entities.StructureFeatures {
	features := &entities.StructureFeatures{
		FilesByExtension: make(map[string]int),
		Zones:            make(map[string]entities.ZoneCount),
	}

	for _, entry := range tree {
		if entry.IsDir {
			features.TotalDirs++

			zoneName := topLevelSegment(entry.Path, entry.Path)
			zone := features.Zones[zoneName]
			zone.Dirs++
			features.Zones[zoneName] = zone
			continue
		}

		features.TotalFiles++
		if entry.FileType != "" {
			features.FilesByExtension[entry.FileType]++
		}

		zoneName := topLevelSegment(entry.Path, "root")
		zone := features.Zones[zoneName]
		zone.Files++
		features.Zones[zoneName] = zone
	}

	return features
}

// topLevelSegment returns the path segment before the first separator, or
// fallback when the path has no separator.
func topLevelSegment(path, fallback string) string {
	if idx := strings.Index(path, "/"); idx >= 0 {
		return path[:idx]
	}
	return fallback
}
