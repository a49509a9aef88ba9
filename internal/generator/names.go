// Package generator produces game content from repository features: the
// world boss, per-room trash enemies, dungeon rooms, and PR bosses. All
// seed-dependent draws go through an explicit rng.Source so that the same
// feature set always yields the same content.
package generator

import (
	"fmt"
	"sort"

	"github.com/repoquest/repoquest/internal/pkg/rng"
)

// themedPoolChance is the probability that the themed pool dominates the mix
// when any theme group matched.
const themedPoolChance = 0.7

// GenerateName builds an enemy name from the weighted prefix/suffix pools.
// Identical (keywordHits, seed, wordCount) always yields the identical name;
// the reseed points below are the determinism contract and must not move.
func GenerateName(keywordHits map[string]int, seed uint64, wordCount int, src *rng.Source) string {
	src.Reseed(seed)

	active := activeGroups(keywordHits)

	var prefixPool, suffixPool []string
	if len(active) == 0 {
		prefixPool = enemyPrefixes[genericPool]
		suffixPool = enemySuffixes[genericPool]
	} else {
		var themedPrefixes, themedSuffixes []string
		for _, g := range active {
			weight := g.hits * 2
			if weight < 1 {
				weight = 1
			}
			themedPrefixes = appendRepeated(themedPrefixes, enemyPrefixes[g.name], weight)
			themedSuffixes = appendRepeated(themedSuffixes, enemySuffixes[g.name], weight)
		}

		// Mix themed and generic: usually mostly themed, sometimes mostly
		// generic, each side padded with a slice of the other.
		src.Reseed((seed + uint64(wordCount)) % 1000)
		prefixPool = mixPools(src, themedPrefixes, enemyPrefixes[genericPool])

		src.Reseed((seed + uint64(wordCount) + 100) % 1000)
		suffixPool = mixPools(src, themedSuffixes, enemySuffixes[genericPool])
	}

	src.Reseed((seed + uint64(wordCount)) % 10000)
	prefix := "Generic"
	if len(prefixPool) > 0 {
		prefix = rng.Pick(src, prefixPool)
	}

	src.Reseed((seed + uint64(wordCount)*2 + 500) % 10000)
	suffix := "Spirit"
	if len(suffixPool) > 0 {
		suffix = rng.Pick(src, suffixPool)
	}

	return fmt.Sprintf("%s %s", prefix, suffix)
}

type group struct {
	name string
	hits int
}

// activeGroups returns theme groups with at least one hit, strongest first.
// Ties break alphabetically so pool construction stays deterministic.
func activeGroups(keywordHits map[string]int) []group {
	var active []group
	for name, hits := range keywordHits {
		if hits > 0 {
			active = append(active, group{name: name, hits: hits})
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].hits != active[j].hits {
			return active[i].hits > active[j].hits
		}
		return active[i].name < active[j].name
	})
	return active
}

func appendRepeated(dst, src []string, times int) []string {
	for i := 0; i < times; i++ {
		dst = append(dst, src...)
	}
	return dst
}

// mixPools picks the dominant pool and extends it with a third of the other.
func mixPools(src *rng.Source, themed, generic []string) []string {
	if len(themed) == 0 {
		return generic
	}
	if src.Float64() < themedPoolChance {
		return append(append([]string{}, themed...), headSlice(generic, len(themed)/3)...)
	}
	return append(append([]string{}, generic...), headSlice(themed, len(generic)/3)...)
}

// headSlice returns the first n elements, clamped to the slice length.
func headSlice(s []string, n int) []string {
	if n > len(s) {
		n = len(s)
	}
	if n < 0 {
		n = 0
	}
	return s[:n]
}
