// Package analyzer turns scraped repository data into the normalized
// features that drive content generation. Every function here is a pure
// transform: same input, same output, no I/O.
package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/repoquest/repoquest/internal/entities"
)

// KeywordGroups are the theme groups detected in README text. Group names
// double as enemy tags and name-pool keys.
var KeywordGroups = map[string][]string{
	"web": {
		"html", "css", "javascript", "react", "frontend",
		"vue", "angular", "dom", "browser",
	},
	"backend": {
		"api", "server", "database", "django", "flask",
		"node", "express", "backend", "rest",
	},
	"cli": {
		"cli", "command-line", "terminal", "console", "shell", "bash",
	},
	"scraping": {
		"scrape", "crawler", "spider", "parsing", "extract",
	},
	"ai": {
		"machine learning", "neural", "deep learning", "ai",
		"artificial intelligence", "ml", "tensorflow", "pytorch",
	},
}

// minKeywordLen excludes short keywords like "ai" and "ml" from matching;
// even with word boundaries they produce too much noise in prose.
const minKeywordLen = 3

var (
	headingPattern = regexp.MustCompile(`(?m)^#+\s`)
	wordPattern    = regexp.MustCompile(`[a-zA-Z0-9]+`)

	// keywordPatterns holds one whole-word pattern per keyword, per group,
	// compiled once at startup.
	keywordPatterns = compileKeywordPatterns()
)

func compileKeywordPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(KeywordGroups))
	for group, keywords := range KeywordGroups {
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if len(kw) < minKeywordLen {
				continue
			}
			patterns[group] = append(patterns[group],
				regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return patterns
}

// ComputeReadmeFeatures extracts counts, word frequencies, keyword hits, and
// the deterministic seed from raw README text. Empty text yields the zero
// feature struct with seed 0, a valid degenerate input.
func ComputeReadmeFeatures(text string) *entities.ReadmeFeatures {
	features := &entities.ReadmeFeatures{}

	if text == "" {
		return features
	}

	features.CharCount = len(text)
	features.WordCount = len(strings.Fields(text))
	features.HeadingCount = len(headingPattern.FindAllString(text, -1))

	lower := strings.ToLower(text)

	features.WordFrequencies = make(map[string]int)
	for _, word := range wordPattern.FindAllString(lower, -1) {
		features.WordFrequencies[word]++
	}

	features.KeywordHits = make(map[string]int, len(KeywordGroups))
	for group := range KeywordGroups {
		hits := 0
		for _, pattern := range keywordPatterns[group] {
			hits += len(pattern.FindAllString(lower, -1))
		}
		features.KeywordHits[group] = hits
	}

	features.Seed = readmeSeed(text)

	return features
}

// readmeSeed hashes the README bytes and folds the first 16 hex characters
// into a 64-bit seed. Identical text always yields the identical seed.
func readmeSeed(text string) uint64 {
	sum := sha256.Sum256([]byte(text))
	hexDigest := hex.EncodeToString(sum[:])
	seed, err := strconv.ParseUint(hexDigest[:16], 16, 64)
	if err != nil {
		// 16 hex characters always parse; this branch is unreachable.
		return 0
	}
	return seed
}
