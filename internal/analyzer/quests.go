package analyzer

import (
	"strings"

	"github.com/repoquest/repoquest/internal/entities"
)

// Quest difficulty bounds.
const (
	MaxIssueDifficulty = 20
	MaxPRBossLevel     = 50
)

// IssueDifficulty scores an issue from its discussion volume, labels, and
// open/closed state. Result is always in [1, 20].
func IssueDifficulty(issue entities.IssueData) int {
	difficulty := 1

	difficulty += issue.CommentCount / 2

	var hasBug, hasFeature bool
	for _, label := range issue.Labels {
		switch strings.ToLower(label) {
		case "bug":
			hasBug = true
		case "enhancement", "feature":
			hasFeature = true
		}
	}
	if hasBug {
		difficulty += 2
	}
	if hasFeature {
		difficulty++
	}

	if !issue.IsOpen {
		difficulty++
	}

	if difficulty > MaxIssueDifficulty {
		return MaxIssueDifficulty
	}
	return difficulty
}

// PRBossLevel scales a pull request into a boss level relative to the world's
// main enemy. Bosses start at half the main enemy's level, grow with
// discussion and diff size, and are capped at the lesser of base+10 and 50.
func PRBossLevel(pr entities.PullRequestData, baseRepoLevel int) int {
	level := baseRepoLevel / 2
	if level < 1 {
		level = 1
	}

	level += pr.CommentCount / 3

	// Diff tier bonus, only when both sides of the diff are known.
	if pr.Additions > 0 && pr.Deletions > 0 {
		total := pr.Additions + pr.Deletions
		switch {
		case total > 1000:
			level += 10
		case total > 500:
			level += 5
		case total > 100:
			level += 2
		}
	}

	maxLevel := baseRepoLevel + 10
	if maxLevel > MaxPRBossLevel {
		maxLevel = MaxPRBossLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
