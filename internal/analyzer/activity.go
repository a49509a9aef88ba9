package analyzer

import (
	"github.com/repoquest/repoquest/internal/entities"
)

// ActivityFeatures summarize how active and reputable a repository is.
type ActivityFeatures struct {
	CommitCountRecent int                  `json:"commit_count_recent"`
	ActivityScore     int                  `json:"activity_score"`
	HealthState       entities.HealthState `json:"health_state"`
}

// ComputeActivityFeatures scores activity from recent commits plus
// reputation (stars, forks, watchers) and classifies the repository's health
// state. A nil meta contributes zero reputation.
func ComputeActivityFeatures(commits []entities.CommitData, meta *entities.RepoMeta) *ActivityFeatures {
	var stars, forks, watchers int
	if meta != nil {
		stars = meta.Stars
		forks = meta.Forks
		watchers = meta.Watchers
	}

	commitScore := len(commits) * 10
	reputationScore := stars + forks*2 + watchers*3

	health := entities.HealthUndead
	switch {
	case len(commits) >= 10 || stars > 1000:
		health = entities.HealthVibrant
	case len(commits) >= 5 || stars > 100:
		health = entities.HealthStable
	case len(commits) >= 1 || stars > 10:
		health = entities.HealthFrail
	}

	return &ActivityFeatures{
		CommitCountRecent: len(commits),
		ActivityScore:     commitScore + reputationScore,
		HealthState:       health,
	}
}
