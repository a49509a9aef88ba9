// Package quest provides the interface for quest persistence
package quest

//go:generate mockgen -destination=mock/mock_repository.go -package=questmock github.com/repoquest/repoquest/internal/repositories/quest Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// Repository defines the interface for quest persistence
type Repository interface {
	// Create stores a new quest
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a quest by ID
	// Returns errors.NotFound if the quest doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByWorldID retrieves all quests of a world
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListByWorldIDOutput, error)

	// UpdateStatus advances a quest's status
	// Returns errors.FailedPrecondition for a backward or repeated transition
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error)

	// DeleteByWorldID removes all quests of a world, used before a rescrape
	DeleteByWorldID(ctx context.Context, input DeleteByWorldIDInput) (*DeleteByWorldIDOutput, error)
}

// CreateInput defines the input for storing a quest
type CreateInput struct {
	Quest *entities.Quest
}

// CreateOutput defines the output for storing a quest
type CreateOutput struct {
	Quest *entities.Quest
}

// GetInput defines the input for getting a quest
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a quest
type GetOutput struct {
	Quest *entities.Quest
}

// ListByWorldIDInput defines the input for listing a world's quests
type ListByWorldIDInput struct {
	WorldID string
}

// ListByWorldIDOutput defines the output for listing a world's quests
type ListByWorldIDOutput struct {
	Quests []*entities.Quest
}

// UpdateStatusInput defines the input for advancing a quest
type UpdateStatusInput struct {
	ID     string
	Status entities.QuestStatus
}

// UpdateStatusOutput defines the output for advancing a quest
type UpdateStatusOutput struct {
	Quest *entities.Quest
}

// DeleteByWorldIDInput defines the input for clearing a world's quests
type DeleteByWorldIDInput struct {
	WorldID string
}

// DeleteByWorldIDOutput carries the number of quests removed
type DeleteByWorldIDOutput struct {
	Deleted int
}
