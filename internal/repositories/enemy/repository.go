// Package enemy provides the interface for enemy persistence
package enemy

//go:generate mockgen -destination=mock/mock_repository.go -package=enemymock github.com/repoquest/repoquest/internal/repositories/enemy Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// Repository defines the interface for enemy persistence. Enemies are
// immutable once stored; a rescrape replaces a world's enemies wholesale.
type Repository interface {
	// Create stores a new enemy
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an enemy by ID
	// Returns errors.NotFound if the enemy doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByWorldID retrieves all enemies belonging to a world
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListByWorldIDOutput, error)

	// DeleteByWorldID removes all enemies belonging to a world
	DeleteByWorldID(ctx context.Context, input DeleteByWorldIDInput) (*DeleteByWorldIDOutput, error)
}

// CreateInput defines the input for storing an enemy
type CreateInput struct {
	Enemy *entities.Enemy
}

// CreateOutput defines the output for storing an enemy
type CreateOutput struct {
	Enemy *entities.Enemy
}

// GetInput defines the input for getting an enemy
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an enemy
type GetOutput struct {
	Enemy *entities.Enemy
}

// ListByWorldIDInput defines the input for listing a world's enemies
type ListByWorldIDInput struct {
	WorldID string
}

// ListByWorldIDOutput defines the output for listing a world's enemies
type ListByWorldIDOutput struct {
	Enemies []*entities.Enemy
}

// DeleteByWorldIDInput defines the input for clearing a world's enemies
type DeleteByWorldIDInput struct {
	WorldID string
}

// DeleteByWorldIDOutput carries the number of enemies removed
type DeleteByWorldIDOutput struct {
	Deleted int
}
