// Package room provides the interface for dungeon room persistence
package room

//go:generate mockgen -destination=mock/mock_repository.go -package=roommock github.com/repoquest/repoquest/internal/repositories/room Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// Repository defines the interface for dungeon room persistence
type Repository interface {
	// CreateBatch stores a world's rooms in one shot
	CreateBatch(ctx context.Context, input CreateBatchInput) (*CreateBatchOutput, error)

	// Get retrieves a room by ID
	// Returns errors.NotFound if the room doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByWorldID retrieves all rooms of a world
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListByWorldIDOutput, error)

	// MarkVisited flips a room's visited flag to true
	// Returns errors.NotFound if the room doesn't exist
	MarkVisited(ctx context.Context, input MarkVisitedInput) (*MarkVisitedOutput, error)

	// DeleteByWorldID removes all rooms of a world, used before a rescrape
	DeleteByWorldID(ctx context.Context, input DeleteByWorldIDInput) (*DeleteByWorldIDOutput, error)
}

// CreateBatchInput defines the input for storing rooms
type CreateBatchInput struct {
	Rooms []*entities.DungeonRoom
}

// CreateBatchOutput carries the number of rooms stored
type CreateBatchOutput struct {
	Created int
}

// GetInput defines the input for getting a room
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a room
type GetOutput struct {
	Room *entities.DungeonRoom
}

// ListByWorldIDInput defines the input for listing a world's rooms
type ListByWorldIDInput struct {
	WorldID string
}

// ListByWorldIDOutput defines the output for listing a world's rooms
type ListByWorldIDOutput struct {
	Rooms []*entities.DungeonRoom
}

// MarkVisitedInput defines the input for marking a room visited
type MarkVisitedInput struct {
	ID string
}

// MarkVisitedOutput defines the output for marking a room visited
type MarkVisitedOutput struct {
	Room *entities.DungeonRoom
}

// DeleteByWorldIDInput defines the input for clearing a world's rooms
type DeleteByWorldIDInput struct {
	WorldID string
}

// DeleteByWorldIDOutput carries the number of rooms removed
type DeleteByWorldIDOutput struct {
	Deleted int
}
