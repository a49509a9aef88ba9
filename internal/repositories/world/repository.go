// Package world provides the interface for repo world persistence
package world

//go:generate mockgen -destination=mock/mock_repository.go -package=worldmock github.com/repoquest/repoquest/internal/repositories/world Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// Repository defines the interface for repo world persistence
type Repository interface {
	// Create creates a new world
	// Returns errors.AlreadyExists if a world for the same repository exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a world by ID
	// Returns errors.NotFound if the world doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByFullName retrieves a world by its "owner/repo" key
	// Returns errors.NotFound if no world exists for the repository
	GetByFullName(ctx context.Context, input GetByFullNameInput) (*GetByFullNameOutput, error)

	// Update updates an existing world
	// Returns errors.NotFound if the world doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List retrieves all discovered worlds
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a world
type CreateInput struct {
	World *entities.RepoWorld
}

// CreateOutput defines the output for creating a world
type CreateOutput struct {
	World *entities.RepoWorld
}

// GetInput defines the input for getting a world
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a world
type GetOutput struct {
	World *entities.RepoWorld
}

// GetByFullNameInput defines the input for the full-name lookup
type GetByFullNameInput struct {
	FullName string
}

// GetByFullNameOutput defines the output for the full-name lookup
type GetByFullNameOutput struct {
	World *entities.RepoWorld
}

// UpdateInput defines the input for updating a world
type UpdateInput struct {
	World *entities.RepoWorld
}

// UpdateOutput defines the output for updating a world
type UpdateOutput struct {
	World *entities.RepoWorld
}

// ListInput defines the input for listing worlds
type ListInput struct {
	// Empty for now, can be extended with paging later
}

// ListOutput defines the output for listing worlds
type ListOutput struct {
	Worlds []*entities.RepoWorld
}
