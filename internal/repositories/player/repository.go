// Package player provides the interface for player persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/repoquest/repoquest/internal/repositories/player Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// Counter names tracked per player.
const (
	CounterEnemiesDefeated = "enemies_defeated"
	CounterBossesDefeated  = "bosses_defeated"
	CounterBattlesLost     = "battles_lost"
	CounterTotalXPEarned   = "total_xp_earned"
	CounterItemsCollected  = "items_collected"
	CounterQuestsCompleted = "quests_completed"
	CounterRoomsCleared    = "rooms_cleared"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Create creates a new player
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if player with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if player doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing player
	// Returns errors.NotFound if player doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List retrieves all players
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// IncrementCounter atomically bumps one of the player's lifetime counters
	IncrementCounter(ctx context.Context, input IncrementCounterInput) (*IncrementCounterOutput, error)

	// GetCounters retrieves all lifetime counters for a player
	GetCounters(ctx context.Context, input GetCountersInput) (*GetCountersOutput, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.Player
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Player *entities.Player
}

// ListInput defines the input for listing players
type ListInput struct {
	// Empty for now, can be extended with paging later
}

// ListOutput defines the output for listing players
type ListOutput struct {
	Players []*entities.Player
}

// IncrementCounterInput defines the input for bumping a counter
type IncrementCounterInput struct {
	PlayerID string
	Counter  string
	Delta    int64
}

// IncrementCounterOutput carries the counter value after the increment
type IncrementCounterOutput struct {
	Value int64
}

// GetCountersInput defines the input for reading counters
type GetCountersInput struct {
	PlayerID string
}

// GetCountersOutput defines the output for reading counters
type GetCountersOutput struct {
	Counters map[string]int64
}
