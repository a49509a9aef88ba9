// Package item provides the interface for item and inventory persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/repoquest/repoquest/internal/repositories/item Repository

import (
	"context"

	"github.com/repoquest/repoquest/internal/entities"
)

// OwnedItem pairs an item with its inventory state for one player.
type OwnedItem struct {
	Item     *entities.Item
	Quantity int
	Equipped bool
}

// Repository defines the interface for item and inventory persistence.
// Items themselves are immutable; inventory state lives per player.
type Repository interface {
	// Create stores a new item
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// AddToInventory adds quantity of an item to a player's inventory
	AddToInventory(ctx context.Context, input AddToInventoryInput) (*AddToInventoryOutput, error)

	// RemoveFromInventory removes quantity of an item, dropping the slot at zero
	// Returns errors.NotFound if the player doesn't hold the item
	RemoveFromInventory(ctx context.Context, input RemoveFromInventoryInput) (*RemoveFromInventoryOutput, error)

	// ListInventory retrieves a player's full inventory with item details
	ListInventory(ctx context.Context, input ListInventoryInput) (*ListInventoryOutput, error)

	// CountSlots returns the number of distinct item slots a player occupies
	CountSlots(ctx context.Context, input CountSlotsInput) (*CountSlotsOutput, error)

	// SetEquipped flips the equipped flag for an item the player holds
	// Returns errors.NotFound if the player doesn't hold the item
	SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error)
}

// CreateInput defines the input for storing an item
type CreateInput struct {
	Item *entities.Item
}

// CreateOutput defines the output for storing an item
type CreateOutput struct {
	Item *entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// AddToInventoryInput defines the input for adding to an inventory
type AddToInventoryInput struct {
	PlayerID string
	ItemID   string
	Quantity int
}

// AddToInventoryOutput carries the stack size after the addition
type AddToInventoryOutput struct {
	Quantity int
}

// RemoveFromInventoryInput defines the input for removing from an inventory
type RemoveFromInventoryInput struct {
	PlayerID string
	ItemID   string
	Quantity int
}

// RemoveFromInventoryOutput carries the stack size after the removal
type RemoveFromInventoryOutput struct {
	Quantity int
}

// ListInventoryInput defines the input for listing an inventory
type ListInventoryInput struct {
	PlayerID string
}

// ListInventoryOutput defines the output for listing an inventory
type ListInventoryOutput struct {
	Items []*OwnedItem
}

// CountSlotsInput defines the input for counting occupied slots
type CountSlotsInput struct {
	PlayerID string
}

// CountSlotsOutput carries the occupied slot count
type CountSlotsOutput struct {
	Slots int
}

// SetEquippedInput defines the input for equipping or unequipping
type SetEquippedInput struct {
	PlayerID string
	ItemID   string
	Equipped bool
}

// SetEquippedOutput defines the output for equipping or unequipping
type SetEquippedOutput struct {
	// Empty for now, can be extended later
}
