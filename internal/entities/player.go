// Package entities provides core data structures for repoquest.
package entities

import (
	"time"
)

// Default starting stats for a new player.
const (
	DefaultPlayerHP      = 100
	DefaultPlayerAttack  = 10
	DefaultPlayerDefense = 5
	DefaultPlayerSpeed   = 8
	DefaultPlayerLuck    = 5
)

// Player is the adventurer progressing through repository worlds. Stats only
// grow through leveling or equipment bonuses; the sole exception is the
// defeat penalty, which resets HP and takes back XP.
type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	XP            int       `json:"xp"`
	HP            int       `json:"hp"`
	Attack        int       `json:"attack"`
	Defense       int       `json:"defense"`
	Speed         int       `json:"speed"`
	Luck          int       `json:"luck"`
	GithubHandle  string    `json:"github_handle,omitempty"`
	PlayerImageID int       `json:"player_image_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MaxHP returns the player's maximum HP at their current level.
func (p *Player) MaxHP() int {
	return p.Level*10 + 90
}

// InventoryCapacity returns the number of unique item slots available:
// 10 base slots plus 10 for every 10 levels.
func (p *Player) InventoryCapacity() int {
	return 10 + (p.Level/10)*10
}

// NewPlayer returns a level 1 player with default stats.
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Level:   1,
		HP:      DefaultPlayerHP,
		Attack:  DefaultPlayerAttack,
		Defense: DefaultPlayerDefense,
		Speed:   DefaultPlayerSpeed,
		Luck:    DefaultPlayerLuck,
	}
}
