package entities

// Creature image IDs are drawn from a fixed sprite sheet.
const (
	MinCreatureImageID = 1
	MaxCreatureImageID = 120
)

// Enemy is a generated opponent. WorldID is empty for template/base enemies.
// The main enemy of a world is README-derived and has IsBoss=false; PR bosses
// set IsBoss=true. Persisted enemies are immutable; combat mutates a copy.
type Enemy struct {
	ID              string   `json:"id"`
	WorldID         string   `json:"world_id,omitempty"`
	Name            string   `json:"name"`
	Level           int      `json:"level"`
	HP              int      `json:"hp"`
	Attack          int      `json:"attack"`
	Defense         int      `json:"defense"`
	Speed           int      `json:"speed"`
	Tags            []string `json:"tags,omitempty"`
	IsBoss          bool     `json:"is_boss"`
	CreatureImageID int      `json:"creature_image_id,omitempty"`
}

// HasTag reports whether the enemy carries the given theme tag.
func (e *Enemy) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
