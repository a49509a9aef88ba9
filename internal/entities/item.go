package entities

// Rarity tiers, ordered common < uncommon < rare < epic < legendary.
type Rarity string

// Rarities.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank returns the ordinal position of the rarity, -1 if unknown.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	default:
		return -1
	}
}

// EquipmentType is the slot an item occupies when equipped. Empty means the
// item is not equippable.
type EquipmentType string

// Equipment slots.
const (
	EquipmentWeapon EquipmentType = "weapon"
	EquipmentShield EquipmentType = "shield"
	EquipmentArmor  EquipmentType = "armor"
	EquipmentRing   EquipmentType = "ring"
	EquipmentAmulet EquipmentType = "amulet"
	EquipmentBoots  EquipmentType = "boots"
)

// Stat names used as keys in item bonus maps.
const (
	StatHP      = "hp"
	StatAttack  = "attack"
	StatDefense = "defense"
	StatSpeed   = "speed"
	StatLuck    = "luck"
)

// Item is a piece of loot. Immutable once created; players reference items
// through inventory entries.
type Item struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Rarity        Rarity         `json:"rarity"`
	StatBonuses   map[string]int `json:"stat_bonuses,omitempty"`
	Description   string         `json:"description,omitempty"`
	EquipmentType EquipmentType  `json:"equipment_type,omitempty"`
}

// InventoryEntry is one stack of an item in a player's inventory. At most one
// entry per equipment type may be equipped at a time.
type InventoryEntry struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped"`
}
