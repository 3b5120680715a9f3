package trlevel

import (
	"fmt"
	"strings"
)

// Category is a set of entity type categories.
type Category uint32

const (
	CategoryLara Category = 1 << iota
	CategoryEntity
	CategoryAnimation
	CategoryTrap
	CategoryDoor
	CategoryTrapdoor
	CategoryScenery
	CategoryPickup
	CategoryPuzzle
	CategorySlot
	CategoryKey
	CategoryKeyhole
	CategoryEffect
	CategoryParticles
	CategoryFire
	CategoryMovable
	CategorySpecial
	CategorySwitch
	CategoryVehicle
)

var categoryNames = [...]string{
	"lara", "entity", "animation", "trap", "door", "trapdoor", "scenery",
	"pickup", "puzzle", "slot", "key", "keyhole", "effect", "particles",
	"fire", "movable", "special", "switch", "vehicle",
}

// Has reports whether c includes every category in o.
func (c Category) Has(o Category) bool {
	return o != 0 && c&o == o
}

// Names returns the names of the categories in c, lowest bit first.
func (c Category) Names() []string {
	var names []string
	for i, name := range categoryNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	s := strings.Join(c.Names(), "|")
	if rest := c &^ (1<<len(categoryNames) - 1); rest != 0 {
		if s != "" {
			s += "|"
		}
		s += fmt.Sprintf("Category(%#x)", uint32(rest))
	}
	return s
}

type entityType struct {
	name       string
	categories Category
}

// Type tables exist for TR1 and TR2. TR3 levels have none.
var entityTypes = map[Version]map[int16]entityType{
	VersionTR1: tr1EntityTypes,
	VersionTR2: tr2EntityTypes,
}

// TypeName returns the name of the entity's type in a game version.
func (e *Entity) TypeName(v Version) (string, bool) {
	t, ok := entityTypes[v][e.TypeID]
	return t.name, ok
}

// Categories returns the categories of the entity's type in a game version.
// Unknown types have none.
func (e *Entity) Categories(v Version) Category {
	return entityTypes[v][e.TypeID].categories
}

func (e *Entity) InCategory(c Category, v Version) bool {
	return e.Categories(v).Has(c)
}

// PickupSprite returns the index of the sprite sequence a pickup entity is
// drawn with. Pickups share their type ID with their sprite sequence; a
// pickup stored as a model, or an entity that is not a pickup, has none.
func (l *Level) PickupSprite(e *Entity) (int, bool) {
	if !e.InCategory(CategoryPickup, l.Version) {
		return 0, false
	}
	for i := range l.SpriteSequences {
		if l.SpriteSequences[i].SpriteID == int32(e.TypeID) {
			return i, true
		}
	}
	return 0, false
}

// Lara returns the first entity whose type is Lara, which marks the start
// position.
func (l *Level) Lara() (*Entity, bool) {
	for i := range l.Entities {
		if l.Entities[i].InCategory(CategoryLara, l.Version) {
			return &l.Entities[i], true
		}
	}
	return nil, false
}
