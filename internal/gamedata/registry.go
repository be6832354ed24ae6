package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	byID        map[string]*MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	r := &MonsterRegistry{
		monsters: monsters,
		byID:     make(map[string]*MonsterDef, len(monsters)),
	}
	for i := range monsters {
		r.byID[monsters[i].ID] = &monsters[i]
		r.totalWeight += monsters[i].SpawnWeight
	}
	return r
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	return r.byID[id]
}

// Lookup returns the definition for id, falling back to DefaultMonsterID
// for unknown types.
func (r *MonsterRegistry) Lookup(id string) *MonsterDef {
	if def := r.byID[id]; def != nil {
		return def
	}
	if def := r.byID[DefaultMonsterID]; def != nil {
		return def
	}
	if len(r.monsters) > 0 {
		return &r.monsters[0]
	}
	return nil
}

// SpawnRandom selects a random monster definition using weighted probability.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	return &r.monsters[0]
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// =============================================================================
// NPCRegistry
// =============================================================================

// NPCRegistry holds loaded NPC definitions.
type NPCRegistry struct {
	npcs []NPCDef
	byID map[string]*NPCDef
}

// NewNPCRegistry creates a registry from loaded NPC definitions.
func NewNPCRegistry(npcs []NPCDef) *NPCRegistry {
	r := &NPCRegistry{
		npcs: npcs,
		byID: make(map[string]*NPCDef, len(npcs)),
	}
	for i := range npcs {
		r.byID[npcs[i].ID] = &npcs[i]
	}
	return r
}

// LoadNPCRegistry loads and creates a registry from the embedded npcs.json.
func LoadNPCRegistry() (*NPCRegistry, error) {
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(npcs) == 0 {
		return nil, errors.New("no NPCs loaded from npcs.json")
	}
	return NewNPCRegistry(npcs), nil
}

// MustLoadNPCRegistry loads a registry, panicking on error.
func MustLoadNPCRegistry() *NPCRegistry {
	registry, err := LoadNPCRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the NPC definition with the given ID, or nil if not found.
func (r *NPCRegistry) GetByID(id string) *NPCDef {
	return r.byID[id]
}

// All returns all NPC definitions.
func (r *NPCRegistry) All() []NPCDef {
	return r.npcs
}

// Count returns the number of NPC types in the registry.
func (r *NPCRegistry) Count() int {
	return len(r.npcs)
}
