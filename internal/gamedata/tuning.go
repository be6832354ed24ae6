package gamedata

import (
	"time"

	"github.com/samdwyer/pixelcrawler/internal/world"
)

// DungeonTuning sizes the generated map.
type DungeonTuning struct {
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	RoomCount world.Range `yaml:"room_count"`
	RoomSize  world.Range `yaml:"room_size"`
}

// Params returns the generator parameters.
func (d DungeonTuning) Params() world.GenParams {
	return world.GenParams{RoomCount: d.RoomCount, RoomSize: d.RoomSize}
}

// MonsterTuning holds the monster AI thresholds and timings.
type MonsterTuning struct {
	Count           int           `yaml:"count"`
	AIInterval      time.Duration `yaml:"ai_interval"`
	DetectionRange  float64       `yaml:"detection_range"`
	AttackRange     float64       `yaml:"attack_range"`
	AttackCooldown  time.Duration `yaml:"attack_cooldown"`
	HitFlash        time.Duration `yaml:"hit_flash"`
	RemovalDelay    time.Duration `yaml:"removal_delay"`
	LootChance      float64       `yaml:"loot_chance"`
	MovingThreshold float64       `yaml:"moving_threshold"`
}

// PlayerTuning holds player timings and levelling.
type PlayerTuning struct {
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	LevelExp       int           `yaml:"level_exp"`    // Exp per level, multiplied by the current level
	LevelHP        int           `yaml:"level_hp"`     // MaxHP gained per level
	LevelAttack    int           `yaml:"level_attack"` // AttackPower gained per level
}

// NPCTuning holds NPC interaction settings.
type NPCTuning struct {
	InteractionRange float64 `yaml:"interaction_range"`
}

// Tuning is the full contents of tuning.yaml.
type Tuning struct {
	Dungeon DungeonTuning `yaml:"dungeon"`
	Monster MonsterTuning `yaml:"monster"`
	Player  PlayerTuning  `yaml:"player"`
	NPC     NPCTuning     `yaml:"npc"`
}

// LoadTuning loads the embedded tuning.yaml and, when overridePath is not
// empty, merges that file on top of it.
func LoadTuning(overridePath string) (Tuning, error) {
	t, err := LoadYAML[Tuning]("tuning.yaml")
	if err != nil {
		return Tuning{}, err
	}
	if overridePath != "" {
		if err := mergeYAMLFile(overridePath, &t); err != nil {
			return Tuning{}, err
		}
	}
	return t, nil
}

// MustLoadTuning loads the embedded tuning, panicking on error.
func MustLoadTuning() Tuning {
	t, err := LoadTuning("")
	if err != nil {
		panic(err)
	}
	return t
}
