package gamedata

// DefaultMonsterID is the type used when a requested monster type is unknown.
const DefaultMonsterID = "Orc"

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`                                 // Type name, also the sprite key segment (e.g., "OrcRogue")
	Name        string `json:"name"`                               // Display name
	Sprite      string `json:"sprite"`                             // Folder under Entities/Mobs
	Tint        Tint   `json:"tint"`                               // Placeholder color when the texture is missing
	HP          int    `json:"hp" jsonschema:"minimum=1"`          // Starting and maximum hit points
	Speed       int    `json:"speed" jsonschema:"minimum=0"`       // Chase speed in pixels per second
	AttackPower int    `json:"attackPower" jsonschema:"minimum=0"` // Damage per hit
	Exp         int    `json:"exp" jsonschema:"minimum=0"`         // Experience granted to the killer
	Gold        int    `json:"gold" jsonschema:"minimum=0"`        // Gold granted to the killer
	SpawnWeight int    `json:"spawnWeight" jsonschema:"minimum=0"` // Relative spawn frequency (higher = more common)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
