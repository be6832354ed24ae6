package gamedata

// PlayerDef holds the player's starting stats.
type PlayerDef struct {
	Level          int  `json:"level" jsonschema:"minimum=1"`
	HP             int  `json:"hp" jsonschema:"minimum=1"`
	MaxHP          int  `json:"maxHp" jsonschema:"minimum=1"`
	Speed          int  `json:"speed"`
	AttackPower    int  `json:"attackPower"`
	AttackReach    int  `json:"attackReach"` // Melee reach in pixels
	InventorySlots int  `json:"inventorySlots"`
	Gold           int  `json:"gold"`
	Tint           Tint `json:"tint"`
}

// PlayerFile represents the structure of player.json.
type PlayerFile struct {
	Player PlayerDef `json:"player"`
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (PlayerDef, error) {
	file, err := Load[PlayerFile]("player.json")
	if err != nil {
		return PlayerDef{}, err
	}
	return file.Player, nil
}

// MustLoadPlayer loads the player definition, panicking on error.
func MustLoadPlayer() PlayerDef {
	def, err := LoadPlayer()
	if err != nil {
		panic(err)
	}
	return def
}
