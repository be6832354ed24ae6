package gamedata

// ItemType classifies shop items.
type ItemType string

const (
	ItemWeapon ItemType = "weapon"
	ItemArmor  ItemType = "armor"
	ItemPotion ItemType = "potion"
	ItemScroll ItemType = "scroll"
)

// ItemDef is an item offered in a shop. Only the fields relevant to the
// item type are set.
type ItemDef struct {
	Name    string   `json:"name"`
	Price   int      `json:"price" jsonschema:"minimum=0"`
	Type    ItemType `json:"type" jsonschema:"enum=weapon,enum=armor,enum=potion,enum=scroll"`
	Power   int      `json:"power,omitempty"`
	Defense int      `json:"defense,omitempty"`
	Heal    int      `json:"heal,omitempty"`
	Damage  int      `json:"damage,omitempty"`
	Mana    int      `json:"mana,omitempty"`
	Effect  string   `json:"effect,omitempty"`
}

// NPCDef defines a town NPC loaded from JSON.
// Name and dialogue lines are message IDs for the i18n catalogs.
type NPCDef struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Tint     Tint      `json:"tint"`
	Dialogue []string  `json:"dialogue"`
	Shop     []ItemDef `json:"shop"`
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

// LoadNPCs loads NPC definitions from the embedded npcs.json file.
func LoadNPCs() ([]NPCDef, error) {
	file, err := Load[NPCsFile]("npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}
