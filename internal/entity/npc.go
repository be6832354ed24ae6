package entity

import (
	"math/rand"
	"strings"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/gamedata"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// NPC is a friendly character with dialogue and a shop.
type NPC struct {
	Body
	Def              *gamedata.NPCDef
	Type             string
	Name             string   // Message ID
	Dialogue         []string // Message IDs
	Shop             []gamedata.ItemDef
	InteractionRange float64
	ShowIndicator    bool
}

const npcFrameRate = 4

// NewNPC creates an NPC of the given definition at pos.
func NewNPC(def *gamedata.NPCDef, tuning gamedata.NPCTuning, pos world.Point, clips *assets.Library) *NPC {
	n := &NPC{
		Body:             newBody(pos, 30, 32),
		Def:              def,
		Type:             def.ID,
		Name:             def.Name,
		Dialogue:         def.Dialogue,
		Shop:             def.Shop,
		InteractionRange: tuning.InteractionRange,
	}
	n.Immovable = true
	n.Placeholder = def.Tint.RGBA()
	n.Texture = assets.NPCTextureKey(n.Type, "Idle")

	if clips != nil {
		for _, state := range actorStates {
			// Single-frame sheets get no clip.
			clips.Create(n.clipKey(state), assets.NPCTextureKey(n.Type, state), npcFrameRate, true, 2)
		}
	}
	return n
}

var actorStates = []string{"Idle", "Run", "Death"}

func (n *NPC) clipKey(state string) string {
	return "npc_" + n.Type + "_" + strings.ToLower(state)
}

// Update shows the interaction indicator while p is in range.
func (n *NPC) Update(p world.Point) {
	n.ShowIndicator = n.InRange(p)
}

// InRange reports whether p is close enough to interact.
func (n *NPC) InRange(p world.Point) bool {
	return world.Distance(n.Pos, p) < n.InteractionRange
}

// RandomLine returns one of the NPC's dialogue lines, or "..." when it has none.
func (n *NPC) RandomLine(rng *rand.Rand) string {
	if len(n.Dialogue) == 0 {
		return "..."
	}
	return n.Dialogue[rng.Intn(len(n.Dialogue))]
}

// Item returns the shop item at index i.
func (n *NPC) Item(i int) (gamedata.ItemDef, bool) {
	if i < 0 || i >= len(n.Shop) {
		return gamedata.ItemDef{}, false
	}
	return n.Shop[i], true
}
