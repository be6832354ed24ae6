// Package game drives the scenes, the play session and the save slot. It is
// independent of any frontend: renderers feed it Controls and draw its View.
package game

// Scene is the active screen.
type Scene int

const (
	// SceneBoot scans the asset pack and reports progress.
	SceneBoot Scene = iota
	// SceneMenu is the title menu.
	SceneMenu
	// ScenePlay runs the world.
	ScenePlay
	// ScenePaused freezes the world behind the pause menu.
	ScenePaused
	// SceneInventory freezes the world behind the inventory panel.
	SceneInventory
	// SceneDialogue shows an NPC line.
	SceneDialogue
	// SceneShop lists an NPC's wares.
	SceneShop
	// SceneGameOver follows the player's death.
	SceneGameOver
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneBoot:
		return "boot"
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case ScenePaused:
		return "paused"
	case SceneInventory:
		return "inventory"
	case SceneDialogue:
		return "dialogue"
	case SceneShop:
		return "shop"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Overlay reports whether the world is drawn, frozen, behind the scene.
func (s Scene) Overlay() bool {
	switch s {
	case ScenePaused, SceneInventory, SceneDialogue, SceneShop:
		return true
	default:
		return false
	}
}
