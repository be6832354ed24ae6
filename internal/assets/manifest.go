// Package assets enumerates the sprite pack, checks which textures exist and
// substitutes colored placeholders for the ones that do not.
package assets

import "fmt"

// BasePath is the root folder of the sprite pack.
const BasePath = "Pixel-Crawler-Pack"

// Kind distinguishes plain images from spritesheets.
type Kind int

const (
	KindImage Kind = iota
	KindSpritesheet
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSpritesheet:
		return "spritesheet"
	default:
		return "unknown"
	}
}

// Asset is one texture the game knows how to load.
type Asset struct {
	Key         string
	Path        string // Slash separated, relative to the asset root
	Kind        Kind
	FrameWidth  int // Spritesheets only
	FrameHeight int
}

// Character animation folders with the file prefix and direction names
// each folder uses. Pierce ships its back view as "Top".
var characterAnimations = []struct {
	folder     string
	prefix     string
	directions []string
}{
	{"Idle_Base", "Idle", []string{"Down", "Side", "Up"}},
	{"Walk_Base", "Walk", []string{"Down", "Side", "Up"}},
	{"Run_Base", "Run", []string{"Down", "Side", "Up"}},
	{"Slice_Base", "Slice", []string{"Down", "Side", "Up"}},
	{"Pierce_Base", "Pierce", []string{"Down", "Side", "Top"}},
	{"Crush_Base", "Crush", []string{"Down", "Side", "Up"}},
	{"Hit_Base", "Hit", []string{"Down", "Side", "Up"}},
	{"Death_Base", "Death", []string{"Down", "Side", "Up"}},
	{"Carry_Idle", "Carry_Idle", []string{"Down", "Side", "Up"}},
	{"Carry_Walk", "Carry_Walk", []string{"Down", "Side", "Up"}},
	{"Carry_Run", "Carry_Run", []string{"Down", "Side", "Up"}},
	{"Collect_Base", "Collect", []string{"Down", "Side", "Up"}},
	{"Fishing_Base", "Fishing", []string{"Down", "Side", "Up"}},
	{"Watering_Base", "Watering", []string{"Down", "Side", "Up"}},
}

// Mob sprite folders by type name.
var mobFolders = []struct {
	name string
	path string
}{
	{"Orc", "Orc Crew/Orc"},
	{"OrcRogue", "Orc Crew/Orc - Rogue"},
	{"OrcShaman", "Orc Crew/Orc - Shaman"},
	{"OrcWarrior", "Orc Crew/Orc - Warrior"},
	{"Skeleton", "Skeleton Crew/Skeleton - Base"},
	{"SkeletonMage", "Skeleton Crew/Skeleton - Mage"},
	{"SkeletonRogue", "Skeleton Crew/Skeleton - Rogue"},
	{"SkeletonWarrior", "Skeleton Crew/Skeleton - Warrior"},
}

var (
	npcNames       = []string{"Knight", "Rogue", "Wizzard"}
	actorStates    = []string{"Idle", "Run", "Death"}
	propImages     = []string{"Dungeon_Props", "Esoteric", "Farm", "Furniture", "Meat", "Pan", "Resources", "Rocks", "Shadows", "Tools", "Vegetation"}
	tilesetImages  = []string{"Dungeon_Tiles", "Floors_Tiles", "Wall_Tiles", "Wall_Variations", "Water_tiles"}
	buildingImages = []string{"Floors", "Props", "Roofs", "Shadows", "Walls"}
	weaponImages   = []string{"Bone", "Hands", "Wood"}
)

const (
	characterFrame = 48
	propFrame      = 16
	animatedPans   = 5
)

func sheetAsset(key, path string, frame int) Asset {
	return Asset{Key: key, Path: BasePath + "/" + path, Kind: KindSpritesheet, FrameWidth: frame, FrameHeight: frame}
}

func imageAsset(key, path string) Asset {
	return Asset{Key: key, Path: BasePath + "/" + path, Kind: KindImage}
}

// CharacterAssets lists the player animation spritesheets.
func CharacterAssets() []Asset {
	var out []Asset
	for _, anim := range characterAnimations {
		for _, dir := range anim.directions {
			out = append(out, sheetAsset(
				fmt.Sprintf("player_%s_%s", anim.folder, dir),
				fmt.Sprintf("Entities/Characters/Body_A/Animations/%s/%s_%s-Sheet.png", anim.folder, anim.prefix, dir),
				characterFrame,
			))
		}
	}
	return out
}

// MonsterAssets lists the mob spritesheets.
func MonsterAssets() []Asset {
	var out []Asset
	for _, mob := range mobFolders {
		for _, state := range actorStates {
			out = append(out, sheetAsset(
				MonsterTextureKey(mob.name, state),
				fmt.Sprintf("Entities/Mobs/%s/%s/%s-Sheet.png", mob.path, state, state),
				characterFrame,
			))
		}
	}
	return out
}

// NPCAssets lists the NPC spritesheets.
func NPCAssets() []Asset {
	var out []Asset
	for _, npc := range npcNames {
		for _, state := range actorStates {
			out = append(out, sheetAsset(
				NPCTextureKey(npc, state),
				fmt.Sprintf("Entities/Npc's/%s/%s/%s-Sheet.png", npc, state, state),
				characterFrame,
			))
		}
	}
	return out
}

// EnvironmentAssets lists static props and the animated pans.
func EnvironmentAssets() []Asset {
	var out []Asset
	for _, prop := range propImages {
		out = append(out, imageAsset("env_"+prop, "Environment/Props/Static/"+prop+".png"))
	}
	for i := 1; i <= animatedPans; i++ {
		out = append(out, sheetAsset(
			fmt.Sprintf("env_Pan_%02d", i),
			fmt.Sprintf("Environment/Props/Animated/Pan_%02d-Sheet.png", i),
			propFrame,
		))
	}
	return out
}

// TilesetAssets lists the tileset images.
func TilesetAssets() []Asset {
	out := make([]Asset, 0, len(tilesetImages))
	for _, ts := range tilesetImages {
		out = append(out, imageAsset("tileset_"+ts, "Environment/Tilesets/"+ts+".png"))
	}
	return out
}

// BuildingAssets lists the building structure images.
func BuildingAssets() []Asset {
	out := make([]Asset, 0, len(buildingImages))
	for _, b := range buildingImages {
		out = append(out, imageAsset("building_"+b, "Environment/Structures/Buildings/"+b+".png"))
	}
	return out
}

// WeaponAssets lists the weapon images.
func WeaponAssets() []Asset {
	out := make([]Asset, 0, len(weaponImages))
	for _, w := range weaponImages {
		out = append(out, imageAsset("weapon_"+w, "Weapons/"+w+"/"+w+".png"))
	}
	return out
}

// Manifest returns every asset in load order.
func Manifest() []Asset {
	var out []Asset
	out = append(out, CharacterAssets()...)
	out = append(out, MonsterAssets()...)
	out = append(out, NPCAssets()...)
	out = append(out, EnvironmentAssets()...)
	out = append(out, TilesetAssets()...)
	out = append(out, BuildingAssets()...)
	out = append(out, WeaponAssets()...)
	return out
}

// MonsterTextureKey returns the texture key of a mob state sheet, e.g. mob_Orc_Idle.
func MonsterTextureKey(mob, state string) string {
	return "mob_" + mob + "_" + state
}

// NPCTextureKey returns the texture key of an NPC state sheet, e.g. npc_Knight_Idle.
func NPCTextureKey(npc, state string) string {
	return "npc_" + npc + "_" + state
}

// PlayerTextureKey returns the texture key of a player animation sheet,
// e.g. player_Walk_Base_Down.
func PlayerTextureKey(folder, dir string) string {
	return "player_" + folder + "_" + dir
}
