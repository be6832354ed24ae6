package game

import (
	"context"
	"io"
	"log"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/audio"
	"github.com/samdwyer/pixelcrawler/internal/save"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

const frame = 16 * time.Millisecond

type recorder struct {
	cues []audio.Cue
	on   bool
}

func (r *recorder) Play(c audio.Cue)   { r.cues = append(r.cues, c) }
func (r *recorder) SetEnabled(on bool) { r.on = on }

func (r *recorder) played(c audio.Cue) bool {
	return slices.Contains(r.cues, c)
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	rec := &recorder{}
	g, err := New(cfg, Options{
		Sound:  rec,
		Store:  save.NewStore(t.TempDir(), ""),
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g, rec
}

func press(keys ...Key) Controls {
	var c Controls
	for _, k := range keys {
		c.Press(k)
	}
	return c
}

// run advances n idle frames.
func run(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Update(context.Background(), frame, Controls{})
	}
}

func step(g *Game, keys ...Key) {
	g.Update(context.Background(), frame, press(keys...))
}

func toMenu(t *testing.T, g *Game) {
	t.Helper()
	run(g, 40)
	if g.Scene() != SceneMenu {
		t.Fatalf("scene after boot = %s, want menu", g.Scene())
	}
}

// startQuiet begins a new game with no monsters to interfere.
func startQuiet(t *testing.T, g *Game) *World {
	t.Helper()
	toMenu(t, g)
	step(g, KeyEnter)
	if g.Scene() != ScenePlay {
		t.Fatalf("scene after NEW GAME = %s, want play", g.Scene())
	}
	w := g.World()
	w.Monsters = nil
	return w
}

func hasMessage(g *Game, want string) bool {
	return slices.Contains(g.Messages(), want)
}

func TestBootReachesMenu(t *testing.T) {
	g, _ := newTestGame(t)
	if g.Scene() != SceneBoot {
		t.Fatalf("initial scene = %s", g.Scene())
	}
	step(g)
	if g.LoadProgress() != 1 {
		t.Errorf("LoadProgress() = %f, want 1", g.LoadProgress())
	}
	rep := g.ScanReport()
	if rep.Total == 0 || rep.Found != 0 {
		t.Errorf("ScanReport() = %d found of %d, want 0 of many", rep.Found, rep.Total)
	}
	if v := g.View(); v.Panel == nil || v.Panel.Lines[0] != "Loading: 100%" {
		t.Errorf("boot view = %+v", v.Panel)
	}
	toMenu(t, g)

	v := g.View()
	if v.Menu == nil || !slices.Equal(v.Menu.Items, []string{"NEW GAME", "CONTINUE", "OPTIONS"}) {
		t.Errorf("menu = %+v", v.Menu)
	}
	if v.Menu.Footer != Version {
		t.Errorf("footer = %q", v.Menu.Footer)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	g, _ := newTestGame(t)
	toMenu(t, g)

	step(g, KeyUp)
	if g.View().Menu.Selected != 2 {
		t.Errorf("Up from top selected %d, want 2", g.View().Menu.Selected)
	}
	step(g, KeyDown)
	if g.View().Menu.Selected != 0 {
		t.Errorf("Down from bottom selected %d, want 0", g.View().Menu.Selected)
	}
}

func TestContinueWithoutSave(t *testing.T) {
	g, _ := newTestGame(t)
	toMenu(t, g)

	step(g, KeyDown)
	step(g, KeyEnter)
	if g.Scene() != SceneMenu {
		t.Errorf("scene = %s, want menu", g.Scene())
	}
	if !hasMessage(g, "No saved game found.") {
		t.Errorf("messages = %v", g.Messages())
	}
}

func TestSaveAndContinue(t *testing.T) {
	g, rec := newTestGame(t)
	w := startQuiet(t, g)
	p := w.Player
	p.AddExp(150)
	p.AddGold(40)
	p.TakeDamage(7)
	want := w.Snapshot()

	step(g, KeyEscape)
	if g.Scene() != ScenePaused {
		t.Fatalf("scene = %s, want paused", g.Scene())
	}
	step(g, KeyDown)
	step(g, KeyEnter)
	if !hasMessage(g, "Game saved.") || !rec.played(audio.CueSave) {
		t.Errorf("save not reported: %v", g.Messages())
	}

	step(g, KeyDown)
	step(g, KeyEnter)
	if g.Scene() != SceneMenu || g.World() != nil {
		t.Fatalf("MAIN MENU left scene %s", g.Scene())
	}

	step(g, KeyDown)
	step(g, KeyEnter)
	if g.Scene() != ScenePlay {
		t.Fatalf("CONTINUE scene = %s, want play", g.Scene())
	}
	got := g.World().Snapshot()
	if got.Seed != want.Seed || got.PlayerStats != want.PlayerStats {
		t.Errorf("continued = %+v, want %+v", got, want)
	}
	if got.PlayerStats.Level != 2 || got.PlayerStats.Gold != 40 {
		t.Errorf("restored stats = %+v", got.PlayerStats)
	}
}

func TestQuickSaveKey(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)
	step(g, KeySave)
	if !g.store.Has(save.SlotKey) {
		t.Error("F5 did not write the save slot")
	}
}

func TestDialogueAndShop(t *testing.T) {
	g, rec := newTestGame(t)
	w := startQuiet(t, g)
	knight := w.NPCs[0]
	if knight.Type != "Knight" {
		t.Fatalf("first NPC = %s", knight.Type)
	}
	w.Player.Pos = world.Point{X: knight.Pos.X, Y: knight.Pos.Y - 40}

	step(g, KeyInteract)
	if g.Scene() != SceneDialogue {
		t.Fatalf("scene = %s, want dialogue", g.Scene())
	}
	if v := g.View(); v.Panel == nil || v.Panel.Title != "Knight" {
		t.Errorf("dialogue panel = %+v", v.Panel)
	}

	step(g, KeyShop)
	if g.Scene() != SceneShop {
		t.Fatalf("scene = %s, want shop", g.Scene())
	}
	v := g.View()
	if v.Panel.Title != "Knight's Shop" || !slices.Contains(v.Panel.Lines, "3. Health Potion - 30G") {
		t.Errorf("shop panel = %+v", v.Panel)
	}

	step(g, Key3)
	if !hasMessage(g, "Not enough gold.") {
		t.Errorf("messages = %v", g.Messages())
	}

	w.Player.AddGold(45)
	step(g, Key3)
	inv := w.Player.Inventory
	if inv.Gold != 15 || len(inv.Items) != 1 || inv.Items[0].Name != "Health Potion" {
		t.Errorf("after buying: gold %d, items %v", inv.Gold, inv.Items)
	}
	if !hasMessage(g, "Bought Health Potion.") || !rec.played(audio.CueCoin) {
		t.Errorf("purchase not reported: %v", g.Messages())
	}

	step(g, KeyEscape)
	if g.Scene() != ScenePlay {
		t.Errorf("scene = %s, want play", g.Scene())
	}
}

func TestInteractOutOfRange(t *testing.T) {
	g, _ := newTestGame(t)
	w := startQuiet(t, g)
	n := w.NPCs[0]
	w.Player.Pos = world.Point{X: n.Pos.X, Y: n.Pos.Y - 50}

	step(g, KeyInteract)
	if g.Scene() != ScenePlay {
		t.Errorf("scene = %s, want play at distance 50", g.Scene())
	}
}

func TestInventoryUsePotion(t *testing.T) {
	g, _ := newTestGame(t)
	w := startQuiet(t, g)
	p := w.Player
	knight := w.Deps().NPCs.GetByID("Knight")
	p.Inventory.Add(knight.Shop[0]) // Iron Sword
	p.Inventory.Add(knight.Shop[2]) // Health Potion
	p.TakeDamage(60)

	step(g, KeyInventory)
	if g.Scene() != SceneInventory {
		t.Fatalf("scene = %s, want inventory", g.Scene())
	}
	if v := g.View(); !slices.Contains(v.Panel.Lines, "2. Health Potion") {
		t.Errorf("inventory lines = %v", v.Panel.Lines)
	}

	step(g, Key1)
	if !hasMessage(g, "Iron Sword cannot be used.") {
		t.Errorf("messages = %v", g.Messages())
	}
	step(g, Key2)
	if p.Stats.HP != 90 || len(p.Inventory.Items) != 1 {
		t.Errorf("after potion: HP %d, items %d", p.Stats.HP, len(p.Inventory.Items))
	}
	if !hasMessage(g, "Healed 50 HP.") {
		t.Errorf("messages = %v", g.Messages())
	}

	step(g, KeyInventory)
	if g.Scene() != ScenePlay {
		t.Errorf("scene = %s, want play", g.Scene())
	}
}

func TestAttackKillsAndReports(t *testing.T) {
	g, rec := newTestGame(t)
	w := startQuiet(t, g)
	full := NewWorld(context.Background(), 42, w.Deps())
	m := full.Monsters[0]
	m.HP = 1
	m.Pos = world.Point{X: w.Player.Pos.X, Y: w.Player.Pos.Y + 20}
	w.Monsters = append(w.Monsters, m)

	step(g, KeyAttack)
	if !m.IsDead() {
		t.Fatal("monster in reach survived a lethal swing")
	}
	if !rec.played(audio.CueAttack) || !rec.played(audio.CueMonsterDeath) {
		t.Errorf("cues = %v", rec.cues)
	}
	prefix := "Defeated " + m.Def.Name
	if !slices.ContainsFunc(g.Messages(), func(s string) bool { return strings.HasPrefix(s, prefix) }) {
		t.Errorf("messages = %v", g.Messages())
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g, rec := newTestGame(t)
	w := startQuiet(t, g)
	w.Player.TakeDamage(1000)

	step(g)
	if !rec.played(audio.CueGameOver) {
		t.Error("no game over cue")
	}
	if g.Scene() != ScenePlay {
		t.Errorf("scene switched before the death hold: %s", g.Scene())
	}
	run(g, int(gameOverHold/frame)+2)
	if g.Scene() != SceneGameOver {
		t.Fatalf("scene = %s, want game over", g.Scene())
	}
	if v := g.View(); v.Panel == nil || v.Panel.Title != "GAME OVER" {
		t.Errorf("game over panel = %+v", v.Panel)
	}

	step(g, KeyEnter)
	if g.Scene() != SceneMenu || g.World() != nil {
		t.Errorf("scene = %s after ENTER", g.Scene())
	}
}

func TestOptionsToggleLocaleAndSound(t *testing.T) {
	g, rec := newTestGame(t)
	toMenu(t, g)

	step(g, KeyUp)
	step(g, KeyEnter)
	v := g.View()
	if v.Menu.Title != "OPTIONS" || v.Menu.Items[1] != "Sound: ON" {
		t.Fatalf("options menu = %+v", v.Menu)
	}

	step(g, KeyEnter)
	if g.Text().Locale() != "ko" {
		t.Errorf("locale = %s, want ko", g.Text().Locale())
	}
	if items := g.View().Menu.Items; items[0] != "언어: 한국어" || items[2] != "뒤로" {
		t.Errorf("korean options = %v", items)
	}

	step(g, KeyDown)
	step(g, KeyEnter)
	if g.SoundOn() || rec.on {
		t.Error("sound still on after toggle")
	}

	n := len(rec.cues)
	step(g, KeyEscape)
	if v := g.View(); v.Menu.Items[0] != "새 게임" || v.Menu.Selected != 2 {
		t.Errorf("back on main menu = %+v", v.Menu)
	}
	step(g, KeyDown)
	step(g, KeyEnter)
	if len(rec.cues) != n {
		t.Error("cues played while sound is off")
	}
}

func TestQuitKey(t *testing.T) {
	g, _ := newTestGame(t)
	if g.Update(context.Background(), frame, press(KeyQuit)) {
		t.Error("Update() = true after quit")
	}
}

func TestMessagesExpire(t *testing.T) {
	g, _ := newTestGame(t)
	toMenu(t, g)
	for i := 0; i < maxMessages+2; i++ {
		g.say("Game saved.")
	}
	if len(g.Messages()) != maxMessages {
		t.Errorf("len(Messages()) = %d, want %d", len(g.Messages()), maxMessages)
	}
	run(g, int(messageTTL/frame)+1)
	if len(g.Messages()) != 0 {
		t.Errorf("messages survived their lifetime: %v", g.Messages())
	}
}
