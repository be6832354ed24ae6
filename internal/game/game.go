package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/audio"
	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/i18n"
	"github.com/samdwyer/pixelcrawler/internal/save"
	"github.com/samdwyer/pixelcrawler/internal/schedule"
)

// Version is shown on the title menu.
const Version = "v0.1.0 Alpha"

const (
	bootHold     = 500 * time.Millisecond
	gameOverHold = 1500 * time.Millisecond
	messageTTL   = 3 * time.Second
	maxMessages  = 4
)

// Options are the collaborators a Game is built with. Nil fields get
// defaults: an empty asset pack, no sound, a store under Config.SaveDir.
type Options struct {
	Catalog *assets.Catalog
	Sound   audio.Player
	Store   *save.Store
	Logger  *log.Logger
}

// soundSwitch is implemented by players that can be muted.
type soundSwitch interface {
	SetEnabled(on bool)
}

type message struct {
	text    string
	expires time.Duration
}

// Game holds the entire game state.
type Game struct {
	cfg     Config
	deps    Deps
	catalog *assets.Catalog
	store   *save.Store
	text    *i18n.Catalog
	sound   audio.Player
	soundOn bool
	logger  *log.Logger

	scene    Scene
	world    *World
	clock    *schedule.Queue // Scene timers, advanced in every scene
	boot     bootProgress
	menu     menuState
	npc      *entity.NPC // Dialogue and shop partner
	line     string
	messages []message
	dying    bool
	quit     bool
}

type bootProgress struct {
	started bool
	done    int
	total   int
	report  assets.ScanReport
}

// New creates a new game instance at the boot scene.
func New(cfg Config, opts Options) (*Game, error) {
	text, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = assets.NewCatalog(nil, assets.Manifest(), logger)
	}
	deps, err := LoadDeps(cfg.TuningPath, assets.NewLibrary(catalog))
	if err != nil {
		return nil, err
	}
	store := opts.Store
	if store == nil {
		store = save.NewStore(cfg.SaveDir, save.DefaultPrefix)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}

	g := &Game{
		cfg:     cfg,
		deps:    deps,
		catalog: catalog,
		store:   store,
		text:    text,
		sound:   sound,
		soundOn: cfg.Audio,
		logger:  logger,
		scene:   SceneBoot,
		clock:   schedule.New(),
	}
	if s, ok := sound.(soundSwitch); ok {
		s.SetEnabled(cfg.Audio)
	}
	return g, nil
}

// Scene returns the active scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// World returns the running session, or nil outside of play.
func (g *Game) World() *World {
	return g.world
}

// Catalog returns the asset catalog.
func (g *Game) Catalog() *assets.Catalog {
	return g.catalog
}

// Text returns the active translation catalog.
func (g *Game) Text() *i18n.Catalog {
	return g.text
}

// Update runs one frame. It returns false once the game wants to exit.
func (g *Game) Update(ctx context.Context, dt time.Duration, c Controls) bool {
	if c.Pressed(KeyQuit) {
		g.quit = true
		return false
	}
	g.clock.Advance(dt)

	switch g.scene {
	case SceneBoot:
		g.updateBoot(ctx)
	case SceneMenu:
		g.updateMenu(ctx, c)
	case ScenePlay:
		g.updatePlay(ctx, dt, c)
	case ScenePaused:
		g.updatePaused(ctx, c)
	case SceneInventory:
		g.updateInventory(c)
	case SceneDialogue:
		g.updateDialogue(c)
	case SceneShop:
		g.updateShop(c)
	case SceneGameOver:
		if c.Pressed(KeyEnter) {
			g.play(audio.CueMenuSelect)
			g.world = nil
			g.setScene(SceneMenu)
		}
	}

	g.expireMessages()
	return !g.quit
}

func (g *Game) setScene(s Scene) {
	if s != g.scene {
		g.logger.Printf("game: scene %s -> %s", g.scene, s)
	}
	g.scene = s
	g.menu.selected = 0
	if s == SceneMenu {
		g.menu.page = pageMain
	}
}

func (g *Game) updateBoot(ctx context.Context) {
	if g.boot.started {
		return
	}
	g.boot.started = true
	g.boot.report = g.catalog.Scan(ctx, func(done, total int, _ string) {
		g.boot.done, g.boot.total = done, total
	})
	g.clock.After(bootHold, func() {
		g.setScene(SceneMenu)
	})
}

// LoadProgress returns the fraction of the manifest scanned so far.
func (g *Game) LoadProgress() float64 {
	if g.boot.total == 0 {
		if g.boot.started {
			return 1
		}
		return 0
	}
	return float64(g.boot.done) / float64(g.boot.total)
}

// ScanReport returns the result of the boot scan.
func (g *Game) ScanReport() assets.ScanReport {
	return g.boot.report
}

// NewGame starts a session. A zero configured seed picks one from the clock.
func (g *Game) NewGame(ctx context.Context) {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.start(ctx, seed)
	g.logger.Printf("game: new game, seed %d, %d rooms", seed, len(g.world.Dungeon.Rooms))
}

// Continue resumes the saved session. Without a usable save it stays on the
// menu and says so.
func (g *Game) Continue(ctx context.Context) bool {
	d, ok, err := g.store.ReadSlot(ctx)
	if err != nil {
		g.logger.Printf("save: %v", err)
	}
	if !ok {
		g.say("No saved game found.")
		return false
	}
	g.start(ctx, d.Seed)
	g.world.Restore(d)
	g.say("Game loaded.")
	g.logger.Printf("game: continued save from %s", d.SavedAt().Format(time.RFC3339))
	return true
}

func (g *Game) start(ctx context.Context, seed int64) {
	g.world = NewWorld(ctx, seed, g.deps)
	g.dying = false
	g.npc = nil
	g.messages = nil
	g.setScene(ScenePlay)
}

// Save writes the session to the save slot.
func (g *Game) Save(ctx context.Context) error {
	if g.world == nil {
		return errors.New("no game in progress")
	}
	if err := g.store.WriteSlot(ctx, g.world.Snapshot()); err != nil {
		g.logger.Printf("save: %v", err)
		g.say("Save failed.")
		return err
	}
	g.play(audio.CueSave)
	g.say("Game saved.")
	return nil
}

func (g *Game) updatePlay(ctx context.Context, dt time.Duration, c Controls) {
	if c.Pressed(KeyEscape) {
		g.setScene(ScenePaused)
		return
	}
	if c.Pressed(KeySave) {
		g.Save(ctx)
	}

	st := g.world.Update(ctx, dt, entity.Input{
		Up:        c.Held(KeyUp),
		Down:      c.Held(KeyDown),
		Left:      c.Held(KeyLeft),
		Right:     c.Held(KeyRight),
		Attack:    c.Pressed(KeyAttack),
		Interact:  c.Pressed(KeyInteract),
		Inventory: c.Pressed(KeyInventory),
	})
	g.report(st)

	if g.world.Player.IsDead() {
		if !g.dying {
			g.dying = true
			g.play(audio.CueGameOver)
			g.logger.Printf("game: player died at level %d", g.world.Player.Stats.Level)
			g.world.After(gameOverHold, func() {
				g.setScene(SceneGameOver)
			})
		}
		return
	}

	if st.Actions.Interact {
		if n := g.world.NearestNPC(); n != nil {
			g.npc = n
			g.line = g.world.Line(n)
			g.setScene(SceneDialogue)
			return
		}
	}
	if st.Actions.OpenInventory {
		g.setScene(SceneInventory)
	}
}

// report turns a step's events into sounds and messages.
func (g *Game) report(st Step) {
	if st.Actions.Attacked {
		g.play(audio.CueAttack)
	}
	for _, hit := range st.Hits {
		if !hit.Killed {
			g.play(audio.CueHit)
			continue
		}
		name := g.text.Get(hit.Monster.Def.Name)
		g.play(audio.CueMonsterDeath)
		g.say("Defeated %s: +%d EXP, +%d G", name, hit.Reward.Exp, hit.Reward.Gold)
		if hit.Reward.Gold > 0 {
			g.play(audio.CueCoin)
		}
		if hit.Reward.Loot {
			g.say("%s dropped an item!", name)
		}
		if hit.Reward.Levels > 0 {
			g.play(audio.CueLevelUp)
			g.say("Level up! You are now level %d.", g.world.Player.Stats.Level)
		}
	}
	if st.Damage > 0 {
		g.play(audio.CuePlayerHurt)
	}
}

func (g *Game) updatePaused(ctx context.Context, c Controls) {
	if c.Pressed(KeyEscape) {
		g.setScene(ScenePlay)
		return
	}
	switch g.navigate(c, len(pauseItems)) {
	case 0:
		g.setScene(ScenePlay)
	case 1:
		g.Save(ctx)
	case 2:
		g.world = nil
		g.setScene(SceneMenu)
	}
}

func (g *Game) updateInventory(c Controls) {
	if c.Pressed(KeyEscape) || c.Pressed(KeyInventory) {
		g.setScene(ScenePlay)
		return
	}
	n, ok := c.PressedDigit()
	if !ok {
		return
	}
	p := g.world.Player
	if n > len(p.Inventory.Items) {
		return
	}
	item := p.Inventory.Items[n-1]
	healed, err := p.Inventory.Use(n-1, p)
	switch {
	case errors.Is(err, entity.ErrNotUsable):
		g.say("%s cannot be used.", g.text.Get(item.Name))
	case err != nil:
		g.logger.Printf("inventory: %v", err)
	default:
		g.play(audio.CueMenuSelect)
		g.say("Healed %d HP.", healed)
	}
}

func (g *Game) updateDialogue(c Controls) {
	switch {
	case c.Pressed(KeyEscape):
		g.setScene(ScenePlay)
	case c.Pressed(KeyShop) && len(g.npc.Shop) > 0:
		g.play(audio.CueMenuSelect)
		g.setScene(SceneShop)
	}
}

func (g *Game) updateShop(c Controls) {
	if c.Pressed(KeyEscape) {
		g.setScene(ScenePlay)
		return
	}
	n, ok := c.PressedDigit()
	if !ok {
		return
	}
	item, ok := g.npc.Item(n - 1)
	if !ok {
		return
	}
	err := g.world.Player.Inventory.Buy(item)
	switch {
	case errors.Is(err, entity.ErrNotEnoughGold):
		g.say("Not enough gold.")
	case errors.Is(err, entity.ErrInventoryFull):
		g.say("Inventory full.")
	case err != nil:
		g.logger.Printf("shop: %v", err)
	default:
		g.play(audio.CueCoin)
		g.say("Bought %s.", g.text.Get(item.Name))
	}
}

// play sounds c when audio is on.
func (g *Game) play(c audio.Cue) {
	if g.soundOn {
		g.sound.Play(c)
	}
}

// SoundOn reports whether sound effects are enabled.
func (g *Game) SoundOn() bool {
	return g.soundOn
}

func (g *Game) toggleSound() {
	g.soundOn = !g.soundOn
	if s, ok := g.sound.(soundSwitch); ok {
		s.SetEnabled(g.soundOn)
	}
}

// say queues a translated message for the HUD.
func (g *Game) say(id string, vars ...any) {
	text := g.text.Get(id, vars...)
	g.messages = append(g.messages, message{text: text, expires: g.clock.Now() + messageTTL})
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) expireMessages() {
	now := g.clock.Now()
	kept := g.messages[:0]
	for _, m := range g.messages {
		if m.expires > now {
			kept = append(kept, m)
		}
	}
	g.messages = kept
}

// Messages returns the messages currently shown, oldest first.
func (g *Game) Messages() []string {
	out := make([]string, len(g.messages))
	for i, m := range g.messages {
		out[i] = m.text
	}
	return out
}
