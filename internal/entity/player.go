package entity

import (
	"math"
	"strings"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/gamedata"
	"github.com/samdwyer/pixelcrawler/internal/schedule"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// Direction is the way an entity faces.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// sheet returns the spritesheet direction; left and right share the side view.
func (d Direction) sheet() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft, DirRight:
		return "Side"
	default:
		return "Down"
	}
}

// Vector returns the unit vector of the direction.
func (d Direction) Vector() world.Point {
	switch d {
	case DirUp:
		return world.Point{Y: -1}
	case DirLeft:
		return world.Point{X: -1}
	case DirRight:
		return world.Point{X: 1}
	default:
		return world.Point{Y: 1}
	}
}

// Input is the keyboard state sampled for one frame. Movement keys are held
// state; Attack, Interact and Inventory are true only on the frame the key
// went down.
type Input struct {
	Up, Down, Left, Right bool
	Attack                bool
	Interact              bool
	Inventory             bool
}

// Actions reports what the player asked for during an update.
type Actions struct {
	Attacked      bool
	Interact      bool
	OpenInventory bool
}

// Stats holds the player's stat block.
type Stats struct {
	Level       int
	HP          int
	MaxHP       int
	Speed       int
	AttackPower int
	Exp         int
}

// Player is the character controlled by the keyboard.
type Player struct {
	Body
	Stats     Stats
	Inventory *Inventory
	Facing    Direction
	Reach     float64

	tuning    gamedata.PlayerTuning
	queue     *schedule.Queue
	clips     *assets.Library
	attacking bool
	dead      bool
}

// player animation sets: clip name and the spritesheet folder it plays
var playerAnimations = []struct {
	name   string
	folder string
}{
	{"idle", "Idle_Base"},
	{"walk", "Walk_Base"},
	{"run", "Run_Base"},
	{"attack", "Slice_Base"},
	{"death", "Death_Base"},
}

const playerFrameRate = 10

// NewPlayer creates a player from its definition at pos. Timed effects are
// scheduled on queue; clips may be nil when no textures are available.
func NewPlayer(def gamedata.PlayerDef, tuning gamedata.PlayerTuning, pos world.Point, queue *schedule.Queue, clips *assets.Library) *Player {
	p := &Player{
		Body: newBody(pos, CollisionSize, CollisionSize),
		Stats: Stats{
			Level:       def.Level,
			HP:          def.HP,
			MaxHP:       def.MaxHP,
			Speed:       def.Speed,
			AttackPower: def.AttackPower,
		},
		Inventory: NewInventory(def.InventorySlots, def.Gold),
		Facing:    DirDown,
		Reach:     float64(def.AttackReach),
		tuning:    tuning,
		queue:     queue,
		clips:     clips,
	}
	p.DisplaySize = 32
	p.Placeholder = def.Tint.RGBA()
	p.Texture = assets.PlayerTextureKey("Idle_Base", "Down")
	p.createAnimations()
	return p
}

func (p *Player) createAnimations() {
	if p.clips == nil {
		return
	}
	for _, dir := range []string{"Down", "Side", "Up"} {
		for _, anim := range playerAnimations {
			texture := assets.PlayerTextureKey(anim.folder, dir)
			p.clips.Create(playerClipKey(anim.name, dir), texture, playerFrameRate, anim.name == "idle", 1)
		}
	}
}

// playerClipKey returns e.g. player_walk_side.
func playerClipKey(name, dir string) string {
	return "player_" + name + "_" + strings.ToLower(dir)
}

// Update applies one frame of input. Nothing happens while the player is
// dead or mid-attack, so the velocity from before the attack is kept.
func (p *Player) Update(in Input) Actions {
	var act Actions
	if p.dead || p.attacking {
		return act
	}

	var vx, vy float64
	if in.Up {
		vy = -1
		p.Facing = DirUp
	} else if in.Down {
		vy = 1
		p.Facing = DirDown
	}
	if in.Left {
		vx = -1
		p.Facing = DirLeft
	} else if in.Right {
		vx = 1
		p.Facing = DirRight
	}

	if vx != 0 && vy != 0 {
		length := math.Sqrt(vx*vx + vy*vy)
		vx /= length
		vy /= length
	}
	speed := float64(p.Stats.Speed)
	p.SetVelocity(vx*speed, vy*speed)

	if in.Attack {
		act.Attacked = p.attack()
	}
	if in.Interact {
		act.Interact = true
	}
	if in.Inventory {
		act.OpenInventory = true
	}

	if !p.attacking {
		p.updateAnimation(vx != 0 || vy != 0)
	}
	return act
}

func (p *Player) updateAnimation(moving bool) {
	name := "idle"
	if moving {
		name = "walk"
	}
	p.play(name, false)

	switch p.Facing {
	case DirLeft:
		p.FlipX = true
	case DirRight:
		p.FlipX = false
	}
}

func (p *Player) play(name string, restart bool) {
	if p.clips == nil {
		return
	}
	if clip, ok := p.clips.Get(playerClipKey(name, p.Facing.sheet())); ok {
		p.Anim.Play(clip, restart)
	}
}

// attack starts the attack lock. Returns false if an attack is running.
func (p *Player) attack() bool {
	if p.attacking {
		return false
	}
	p.attacking = true
	p.play("attack", true)
	p.queue.After(p.tuning.AttackCooldown, func() {
		p.attacking = false
	})
	return true
}

// IsAttacking reports whether the attack lock is held.
func (p *Player) IsAttacking() bool {
	return p.attacking
}

// IsDead reports whether the player has died.
func (p *Player) IsDead() bool {
	return p.dead
}

// TakeDamage reduces HP, never below zero, and returns the damage taken.
// The player dies when HP reaches zero.
func (p *Player) TakeDamage(amount int) int {
	if p.dead || amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Stats.HP {
		actual = p.Stats.HP
	}
	p.Stats.HP -= actual
	if p.Stats.HP <= 0 {
		p.die()
	}
	return actual
}

// Heal restores HP, never above MaxHP, and returns the amount healed.
func (p *Player) Heal(amount int) int {
	if p.dead || amount <= 0 {
		return 0
	}
	actual := amount
	if p.Stats.HP+actual > p.Stats.MaxHP {
		actual = p.Stats.MaxHP - p.Stats.HP
	}
	p.Stats.HP += actual
	return actual
}

func (p *Player) die() {
	p.dead = true
	p.Stop()
	if p.clips != nil {
		if clip, ok := p.clips.Get(playerClipKey("death", p.Facing.sheet())); ok {
			p.Anim.Play(clip, true)
		}
	}
}

// ExpToLevel returns the experience needed to leave the current level.
func (p *Player) ExpToLevel() int {
	return p.Stats.Level * p.tuning.LevelExp
}

// AddExp grants experience and returns the number of levels gained. Each
// level raises MaxHP and AttackPower and fully heals the player.
func (p *Player) AddExp(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Stats.Exp += amount
	gained := 0
	for p.tuning.LevelExp > 0 && p.Stats.Exp >= p.ExpToLevel() {
		p.Stats.Exp -= p.ExpToLevel()
		p.Stats.Level++
		p.Stats.MaxHP += p.tuning.LevelHP
		p.Stats.AttackPower += p.tuning.LevelAttack
		p.Stats.HP = p.Stats.MaxHP
		gained++
	}
	return gained
}

// AddGold adds gold to the inventory.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Inventory.Gold += amount
	}
}

// Restore applies saved progress.
func (p *Player) Restore(pos world.Point, stats Stats, gold int) {
	p.Pos = pos
	stats.Speed = p.Stats.Speed
	if stats.HP <= 0 || stats.MaxHP <= 0 {
		stats.HP, stats.MaxHP = p.Stats.HP, p.Stats.MaxHP
	}
	if stats.HP > stats.MaxHP {
		stats.HP = stats.MaxHP
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	if stats.AttackPower <= 0 {
		stats.AttackPower = p.Stats.AttackPower
	}
	p.Stats = stats
	p.Inventory.Gold = gold
}
