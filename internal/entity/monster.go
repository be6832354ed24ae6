package entity

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/gamedata"
	"github.com/samdwyer/pixelcrawler/internal/schedule"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// MonsterState is the monster AI state.
type MonsterState int

const (
	MonsterIdle MonsterState = iota
	MonsterChasing
	MonsterAttacking
	MonsterDead
)

// String returns a human-readable state name.
func (s MonsterState) String() string {
	switch s {
	case MonsterIdle:
		return "idle"
	case MonsterChasing:
		return "chasing"
	case MonsterAttacking:
		return "attacking"
	case MonsterDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Target is what a monster hunts.
type Target interface {
	Position() world.Point
	IsDead() bool
	TakeDamage(amount int) int
}

var (
	hitTint   = color.RGBA{R: 0xff, A: 0xff}
	deathTint = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// per-state clip frame rates and looping
var monsterAnimations = []struct {
	state     string
	frameRate float64
	loop      bool
}{
	{"Idle", 4, true},
	{"Run", 15, true},
	{"Death", 12, false},
}

// Monster is a hostile creature driven by a timed AI.
type Monster struct {
	Body
	Def         *gamedata.MonsterDef
	Type        string
	HP          int
	MaxHP       int
	Speed       float64
	AttackPower int
	Exp         int
	Gold        int
	State       MonsterState

	tuning     gamedata.MonsterTuning
	queue      *schedule.Queue
	clips      *assets.Library
	aiTimer    time.Duration
	onCooldown bool
	running    bool // Last animation state was run
	removed    bool
	flash      schedule.ID
}

// NewMonster creates a monster of the given type at pos.
func NewMonster(def *gamedata.MonsterDef, tuning gamedata.MonsterTuning, pos world.Point, queue *schedule.Queue, clips *assets.Library) *Monster {
	m := &Monster{
		Body:        newBody(pos, CollisionSize, CollisionSize),
		Def:         def,
		Type:        def.ID,
		HP:          def.HP,
		MaxHP:       def.HP,
		Speed:       float64(def.Speed),
		AttackPower: def.AttackPower,
		Exp:         def.Exp,
		Gold:        def.Gold,
		State:       MonsterIdle,
		tuning:      tuning,
		queue:       queue,
		clips:       clips,
	}
	m.Placeholder = def.Tint.RGBA()
	m.Texture = assets.MonsterTextureKey(m.Type, "Idle")
	m.createAnimations()
	return m
}

func (m *Monster) createAnimations() {
	if m.clips == nil {
		return
	}
	for _, anim := range monsterAnimations {
		m.clips.Create(m.clipKey(anim.state), assets.MonsterTextureKey(m.Type, anim.state), anim.frameRate, anim.loop, 1)
	}
}

// clipKey returns e.g. mob_Orc_run.
func (m *Monster) clipKey(state string) string {
	return "mob_" + m.Type + "_" + strings.ToLower(state)
}

// IsDead reports whether the monster has died.
func (m *Monster) IsDead() bool {
	return m.State == MonsterDead
}

// Removed reports whether the corpse has been cleared from the world.
func (m *Monster) Removed() bool {
	return m.removed
}

// OnCooldown reports whether the monster is waiting to attack again.
func (m *Monster) OnCooldown() bool {
	return m.onCooldown
}

// Update accumulates frame time and runs the AI once per interval.
func (m *Monster) Update(dt time.Duration, target Target) {
	if m.IsDead() {
		return
	}
	m.aiTimer += dt
	if m.aiTimer >= m.tuning.AIInterval {
		m.aiTimer = 0
		m.Think(target)
	}
	m.updateAnimation()
}

// Think evaluates one AI decision against target.
func (m *Monster) Think(target Target) {
	if m.IsDead() {
		return
	}
	if target == nil || target.IsDead() {
		m.State = MonsterIdle
		m.Stop()
		return
	}

	distance := world.Distance(m.Pos, target.Position())
	switch {
	case distance < m.tuning.AttackRange:
		m.State = MonsterAttacking
		m.attack(target)
	case distance < m.tuning.DetectionRange:
		m.State = MonsterChasing
		m.chase(target.Position())
	default:
		m.State = MonsterIdle
		m.Stop()
	}
}

func (m *Monster) chase(p world.Point) {
	angle := world.Angle(m.Pos, p)
	vx := math.Cos(angle) * m.Speed
	vy := math.Sin(angle) * m.Speed
	m.SetVelocity(vx, vy)
	m.FlipX = vx < 0
}

func (m *Monster) attack(target Target) {
	m.Stop()
	if m.onCooldown {
		return
	}
	m.onCooldown = true
	target.TakeDamage(m.AttackPower)
	m.queue.After(m.tuning.AttackCooldown, func() {
		m.onCooldown = false
	})
}

// updateAnimation switches between the run clip and the idle frame, only
// when the moving state changes.
func (m *Monster) updateAnimation() {
	running := m.Moving(m.tuning.MovingThreshold)
	if running == m.running {
		return
	}
	m.running = running

	if running {
		if clip, ok := m.clip("Run"); ok {
			m.Anim.Play(clip, false)
		}
		return
	}
	m.ShowStatic(assets.MonsterTextureKey(m.Type, "Idle"))
}

func (m *Monster) clip(state string) (*assets.Clip, bool) {
	if m.clips == nil {
		return nil, false
	}
	return m.clips.Get(m.clipKey(state))
}

// TakeDamage applies damage with a brief red flash. Returns true when the
// hit killed the monster.
func (m *Monster) TakeDamage(amount int) bool {
	if m.IsDead() {
		return false
	}
	m.HP -= amount

	m.queue.Cancel(m.flash)
	m.SetTint(hitTint)
	m.flash = m.queue.After(m.tuning.HitFlash, m.ClearTint)

	if m.HP <= 0 {
		m.die()
		return true
	}
	return false
}

// die stops the monster, disables its body and schedules its removal.
func (m *Monster) die() {
	m.State = MonsterDead
	m.Stop()
	m.Enabled = false
	m.queue.Cancel(m.flash)
	m.ClearTint()

	if clip, ok := m.clip("Death"); ok {
		m.Anim.Play(clip, true)
	} else {
		m.SetTint(deathTint)
		m.Alpha = 0.5
	}

	m.queue.After(m.tuning.RemovalDelay, func() {
		m.removed = true
	})
}
