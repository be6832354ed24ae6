package entity

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/gamedata"
	"github.com/samdwyer/pixelcrawler/internal/schedule"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

var tuning = gamedata.MustLoadTuning()

func newTestPlayer(q *schedule.Queue) *Player {
	return NewPlayer(gamedata.MustLoadPlayer(), tuning.Player, world.Point{X: 100, Y: 100}, q, nil)
}

func newTestMonster(q *schedule.Queue, id string) *Monster {
	def := gamedata.MustLoadMonsterRegistry().Lookup(id)
	return NewMonster(def, tuning.Monster, world.Point{}, q, nil)
}

type fakeTarget struct {
	pos    world.Point
	dead   bool
	damage int
	hits   int
}

func (f *fakeTarget) Position() world.Point { return f.pos }
func (f *fakeTarget) IsDead() bool          { return f.dead }
func (f *fakeTarget) TakeDamage(amount int) int {
	f.damage += amount
	f.hits++
	return amount
}

func TestPlayerMovement(t *testing.T) {
	diag := 200 / math.Sqrt2
	tests := []struct {
		name   string
		in     Input
		vx, vy float64
		facing Direction
	}{
		{"none", Input{}, 0, 0, DirDown},
		{"up", Input{Up: true}, 0, -200, DirUp},
		{"right", Input{Right: true}, 200, 0, DirRight},
		{"up wins over down", Input{Up: true, Down: true}, 0, -200, DirUp},
		{"left wins over right", Input{Left: true, Right: true}, -200, 0, DirLeft},
		{"diagonal", Input{Down: true, Right: true}, diag, diag, DirRight},
	}

	for _, tt := range tests {
		p := newTestPlayer(schedule.New())
		p.Update(tt.in)
		if math.Abs(p.Vel.X-tt.vx) > 1e-9 || math.Abs(p.Vel.Y-tt.vy) > 1e-9 {
			t.Errorf("%s: velocity = %+v, want (%v, %v)", tt.name, p.Vel, tt.vx, tt.vy)
		}
		if p.Facing != tt.facing {
			t.Errorf("%s: facing = %v, want %v", tt.name, p.Facing, tt.facing)
		}
	}
}

func TestPlayerDiagonalHasUnitSpeed(t *testing.T) {
	p := newTestPlayer(schedule.New())
	p.Update(Input{Up: true, Left: true})
	if speed := math.Hypot(p.Vel.X, p.Vel.Y); math.Abs(speed-200) > 1e-9 {
		t.Errorf("diagonal speed = %v, want 200", speed)
	}
}

func TestPlayerAttackLock(t *testing.T) {
	q := schedule.New()
	p := newTestPlayer(q)

	p.Update(Input{Right: true})
	if act := p.Update(Input{Right: true, Attack: true}); !act.Attacked {
		t.Fatal("Attack input did not start an attack")
	}
	if !p.IsAttacking() {
		t.Fatal("IsAttacking() = false after attacking")
	}

	// Input is ignored while the lock is held, velocity included.
	if act := p.Update(Input{Up: true, Attack: true, Inventory: true}); act != (Actions{}) {
		t.Errorf("Update during attack = %+v, want no actions", act)
	}
	if p.Vel.X != 200 || p.Vel.Y != 0 {
		t.Errorf("velocity during attack = %+v, want unchanged (200, 0)", p.Vel)
	}

	q.Advance(499 * time.Millisecond)
	if !p.IsAttacking() {
		t.Error("attack lock released early")
	}
	q.Advance(time.Millisecond)
	if p.IsAttacking() {
		t.Error("attack lock still held after 500ms")
	}
	if act := p.Update(Input{Attack: true}); !act.Attacked {
		t.Error("cannot attack again after the lock expired")
	}
}

func TestPlayerEdgeActions(t *testing.T) {
	p := newTestPlayer(schedule.New())
	act := p.Update(Input{Interact: true, Inventory: true})
	if !act.Interact || !act.OpenInventory || act.Attacked {
		t.Errorf("Update() = %+v, want interact and inventory", act)
	}
}

func TestPlayerDamageAndHeal(t *testing.T) {
	p := newTestPlayer(schedule.New())

	if got := p.TakeDamage(30); got != 30 || p.Stats.HP != 70 {
		t.Errorf("TakeDamage(30) = %d, HP = %d, want 30, 70", got, p.Stats.HP)
	}
	if got := p.Heal(50); got != 30 || p.Stats.HP != 100 {
		t.Errorf("Heal(50) = %d, HP = %d, want 30, 100", got, p.Stats.HP)
	}
	if got := p.TakeDamage(250); got != 100 || p.Stats.HP != 0 {
		t.Errorf("TakeDamage(250) = %d, HP = %d, want 100, 0", got, p.Stats.HP)
	}
	if !p.IsDead() {
		t.Fatal("player should be dead at 0 HP")
	}
	if p.Vel != (world.Point{}) {
		t.Errorf("dead player velocity = %+v, want zero", p.Vel)
	}
	if p.Heal(10) != 0 || p.Stats.HP != 0 {
		t.Error("dead player should not heal")
	}
	if act := p.Update(Input{Up: true, Attack: true}); act.Attacked || p.Vel != (world.Point{}) {
		t.Error("dead player should ignore input")
	}
}

func TestPlayerAddExp(t *testing.T) {
	p := newTestPlayer(schedule.New())
	p.TakeDamage(40)

	if gained := p.AddExp(99); gained != 0 || p.Stats.Level != 1 {
		t.Fatalf("AddExp(99) gained %d levels, level %d", gained, p.Stats.Level)
	}
	if gained := p.AddExp(1); gained != 1 {
		t.Fatalf("AddExp(1) gained %d levels, want 1", gained)
	}
	want := Stats{Level: 2, HP: 110, MaxHP: 110, Speed: 200, AttackPower: 12, Exp: 0}
	if p.Stats != want {
		t.Errorf("stats after level up = %+v, want %+v", p.Stats, want)
	}

	// Level 2 needs 200, level 3 needs 300.
	if gained := p.AddExp(250); gained != 1 || p.Stats.Level != 3 || p.Stats.Exp != 50 {
		t.Errorf("AddExp(250) gained %d, level %d exp %d, want 1, 3, 50", gained, p.Stats.Level, p.Stats.Exp)
	}

	p.AddGold(25)
	p.AddGold(-5)
	if p.Inventory.Gold != 25 {
		t.Errorf("Gold = %d, want 25", p.Inventory.Gold)
	}
}

func TestMonsterStatsFromDefinition(t *testing.T) {
	q := schedule.New()
	m := newTestMonster(q, "OrcWarrior")
	if m.HP != 80 || m.MaxHP != 80 || m.Speed != 70 || m.AttackPower != 18 || m.Exp != 40 || m.Gold != 25 {
		t.Errorf("OrcWarrior = hp %d/%d speed %v atk %d exp %d gold %d", m.HP, m.MaxHP, m.Speed, m.AttackPower, m.Exp, m.Gold)
	}

	unknown := newTestMonster(q, "Dragon")
	if unknown.Type != "Orc" || unknown.HP != 50 {
		t.Errorf("unknown type = %s hp %d, want Orc fallback", unknown.Type, unknown.HP)
	}
}

func TestMonsterTransitions(t *testing.T) {
	tests := []struct {
		distance float64
		want     MonsterState
	}{
		{0, MonsterAttacking},
		{39.9, MonsterAttacking},
		{40, MonsterChasing},
		{120, MonsterChasing},
		{199.9, MonsterChasing},
		{200, MonsterIdle},
		{500, MonsterIdle},
	}

	for _, tt := range tests {
		m := newTestMonster(schedule.New(), "Orc")
		target := &fakeTarget{pos: world.Point{X: tt.distance}}
		m.Think(target)
		if m.State != tt.want {
			t.Errorf("distance %v: state = %v, want %v", tt.distance, m.State, tt.want)
		}
		moving := m.Vel != (world.Point{})
		if moving != (tt.want == MonsterChasing) {
			t.Errorf("distance %v: velocity = %+v in state %v", tt.distance, m.Vel, m.State)
		}
	}
}

func TestMonsterIdleWithoutLiveTarget(t *testing.T) {
	m := newTestMonster(schedule.New(), "Orc")
	m.Think(&fakeTarget{pos: world.Point{X: 100}})
	if m.State != MonsterChasing {
		t.Fatalf("state = %v, want chasing", m.State)
	}

	m.Think(&fakeTarget{pos: world.Point{X: 10}, dead: true})
	if m.State != MonsterIdle || m.Vel != (world.Point{}) {
		t.Errorf("dead target: state = %v vel %+v, want idle and still", m.State, m.Vel)
	}
	m.Think(nil)
	if m.State != MonsterIdle {
		t.Errorf("nil target: state = %v, want idle", m.State)
	}
}

func TestMonsterChaseVelocity(t *testing.T) {
	m := newTestMonster(schedule.New(), "OrcRogue")
	m.Think(&fakeTarget{pos: world.Point{X: -60, Y: 80}})

	if speed := math.Hypot(m.Vel.X, m.Vel.Y); math.Abs(speed-120) > 1e-9 {
		t.Errorf("chase speed = %v, want 120", speed)
	}
	if math.Abs(m.Vel.X-(-72)) > 1e-9 || math.Abs(m.Vel.Y-96) > 1e-9 {
		t.Errorf("chase velocity = %+v, want (-72, 96)", m.Vel)
	}
	if !m.FlipX {
		t.Error("monster moving left should be flipped")
	}

	m.Think(&fakeTarget{pos: world.Point{X: 100}})
	if m.FlipX {
		t.Error("monster moving right should not be flipped")
	}
}

func TestMonsterAttackCooldown(t *testing.T) {
	q := schedule.New()
	m := newTestMonster(q, "Orc")
	target := &fakeTarget{pos: world.Point{X: 10}}

	m.Think(target)
	m.Think(target)
	if target.hits != 1 || target.damage != 10 {
		t.Fatalf("hits = %d damage = %d, want one hit of 10 during cooldown", target.hits, target.damage)
	}
	if !m.OnCooldown() {
		t.Error("OnCooldown() = false after attacking")
	}

	q.Advance(time.Second)
	m.Think(target)
	if target.hits != 2 {
		t.Errorf("hits after cooldown = %d, want 2", target.hits)
	}
}

func TestMonsterAITimer(t *testing.T) {
	m := newTestMonster(schedule.New(), "Orc")
	target := &fakeTarget{pos: world.Point{X: 100}}

	m.Update(600*time.Millisecond, target)
	if m.State != MonsterIdle {
		t.Fatalf("AI ran before the interval: state = %v", m.State)
	}
	m.Update(400*time.Millisecond, target)
	if m.State != MonsterChasing {
		t.Fatalf("AI did not run after 1s: state = %v", m.State)
	}

	// Timer resets on firing; the target moving away is noticed a full interval later.
	target.pos = world.Point{X: 1000}
	m.Update(900*time.Millisecond, target)
	if m.State != MonsterChasing {
		t.Errorf("state = %v before next tick, want chasing", m.State)
	}
	m.Update(100*time.Millisecond, target)
	if m.State != MonsterIdle {
		t.Errorf("state = %v after next tick, want idle", m.State)
	}
}

func TestMonsterHitFlash(t *testing.T) {
	q := schedule.New()
	m := newTestMonster(q, "Orc")

	if killed := m.TakeDamage(5); killed {
		t.Fatal("5 damage should not kill an Orc")
	}
	if !m.Tinted || m.Tint != hitTint {
		t.Errorf("tint after hit = %v %+v, want red", m.Tinted, m.Tint)
	}
	q.Advance(100 * time.Millisecond)
	if m.Tinted {
		t.Error("hit tint not cleared after 100ms")
	}
}

func TestMonsterDeath(t *testing.T) {
	q := schedule.New()
	m := newTestMonster(q, "Skeleton")
	m.Think(&fakeTarget{pos: world.Point{X: 100}})

	if killed := m.TakeDamage(30); !killed {
		t.Fatal("30 damage should kill a Skeleton")
	}
	if !m.IsDead() || m.Enabled || m.Vel != (world.Point{}) {
		t.Errorf("dead monster: state %v enabled %v vel %+v", m.State, m.Enabled, m.Vel)
	}
	if !m.Tinted || m.Tint != deathTint || m.Alpha != 0.5 {
		t.Errorf("without a death clip: tint %+v alpha %v, want grey at half alpha", m.Tint, m.Alpha)
	}
	if m.TakeDamage(10) {
		t.Error("a dead monster cannot die twice")
	}

	target := &fakeTarget{pos: world.Point{X: 5}}
	m.Update(time.Second, target)
	if target.hits != 0 || m.State != MonsterDead {
		t.Error("dead monster kept acting")
	}

	q.Advance(1999 * time.Millisecond)
	if m.Removed() {
		t.Fatal("removed before the delay")
	}
	q.Advance(time.Millisecond)
	if !m.Removed() {
		t.Error("not removed after 2s")
	}
	if !m.Tinted {
		t.Error("death tint should survive the hit flash reset")
	}
}

func TestNPCIndicator(t *testing.T) {
	def := gamedata.MustLoadNPCRegistry().GetByID("Knight")
	n := NewNPC(def, tuning.NPC, world.Point{X: 100, Y: 100}, nil)

	if !n.Immovable {
		t.Error("NPC should be immovable")
	}
	n.Update(world.Point{X: 149, Y: 100})
	if !n.ShowIndicator {
		t.Error("indicator hidden at 49px")
	}
	n.Update(world.Point{X: 150, Y: 100})
	if n.ShowIndicator {
		t.Error("indicator shown at 50px")
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		line := n.RandomLine(rng)
		found := false
		for _, d := range def.Dialogue {
			found = found || d == line
		}
		if !found {
			t.Errorf("RandomLine() = %q, not in dialogue", line)
		}
	}

	if _, ok := n.Item(3); ok {
		t.Error("Item(3) should not exist in a three item shop")
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory(2, 90)
	potion := gamedata.ItemDef{Name: "Health Potion", Price: 30, Type: gamedata.ItemPotion, Heal: 50}
	sword := gamedata.ItemDef{Name: "Iron Sword", Price: 100, Type: gamedata.ItemWeapon, Power: 15}

	if err := inv.Buy(sword); !errors.Is(err, ErrNotEnoughGold) {
		t.Errorf("Buy(sword) error = %v, want ErrNotEnoughGold", err)
	}
	if err := inv.Buy(potion); err != nil || inv.Gold != 60 {
		t.Fatalf("Buy(potion) = %v, gold %d", err, inv.Gold)
	}
	if err := inv.Add(sword); err != nil {
		t.Fatal(err)
	}
	if err := inv.Buy(potion); !errors.Is(err, ErrInventoryFull) || inv.Gold != 60 {
		t.Errorf("Buy into full inventory = %v, gold %d, want ErrInventoryFull and no charge", err, inv.Gold)
	}

	p := newTestPlayer(schedule.New())
	p.TakeDamage(80)
	if _, err := inv.Use(1, p); !errors.Is(err, ErrNotUsable) {
		t.Errorf("Use(sword) error = %v, want ErrNotUsable", err)
	}
	healed, err := inv.Use(0, p)
	if err != nil || healed != 50 || p.Stats.HP != 70 {
		t.Errorf("Use(potion) = %d, %v, HP %d, want 50, nil, 70", healed, err, p.Stats.HP)
	}
	if len(inv.Items) != 1 || inv.Items[0].Name != "Iron Sword" {
		t.Errorf("items after use = %+v", inv.Items)
	}
	if _, err := inv.Use(5, p); err == nil {
		t.Error("Use(5) should fail")
	}
}
