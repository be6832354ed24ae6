// Package combat resolves melee hits between the player and monsters.
package combat

import (
	"context"
	"math"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/telemetry"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// facingCone is the minimum cosine between the facing vector and the
// direction to a monster for the swing to connect (60 degrees either side).
const facingCone = 0.5

// Rewardable receives kill rewards.
type Rewardable interface {
	AddExp(amount int) int // Returns levels gained
	AddGold(amount int)
}

// Reward is what a kill granted.
type Reward struct {
	Exp    int
	Gold   int
	Levels int
	Loot   bool // The loot roll succeeded
}

// Hit is the outcome of one swing against one monster.
type Hit struct {
	Monster *entity.Monster
	Damage  int
	Killed  bool
	Reward  Reward
}

// Resolver applies player attacks and kill rewards.
type Resolver struct {
	rng        *rand.Rand
	lootChance float64
}

// NewResolver creates a resolver. lootChance is the probability in [0, 1]
// that a kill drops loot.
func NewResolver(rng *rand.Rand, lootChance float64) *Resolver {
	return &Resolver{rng: rng, lootChance: lootChance}
}

// InReach reports whether m can be hit by p's swing: within reach and in
// front of the player, or so close that the bodies overlap.
func InReach(p *entity.Player, m *entity.Monster) bool {
	if m.IsDead() {
		return false
	}
	d := world.Distance(p.Pos, m.Pos)
	if d > p.Reach {
		return false
	}
	overlap := (p.Width + m.Width) / 2
	if d <= overlap {
		return true
	}
	f := p.Facing.Vector()
	dot := (f.X*(m.Pos.X-p.Pos.X) + f.Y*(m.Pos.Y-p.Pos.Y)) / d
	return dot >= facingCone
}

// PlayerAttack damages every monster in reach with the player's attack
// power and grants rewards for kills.
func (r *Resolver) PlayerAttack(ctx context.Context, p *entity.Player, monsters []*entity.Monster) []Hit {
	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.attack")
	defer span.End()

	var hits []Hit
	kills := 0
	for _, m := range monsters {
		if !InReach(p, m) {
			continue
		}
		hit := Hit{Monster: m, Damage: p.Stats.AttackPower}
		if m.TakeDamage(hit.Damage) {
			hit.Killed = true
			hit.Reward = r.Kill(ctx, m, p)
			kills++
		}
		hits = append(hits, hit)
	}

	span.SetAttributes(
		attribute.String("player.facing", p.Facing.String()),
		attribute.Int("combat.hits", len(hits)),
		attribute.Int("combat.kills", kills),
	)
	return hits
}

// Kill rolls loot for a dead monster and grants its exp and gold to killer.
func (r *Resolver) Kill(ctx context.Context, m *entity.Monster, killer Rewardable) Reward {
	_, span := telemetry.Tracer("combat").Start(ctx, "monster.death")
	defer span.End()

	reward := Reward{
		Exp:  m.Exp,
		Gold: m.Gold,
		Loot: r.rollLoot(),
	}
	if killer != nil {
		reward.Levels = killer.AddExp(m.Exp)
		killer.AddGold(m.Gold)
	}

	span.SetAttributes(
		attribute.String("monster.type", m.Type),
		attribute.Int("reward.exp", reward.Exp),
		attribute.Int("reward.gold", reward.Gold),
		attribute.Bool("reward.loot", reward.Loot),
	)
	return reward
}

func (r *Resolver) rollLoot() bool {
	if r.lootChance <= 0 {
		return false
	}
	return r.rng.Float64() < math.Min(r.lootChance, 1)
}
