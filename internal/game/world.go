package game

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/combat"
	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/gamedata"
	"github.com/samdwyer/pixelcrawler/internal/schedule"
	"github.com/samdwyer/pixelcrawler/internal/telemetry"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// Deps are the data tables a session is built from.
type Deps struct {
	Tuning   gamedata.Tuning
	Player   gamedata.PlayerDef
	Monsters *gamedata.MonsterRegistry
	NPCs     *gamedata.NPCRegistry
	Clips    *assets.Library // May be nil
}

// LoadDeps loads the embedded tables. tuningPath, when set, overrides tuning values.
func LoadDeps(tuningPath string, clips *assets.Library) (Deps, error) {
	tuning, err := gamedata.LoadTuning(tuningPath)
	if err != nil {
		return Deps{}, err
	}
	player, err := gamedata.LoadPlayer()
	if err != nil {
		return Deps{}, err
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return Deps{}, err
	}
	npcs, err := gamedata.LoadNPCRegistry()
	if err != nil {
		return Deps{}, err
	}
	return Deps{Tuning: tuning, Player: player, Monsters: monsters, NPCs: npcs, Clips: clips}, nil
}

// World is one play session: the map and everything living in it.
type World struct {
	Seed     int64
	Dungeon  *world.Dungeon
	Player   *entity.Player
	Monsters []*entity.Monster
	NPCs     []*entity.NPC

	deps     Deps
	queue    *schedule.Queue
	resolver *combat.Resolver
	rng      *rand.Rand // Dialogue picks; the dungeon keeps its own source
}

// Step reports what happened during one update.
type Step struct {
	Actions entity.Actions
	Hits    []combat.Hit
	Damage  int // HP the player lost to monsters
	Removed int // Corpses cleared
}

// NewWorld generates the dungeon for seed and populates it.
func NewWorld(ctx context.Context, seed int64, deps Deps) *World {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.new")
	defer span.End()

	t := deps.Tuning
	width, height := t.Dungeon.Width, t.Dungeon.Height
	if width <= 0 || height <= 0 {
		width, height = world.DefaultWidth, world.DefaultHeight
	}

	d := world.NewDungeon(width, height, rand.New(rand.NewSource(seed)))
	d.Params = t.Dungeon.Params()
	d.Generate(ctx)

	w := &World{
		Seed:     seed,
		Dungeon:  d,
		deps:     deps,
		queue:    schedule.New(),
		resolver: combat.NewResolver(rand.New(rand.NewSource(seed+1)), t.Monster.LootChance),
		rng:      rand.New(rand.NewSource(seed + 2)),
	}
	w.Player = entity.NewPlayer(deps.Player, t.Player, d.SpawnPosition(), w.queue, deps.Clips)

	for i := 0; i < t.Monster.Count; i++ {
		def := deps.Monsters.SpawnRandom(d.Rand())
		if def == nil {
			break
		}
		pos := d.RandomRoomPosition(true)
		w.Monsters = append(w.Monsters, entity.NewMonster(def, t.Monster, pos, w.queue, deps.Clips))
	}
	w.placeNPCs()

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("game.monsters", len(w.Monsters)),
		attribute.Int("game.npcs", len(w.NPCs)),
	)
	if len(d.Rooms) == 0 {
		span.SetAttributes(attribute.String("warning", "no rooms generated, using fallback position"))
	}
	return w
}

// placeNPCs puts the town NPCs on alternating cells of the spawn room,
// leaving the spawn cell free.
func (w *World) placeNPCs() {
	defs := w.deps.NPCs.All()
	if len(defs) == 0 {
		return
	}

	var cells []world.Point
	if len(w.Dungeon.Rooms) > 0 {
		room := w.Dungeon.Rooms[0]
		cx, cy := room.Center()
		for y := room.Y + 1; y < room.Y+room.Height; y += 2 {
			for x := room.X + 1; x < room.X+room.Width; x += 2 {
				if x == cx && y == cy {
					continue
				}
				cells = append(cells, world.CellToPixel(x, y))
			}
		}
	}

	for i := range defs {
		pos := world.Point{X: world.FallbackPosition.X + float64(i+1)*2*world.TileSize, Y: world.FallbackPosition.Y}
		if i < len(cells) {
			pos = cells[i]
		}
		w.NPCs = append(w.NPCs, entity.NewNPC(&defs[i], w.deps.Tuning.NPC, pos, w.deps.Clips))
	}
}

// Update advances the session by dt. The order is player, NPCs, monsters,
// physics, then the deferred callbacks.
func (w *World) Update(ctx context.Context, dt time.Duration, in entity.Input) Step {
	var st Step
	p := w.Player

	st.Actions = p.Update(in)
	if st.Actions.Attacked {
		st.Hits = w.resolver.PlayerAttack(ctx, p, w.Monsters)
	}

	for _, n := range w.NPCs {
		n.Update(p.Pos)
	}

	hp := p.Stats.HP
	for _, m := range w.Monsters {
		m.Update(dt, p)
	}
	st.Damage = hp - p.Stats.HP

	w.integrate(dt)
	w.animate(dt)
	w.queue.Advance(dt)
	st.Removed = w.sweep()
	return st
}

func (w *World) animate(dt time.Duration) {
	w.Player.Animate(dt)
	for _, m := range w.Monsters {
		m.Animate(dt)
	}
	for _, n := range w.NPCs {
		n.Animate(dt)
	}
}

// sweep drops monsters whose removal delay has passed.
func (w *World) sweep() int {
	kept := w.Monsters[:0]
	for _, m := range w.Monsters {
		if !m.Removed() {
			kept = append(kept, m)
		}
	}
	removed := len(w.Monsters) - len(kept)
	for i := len(kept); i < len(w.Monsters); i++ {
		w.Monsters[i] = nil
	}
	w.Monsters = kept
	return removed
}

// NearestNPC returns the closest NPC whose interaction range covers the player.
func (w *World) NearestNPC() *entity.NPC {
	var best *entity.NPC
	bestDist := 0.0
	for _, n := range w.NPCs {
		if !n.InRange(w.Player.Pos) {
			continue
		}
		if d := world.Distance(n.Pos, w.Player.Pos); best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// Line picks a dialogue line of n.
func (w *World) Line(n *entity.NPC) string {
	return n.RandomLine(w.rng)
}

// After schedules fn on the session clock.
func (w *World) After(d time.Duration, fn func()) schedule.ID {
	return w.queue.After(d, fn)
}

// Alive returns the number of monsters that are not dead.
func (w *World) Alive() int {
	n := 0
	for _, m := range w.Monsters {
		if !m.IsDead() {
			n++
		}
	}
	return n
}

// Deps returns the tables the session was built from.
func (w *World) Deps() Deps {
	return w.deps
}
