package game

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/samdwyer/pixelcrawler/internal/entity"
	"github.com/samdwyer/pixelcrawler/internal/save"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	deps, err := LoadDeps("", nil)
	if err != nil {
		t.Fatalf("LoadDeps() error = %v", err)
	}
	return deps
}

func TestNewWorldReproducible(t *testing.T) {
	deps := testDeps(t)
	a := NewWorld(context.Background(), 7, deps)
	b := NewWorld(context.Background(), 7, deps)

	if len(a.Dungeon.Rooms) != len(b.Dungeon.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Dungeon.Rooms), len(b.Dungeon.Rooms))
	}
	if len(a.Monsters) != len(b.Monsters) {
		t.Fatalf("monster counts differ")
	}
	for i := range a.Monsters {
		if a.Monsters[i].Type != b.Monsters[i].Type || a.Monsters[i].Pos != b.Monsters[i].Pos {
			t.Errorf("monster %d differs: %s@%v vs %s@%v", i,
				a.Monsters[i].Type, a.Monsters[i].Pos, b.Monsters[i].Type, b.Monsters[i].Pos)
		}
	}
}

func TestNewWorldPlacement(t *testing.T) {
	deps := testDeps(t)
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWorld(context.Background(), seed, deps)
		d := w.Dungeon

		if w.Player.Pos != d.SpawnPosition() {
			t.Errorf("seed %d: player at %v, want spawn %v", seed, w.Player.Pos, d.SpawnPosition())
		}
		if len(w.Monsters) != deps.Tuning.Monster.Count {
			t.Errorf("seed %d: %d monsters, want %d", seed, len(w.Monsters), deps.Tuning.Monster.Count)
		}
		if len(w.NPCs) != deps.NPCs.Count() {
			t.Errorf("seed %d: %d NPCs, want %d", seed, len(w.NPCs), deps.NPCs.Count())
		}
		if len(d.Rooms) < 2 {
			continue
		}
		for _, m := range w.Monsters {
			x, y := world.CellAt(m.Pos)
			if d.RoomIndexAt(x, y) == 0 {
				t.Errorf("seed %d: %s spawned in the first room", seed, m.Type)
			}
		}
		for _, n := range w.NPCs {
			x, y := world.CellAt(n.Pos)
			if !d.Rooms[0].Contains(x, y) {
				t.Errorf("seed %d: %s outside the first room", seed, n.Type)
			}
			if n.Pos == w.Player.Pos {
				t.Errorf("seed %d: %s placed on the spawn point", seed, n.Type)
			}
		}
	}
}

// floorOnly reports whether every cell under the body's box is floor.
func floorOnly(w *World, b *entity.Body) bool {
	return !w.blocked(b, b.Pos, nil)
}

func TestPhysicsStopsAtWalls(t *testing.T) {
	deps := testDeps(t)
	w := NewWorld(context.Background(), 3, deps)
	if len(w.Dungeon.Rooms) == 0 {
		t.Skip("seed produced no rooms")
	}
	w.Monsters = nil
	p := w.Player

	for _, in := range []entity.Input{{Left: true}, {Up: true}, {Right: true}, {Down: true}, {Down: true, Left: true}} {
		for i := 0; i < 120; i++ {
			w.Update(context.Background(), frame, in)
			if !floorOnly(w, &p.Body) {
				t.Fatalf("input %+v: player box entered a wall at %v", in, p.Pos)
			}
		}
	}
}

func TestPhysicsMovesAtSpeed(t *testing.T) {
	w := NewWorld(context.Background(), 3, testDeps(t))
	w.Monsters = nil
	w.NPCs = nil
	p := w.Player
	start := p.Pos

	w.Update(context.Background(), 100*time.Millisecond, entity.Input{Right: true})
	moved := p.Pos.X - start.X
	if moved != 0 && moved != float64(p.Stats.Speed)*0.1 {
		t.Errorf("moved %f px in 100ms, want %f or blocked", moved, float64(p.Stats.Speed)*0.1)
	}
}

func TestBlockedBySolidBody(t *testing.T) {
	w := NewWorld(context.Background(), 3, testDeps(t))
	p := w.Player
	n := w.NPCs[0]

	if !w.blocked(&p.Body, n.Pos, []*entity.Body{&n.Body}) {
		t.Error("player box on top of an NPC is not blocked")
	}
	n.Enabled = false
	if w.blocked(&p.Body, n.Pos, []*entity.Body{&n.Body}) {
		t.Error("disabled body still blocks")
	}
}

func TestSweepRemovesCorpses(t *testing.T) {
	w := NewWorld(context.Background(), 5, testDeps(t))
	if len(w.Monsters) == 0 {
		t.Skip("no monsters spawned")
	}
	victim := w.Monsters[0]
	victim.TakeDamage(victim.HP)
	before := len(w.Monsters)

	st := w.Update(context.Background(), time.Second, entity.Input{})
	if st.Removed != 0 {
		t.Fatalf("corpse removed after 1s")
	}
	removed := 0
	for i := 0; i < 10; i++ {
		removed += w.Update(context.Background(), 200*time.Millisecond, entity.Input{}).Removed
	}
	if removed < 1 || len(w.Monsters) > before-1 {
		t.Errorf("removed %d, %d monsters left of %d", removed, len(w.Monsters), before)
	}
	for _, m := range w.Monsters {
		if m == victim {
			t.Error("victim still in the world")
		}
	}
}

func TestRestoreFallsBackToSpawn(t *testing.T) {
	w := NewWorld(context.Background(), 9, testDeps(t))
	w.Restore(save.Data{
		PlayerPosition: save.Position{X: -500, Y: -500},
		PlayerStats:    save.PlayerStats{Level: 4, HP: 30, MaxHP: 130, AttackPower: 16, Exp: 12, Gold: 77},
		Seed:           9,
	})

	p := w.Player
	if p.Pos != w.Dungeon.SpawnPosition() {
		t.Errorf("restored into a wall at %v", p.Pos)
	}
	if p.Stats.Level != 4 || p.Stats.HP != 30 || p.Inventory.Gold != 77 {
		t.Errorf("restored stats = %+v, gold %d", p.Stats, p.Inventory.Gold)
	}
}

func TestPlayerWalksToNextRoom(t *testing.T) {
	deps := testDeps(t)
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWorld(context.Background(), seed, deps)
		d := w.Dungeon
		if len(d.Rooms) < 2 {
			continue
		}
		w.Monsters = nil
		w.NPCs = nil
		p := w.Player

		x0, _ := d.Rooms[0].Center()
		x1, y1 := d.Rooms[1].Center()
		inNext := func() bool {
			x, y := world.CellAt(p.Pos)
			return d.Rooms[1].Contains(x, y)
		}

		// Along room 0's center row to room 1's center column, then along
		// that column into room 1.
		horizontal := entity.Input{Right: x1 > x0, Left: x1 < x0}
		for i := 0; i < 1500 && !inNext(); i++ {
			if x, _ := world.CellAt(p.Pos); x == x1 {
				break
			}
			w.Update(context.Background(), frame, horizontal)
		}
		_, y := world.CellAt(p.Pos)
		vertical := entity.Input{Down: y1 > y, Up: y1 < y}
		for i := 0; i < 1500 && !inNext(); i++ {
			w.Update(context.Background(), frame, vertical)
		}

		if !inNext() {
			t.Errorf("seed %d: player at %v never reached room 1 %+v from room 0 %+v", seed, p.Pos, d.Rooms[1], d.Rooms[0])
		}
		if !floorOnly(w, &p.Body) {
			t.Errorf("seed %d: player box at %v overlaps a wall", seed, p.Pos)
		}
	}
}

func TestBodySteersIntoCorridor(t *testing.T) {
	w := NewWorld(context.Background(), 3, testDeps(t))
	w.Monsters = nil
	w.NPCs = nil

	// A one-tile corridor on row 2 between walls.
	d := world.NewDungeon(10, 5, nil)
	for x := 1; x < 9; x++ {
		d.Tiles[2][x] = world.TileFloor
	}
	d.Tiles[1][1] = world.TileFloor
	w.Dungeon = d

	p := w.Player
	p.Pos = world.Point{X: 1*world.TileSize + world.TileSize/2, Y: 2 * world.TileSize} // On the tile edge
	for i := 0; i < 120; i++ {
		w.Update(context.Background(), frame, entity.Input{Right: true})
		if !floorOnly(w, &p.Body) {
			t.Fatalf("frame %d: box at %v overlaps a wall", i, p.Pos)
		}
	}

	center := 2*world.TileSize + world.TileSize/2.0
	if off := math.Abs(p.Pos.Y - center); off > (world.TileSize-entity.CollisionSize)/2 {
		t.Errorf("Y = %v, %v px off the corridor center %v", p.Pos.Y, off, center)
	}
	if x, _ := world.CellAt(p.Pos); x < 7 {
		t.Errorf("player stopped at cell %d, want the far end of the corridor", x)
	}
}

func TestLaneHelpers(t *testing.T) {
	tests := []struct {
		v    float64
		want []float64
	}{
		{70, []float64{80, 48, 112}},
		{90, []float64{80, 112, 48}},
		{64, []float64{80, 48, 112}},
	}
	for _, tt := range tests {
		got := laneCenters(tt.v)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("laneCenters(%v) = %v, want %v", tt.v, got, tt.want)
				break
			}
		}
	}

	steps := []struct {
		v, target, step, want float64
	}{
		{64, 80, 3, 67},
		{79, 80, 3, 80},
		{90, 80, 4, 86},
	}
	for _, tt := range steps {
		if got := approach(tt.v, tt.target, tt.step); got != tt.want {
			t.Errorf("approach(%v, %v, %v) = %v, want %v", tt.v, tt.target, tt.step, got, tt.want)
		}
	}
}
