package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelcrawler/internal/telemetry"
)

const (
	// Default dungeon dimensions in cells
	DefaultWidth  = 60
	DefaultHeight = 40

	// roomMargin is the number of wall cells kept between accepted rooms.
	roomMargin = 1
)

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Pick returns a uniformly random value in [Min, Max].
// A degenerate range always yields Min.
func (r Range) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// GenParams controls room placement.
type GenParams struct {
	RoomCount Range `yaml:"room_count" json:"roomCount"` // Number of placement attempts
	RoomSize  Range `yaml:"room_size" json:"roomSize"`   // Room width and height
}

// DefaultParams are the placement parameters used when none are configured.
var DefaultParams = GenParams{
	RoomCount: Range{Min: 5, Max: 10},
	RoomSize:  Range{Min: 4, Max: 10},
}

// Dungeon represents the game map.
type Dungeon struct {
	Width    int
	Height   int
	Tiles    [][]Tile
	Rooms    []Room // Accepted rooms in placement order
	Params   GenParams
	Attempts int // Placement attempts made by the last Generate
	rng      *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
// A nil rng is replaced by a time-seeded one.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Dungeon{
		Width:  width,
		Height: height,
		Params: DefaultParams,
		rng:    rng,
	}
	d.fill()
	return d
}

// fill resets the grid to solid wall and forgets all rooms.
func (d *Dungeon) fill() {
	d.Tiles = make([][]Tile, d.Height)
	for y := range d.Tiles {
		d.Tiles[y] = make([]Tile, d.Width)
		for x := range d.Tiles[y] {
			d.Tiles[y][x] = TileWall
		}
	}
	d.Rooms = make([]Room, 0)
}

// Generate carves rooms and corridors into the grid.
//
// The number of placement attempts equals the target room count and rejected
// candidates are not retried, so the dungeon may end up with fewer rooms than
// were drawn, or none at all on a grid too small for the room size range.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	d.fill()

	d.Attempts = d.Params.RoomCount.Pick(d.rng)
	for i := 0; i < d.Attempts; i++ {
		d.tryPlaceRoom()
	}

	// Connect rooms in placement order, not spatial order
	for i := 0; i < len(d.Rooms)-1; i++ {
		d.carveCorridor(d.Rooms[i], d.Rooms[i+1])
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.attempts", d.Attempts),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// tryPlaceRoom draws one candidate room and commits it if it keeps clear of
// every accepted room. Returns false when the candidate was rejected.
func (d *Dungeon) tryPlaceRoom() bool {
	roomWidth := d.Params.RoomSize.Pick(d.rng)
	roomHeight := d.Params.RoomSize.Pick(d.rng)

	// Leave the outer border as wall
	maxX := d.Width - roomWidth - 1
	maxY := d.Height - roomHeight - 1
	if roomWidth < 1 || roomHeight < 1 || maxX < 1 || maxY < 1 {
		return false
	}

	room := Room{
		X:      Range{Min: 1, Max: maxX}.Pick(d.rng),
		Y:      Range{Min: 1, Max: maxY}.Pick(d.rng),
		Width:  roomWidth,
		Height: roomHeight,
	}

	for _, existing := range d.Rooms {
		if room.IntersectsWithMargin(existing, roomMargin) {
			return false
		}
	}

	d.carveRoom(room)
	d.Rooms = append(d.Rooms, room)
	return true
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.setFloor(x, y)
		}
	}
}

// carveCorridor joins two rooms with an L-shaped corridor: horizontal along
// the first room's center row, then vertical along the second room's center
// column.
func (d *Dungeon) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	d.carveHorizontalTunnel(x1, x2, y1)
	d.carveVerticalTunnel(y1, y2, x2)
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.setFloor(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.setFloor(x, y)
	}
}

func (d *Dungeon) setFloor(x, y int) {
	if d.InBounds(x, y) {
		d.Tiles[y][x] = TileFloor
	}
}

// InBounds returns true if the cell lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given cell can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given cell. Out of bounds reads as wall.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles[y][x]
}

// RoomIndexAt returns the index of the room containing the cell, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// PixelSize returns the dungeon extent in pixels.
func (d *Dungeon) PixelSize() (float64, float64) {
	return float64(d.Width * TileSize), float64(d.Height * TileSize)
}

// SpawnPosition returns the pixel position of the first room's center, or
// FallbackPosition when no room was placed.
func (d *Dungeon) SpawnPosition() Point {
	if len(d.Rooms) == 0 {
		return FallbackPosition
	}
	return CellToPixel(d.Rooms[0].Center())
}

// RandomRoomPosition returns the pixel position of a random interior cell of
// a random room. With excludeFirst the spawn room is never chosen.
func (d *Dungeon) RandomRoomPosition(excludeFirst bool) Point {
	start := 0
	if excludeFirst {
		start = 1
	}
	if len(d.Rooms) <= start {
		return FallbackPosition
	}

	room := d.Rooms[Range{Min: start, Max: len(d.Rooms) - 1}.Pick(d.rng)]
	x := room.X + Range{Min: 1, Max: room.Width - 2}.Pick(d.rng)
	y := room.Y + Range{Min: 1, Max: room.Height - 2}.Pick(d.rng)
	return CellToPixel(x, y)
}

// Rand exposes the dungeon's random source so that placement done on top of
// a generated map stays reproducible under one seed.
func (d *Dungeon) Rand() *rand.Rand {
	return d.rng
}
