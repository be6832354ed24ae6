package world

import "math"

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// FallbackPosition is returned by spawn queries when no room is available.
var FallbackPosition = Point{X: 400, Y: 300}

// CellToPixel converts a grid cell to its pixel position.
func CellToPixel(x, y int) Point {
	return Point{X: float64(x * TileSize), Y: float64(y * TileSize)}
}

// CellAt returns the grid cell containing the pixel position.
func CellAt(p Point) (int, int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the angle in radians of the vector from a to b.
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
