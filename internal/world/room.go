package world

// Room represents a rectangular room in the dungeon, measured in grid cells.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center cell of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given cell is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.IntersectsWithMargin(other, 0)
}

// IntersectsWithMargin reports whether the rooms overlap once one of them is
// grown by margin cells on every side.
func (r Room) IntersectsWithMargin(other Room, margin int) bool {
	return r.X < other.X+other.Width+margin &&
		r.X+r.Width+margin > other.X &&
		r.Y < other.Y+other.Height+margin &&
		r.Y+r.Height+margin > other.Y
}

// Expand returns the room grown by n cells on every side.
func (r Room) Expand(n int) Room {
	return Room{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}
