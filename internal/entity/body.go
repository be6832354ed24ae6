// Package entity provides the player, monsters and NPCs that live in the dungeon.
package entity

import (
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/world"
)

// Body is the physical and visual state shared by every entity.
// Positions are pixel coordinates of the body center.
type Body struct {
	ID        uuid.UUID
	Pos       world.Point
	Vel       world.Point // Pixels per second
	Width     float64     // Collision box
	Height    float64
	Immovable bool
	Enabled   bool // Disabled bodies neither move nor collide

	// Display state
	Texture     string     // Static texture drawn when no clip plays
	DisplaySize float64    // Drawn width and height in pixels
	Placeholder color.RGBA // Color used when Texture is missing
	FlipX       bool
	Tint        color.RGBA
	Tinted      bool
	Alpha       float64
	Anim        assets.Animator
}

// CollisionSize is the edge of a moving body's collision box. It is smaller
// than a tile so bodies fit through one-tile corridors.
const CollisionSize = 24

func newBody(pos world.Point, width, height float64) Body {
	return Body{
		ID:          uuid.New(),
		Pos:         pos,
		Width:       width,
		Height:      height,
		Enabled:     true,
		DisplaySize: 48,
		Alpha:       1,
	}
}

// Position returns the body center.
func (b *Body) Position() world.Point {
	return b.Pos
}

// SetVelocity sets the velocity in pixels per second.
func (b *Body) SetVelocity(vx, vy float64) {
	b.Vel = world.Point{X: vx, Y: vy}
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = world.Point{}
}

// Moving reports whether either velocity component exceeds threshold.
func (b *Body) Moving(threshold float64) bool {
	return math.Abs(b.Vel.X) > threshold || math.Abs(b.Vel.Y) > threshold
}

// SetTint colors the sprite.
func (b *Body) SetTint(c color.RGBA) {
	b.Tint = c
	b.Tinted = true
}

// ClearTint removes any tint.
func (b *Body) ClearTint() {
	b.Tinted = false
}

// Bounds returns the collision box centered on p.
func (b *Body) Bounds(p world.Point) (minX, minY, maxX, maxY float64) {
	hw, hh := b.Width/2, b.Height/2
	return p.X - hw, p.Y - hh, p.X + hw, p.Y + hh
}

// Frame returns the texture key and frame index to draw.
func (b *Body) Frame() (string, int) {
	if clip := b.Anim.Current(); clip != nil {
		return clip.Texture, b.Anim.Frame()
	}
	return b.Texture, 0
}

// ShowStatic stops any clip and draws frame 0 of texture.
func (b *Body) ShowStatic(texture string) {
	b.Anim.Reset()
	b.Texture = texture
}

// Animate advances the body's animation.
func (b *Body) Animate(dt time.Duration) {
	b.Anim.Advance(dt)
}
