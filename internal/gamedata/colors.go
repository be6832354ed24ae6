package gamedata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to RGBA.
func ParseHexColor(hex string) (color.RGBA, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHexColor converts a hex color string, panicking on error.
func MustParseHexColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Tint is a hex color attached to a definition, used for placeholders.
type Tint string

// RGBA returns the tint as a color, or white if it does not parse.
func (t Tint) RGBA() color.RGBA {
	c, err := ParseHexColor(string(t))
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// TCellColor returns the tint as a terminal color.
func (t Tint) TCellColor() tcell.Color {
	c := t.RGBA()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
