// Package leveldata loads tile maps into ordered slices of solid tiles.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/rario/gamemath"
)

// Tile is one solid cell of the map in world coordinates.
// Index is the storage order: row-major, then column.
type Tile struct {
	Index      int
	X, Y, W, H float64
}

// Rect returns the tile bounds.
func (t Tile) Rect() gamemath.Rect {
	return gamemath.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// Spawn is an enemy start point read from a Tiled object layer.
type Spawn struct {
	X, Y, VX float64
}

// Level is everything a map file provides.
type Level struct {
	Tiles  []Tile
	Spawns []Spawn
}

// Bounds returns the extent of the tiles, measured from the origin.
func Bounds(tiles []Tile) (w, h float64) {
	for _, t := range tiles {
		w = max(w, t.X+t.W)
		h = max(h, t.Y+t.H)
	}
	return w, h
}

var (
	ErrNonASCII  = errors.New("non-ASCII character")
	ErrRaggedRow = errors.New("row width differs from previous rows")
)

// ParseError reports a malformed map cell. Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("map line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
