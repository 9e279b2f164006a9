package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Empty marks a cell with no tile. Every other byte is solid.
const Empty = '.'

// ParseTiles reads a character grid, one row per line, and returns a tile for
// every non-empty cell. Rows are shifted down by half a tile.
func ParseTiles(r io.Reader, tileSize float64) ([]Tile, error) {
	var (
		tiles []Tile
		width = -1
		row   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		row++
		if line == "" {
			continue
		}

		for col := 0; col < len(line); col++ {
			if line[col] >= utf8.RuneSelf {
				return nil, &ParseError{Line: row, Column: col + 1, Err: ErrNonASCII}
			}
		}
		if width >= 0 && len(line) != width {
			return nil, &ParseError{Line: row, Column: min(len(line), width) + 1, Err: ErrRaggedRow}
		}
		width = len(line)

		y := float64(row-1)*tileSize + tileSize/2
		for col := 0; col < len(line); col++ {
			if line[col] == Empty {
				continue
			}
			tiles = append(tiles, Tile{
				Index: len(tiles),
				X:     float64(col) * tileSize,
				Y:     y,
				W:     tileSize,
				H:     tileSize,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return tiles, nil
}
