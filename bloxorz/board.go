// Package bloxorz models the block-rolling puzzle game Bloxorz and finds
// shortest solutions to its stages. A 1×1×2 block is rolled over the tiles
// of a stage; the player wins by standing the block upright on a goal and
// loses by rolling any part of it off the stage or standing it upright on a
// fragile tile.
package bloxorz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shape-warrior-t/challenge-portfolio/grid"
)

// Tile is a square of terrain.
type Tile int

const (
	// Empty is empty space.
	Empty Tile = iota
	// Regular is a standard gray tile.
	Regular
	// Fragile is a fragile orange tile that cannot bear the block's whole
	// weight.
	Fragile
	// Goal is a hole the block needs to fall through to win the stage.
	Goal
)

var tiles = [...]string{
	Empty:   ".",
	Regular: "#",
	Fragile: "!",
	Goal:    "$",
}

func (t Tile) String() string {
	s := ""
	if 0 <= int(t) && int(t) < len(tiles) {
		s = tiles[t]
	}
	if s == "" {
		s = "tile(" + strconv.Itoa(int(t)) + ")"
	}
	return s
}

// Board is the terrain of a stage. Boards may have multiple goals, unlike
// in the actual game.
type Board struct {
	tiles *grid.Grid[Tile]
}

// NewBoard creates a board over the given terrain.
func NewBoard(tiles *grid.Grid[Tile]) *Board {
	return &Board{tiles: tiles}
}

// TileAt returns the tile at the given coordinates. Out-of-bounds locations
// hold empty space.
func (b *Board) TileAt(p grid.Point) Tile {
	tile, inBounds := b.tiles.Get(p)
	if !inBounds {
		return Empty
	}
	return tile
}

// ParseBoard reads a board from ASCII art: one line per row with '.' for
// empty space, '#' for regular tiles, '!' for fragile tiles and '$' for
// goals. Spaces within a line are ignored and blank lines are skipped.
func ParseBoard(s string) (*Board, error) {
	var rows [][]Tile
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var row []Tile
		for _, ch := range line {
			switch ch {
			case ' ', '\t':
			case '.':
				row = append(row, Empty)
			case '#':
				row = append(row, Regular)
			case '!':
				row = append(row, Fragile)
			case '$':
				row = append(row, Goal)
			default:
				return nil, fmt.Errorf("bloxorz: unexpected character %q", ch)
			}
		}
		rows = append(rows, row)
	}
	tiles, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return NewBoard(tiles), nil
}
