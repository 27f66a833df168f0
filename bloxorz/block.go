package bloxorz

import (
	"strconv"

	"github.com/shape-warrior-t/challenge-portfolio/grid"
)

// Direction in which the block can be moved.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction a block can be moved in.
var Directions = [4]Direction{Left, Right, Up, Down}

var directions = [...]string{
	Left:  "left",
	Right: "right",
	Up:    "up",
	Down:  "down",
}

func (d Direction) String() string {
	s := ""
	if 0 <= int(d) && int(d) < len(directions) {
		s = directions[d]
	}
	if s == "" {
		s = "direction(" + strconv.Itoa(int(d)) + ")"
	}
	return s
}

// Orientation of the block.
type Orientation int

const (
	// Upright: standing up, covering a 1×1 area.
	Upright Orientation = iota
	// Horizontal: lying down, covering a 2×1 area.
	Horizontal
	// Vertical: lying down, covering a 1×2 area.
	Vertical
)

var orientations = [...]string{
	Upright:    "upright",
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

func (o Orientation) String() string {
	s := ""
	if 0 <= int(o) && int(o) < len(orientations) {
		s = orientations[o]
	}
	if s == "" {
		s = "orientation(" + strconv.Itoa(int(o)) + ")"
	}
	return s
}

// Block is the rectangular block the player controls. Pos refers to the top
// left square of its covered area. A block is not, by itself, tied to a
// board; on its own it can move to any pair of integer coordinates.
type Block struct {
	Pos         grid.Point
	Orientation Orientation
}

// Move returns the result of moving the block once in the given direction,
// following the block movement mechanics of Bloxorz.
func (b Block) Move(d Direction) Block {
	// Movement:
	// Upright: | Horizontal: | Vertical:
	//          |             |
	//   U      |             |
	//   u      |  Uu         |  U
	// LlSRr    | LSsR        | LSR
	//   D      |  Dd         | lsr
	//   d      |             |  D
	//
	// S: start; L: left; R: right; U: up; D: down
	// Capital letters mark the square referred to by the block's coordinates.
	var dx, dy int
	next := b.Orientation
	switch b.Orientation {
	case Upright:
		switch d {
		case Left:
			dx, next = -2, Horizontal
		case Right:
			dx, next = 1, Horizontal
		case Up:
			dy, next = -2, Vertical
		case Down:
			dy, next = 1, Vertical
		}
	case Horizontal:
		switch d {
		case Left:
			dx, next = -1, Upright
		case Right:
			dx, next = 2, Upright
		case Up:
			dy = -1
		case Down:
			dy = 1
		}
	case Vertical:
		switch d {
		case Left:
			dx = -1
		case Right:
			dx = 1
		case Up:
			dy, next = -1, Upright
		case Down:
			dy, next = 2, Upright
		}
	}
	return Block{
		Pos:         grid.Point{X: b.Pos.X + dx, Y: b.Pos.Y + dy},
		Orientation: next,
	}
}

// covered returns the coordinates of both squares covered by the block. For
// upright blocks, the same coordinates twice.
func (b Block) covered() [2]grid.Point {
	second := b.Pos
	switch b.Orientation {
	case Horizontal:
		second.X++
	case Vertical:
		second.Y++
	}
	return [2]grid.Point{b.Pos, second}
}

// Touches reports whether any part of the block would be touching a tile of
// the given type if it were on the given board.
func (b Block) Touches(tile Tile, board *Board) bool {
	for _, p := range b.covered() {
		if board.TileAt(p) == tile {
			return true
		}
	}
	return false
}

// StandsOn reports whether the block would be standing upright on a tile of
// the given type if it were on the given board.
func (b Block) StandsOn(tile Tile, board *Board) bool {
	return b.Orientation == Upright && b.Touches(tile, board)
}
