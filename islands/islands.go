// Package islands finds the sizes of islands in a rectangular grid of water
// and land squares. An island is a group of land squares connected
// orthogonally or diagonally.
package islands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shape-warrior-t/challenge-portfolio/grid"
)

// Square is one square of the map.
type Square int

const (
	Water Square = iota
	Land
)

var squares = [...]string{
	Water: ".",
	Land:  "#",
}

func (sq Square) String() string {
	s := ""
	if 0 <= int(sq) && int(sq) < len(squares) {
		s = squares[sq]
	}
	if s == "" {
		s = "square(" + strconv.Itoa(int(sq)) + ")"
	}
	return s
}

// Parse reads a map from ASCII art: one line per row with '.' for water and
// '#' for land. Spaces within a line are ignored and blank lines are
// skipped, so indented art with gaps between squares parses cleanly.
func Parse(s string) (*grid.Grid[Square], error) {
	var rows [][]Square
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var row []Square
		for _, ch := range line {
			switch ch {
			case ' ', '\t':
			case '.':
				row = append(row, Water)
			case '#':
				row = append(row, Land)
			default:
				return nil, fmt.Errorf("islands: unexpected character %q", ch)
			}
		}
		rows = append(rows, row)
	}
	return grid.FromRows(rows)
}

// neighborDisplacements are the offsets of the 8 orthogonal and diagonal
// neighbors of a square.
var neighborDisplacements = [8]grid.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Sizes returns the sizes of the islands in g, in no particular order.
//
// Every square is visited at most once and every VisitTracker operation is
// constant time, so the whole computation is linear in the number of
// squares.
func Sizes(g *grid.Grid[Square]) []int {
	visited := grid.New[bool](g.Width(), g.Height())
	var sizes []int
	g.ForEach(func(p grid.Point, _ Square) {
		if size, ok := visitIsland(g, p, visited); ok {
			sizes = append(sizes, size)
		}
	})
	return sizes
}

// visitIsland visits every square in the island containing the square at p
// and returns the number of squares visited. ok is false when the square at
// p is water or was already visited, meaning no new island starts there.
func visitIsland(g *grid.Grid[Square], p grid.Point, visited *grid.Grid[bool]) (size int, ok bool) {
	tracker := &visitTracker{grid: g, visited: visited}
	if !tracker.visit(p) {
		return 0, false
	}
	for len(tracker.queue) > 0 {
		curr := tracker.queue[0]
		tracker.queue = tracker.queue[1:]
		for _, d := range neighborDisplacements {
			tracker.visit(grid.Point{X: curr.X + d.X, Y: curr.Y + d.Y})
		}
	}
	return tracker.numVisited, true
}

// visitTracker keeps track of visited squares during one island's flood
// fill.
type visitTracker struct {
	grid *grid.Grid[Square]
	// visited marks the squares visited by any tracker.
	visited *grid.Grid[bool]
	// numVisited counts the squares visited by this tracker.
	numVisited int
	// queue holds visited squares whose neighbors still need visiting.
	queue []grid.Point
}

// visit visits the square at p. It reports false, leaving the tracker
// untouched, when p is out of bounds, water, or already visited.
func (tr *visitTracker) visit(p grid.Point) bool {
	square, inBounds := tr.grid.Get(p)
	if !inBounds || square != Land || tr.visited.At(p) {
		return false
	}
	tr.visited.Set(p, true)
	tr.numVisited++
	tr.queue = append(tr.queue, p)
	return true
}
