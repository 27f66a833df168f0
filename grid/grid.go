// Package grid provides a generic 2D list type for the grid-based
// challenges.
package grid

import (
	"fmt"
	"strings"
)

// Point is a pair of signed grid coordinates. (0, 0) is the top-left cell;
// x grows rightward and y grows downward. Out-of-bounds points are
// representable so that neighborhood scans can run off the edges.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a 2D list. Data is stored in row-major order, and all iteration
// over the grid is in row-major order.
type Grid[T any] struct {
	data   []T
	width  int
	height int
}

// New returns a grid of the given dimensions with every cell holding the
// zero value. It panics if either dimension is negative.
func New[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions (%d, %d)", width, height))
	}
	return &Grid[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}
}

// Filled returns a grid of the given dimensions with every cell set to
// value. It panics if either dimension is negative.
func Filled[T any](value T, width, height int) *Grid[T] {
	g := New[T](width, height)
	for i := range g.data {
		g.data[i] = value
	}
	return g
}

// FromRows builds a grid from rows of equal length. Rows of differing
// lengths are an error.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	data := make([]T, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", y, len(row), width)
		}
		data = append(data, row...)
	}
	return &Grid[T]{data: data, width: width, height: height}, nil
}

// Width is the horizontal size of the grid.
func (g *Grid[T]) Width() int { return g.width }

// Height is the vertical size of the grid.
func (g *Grid[T]) Height() int { return g.height }

// Dimensions returns the width and height of the grid.
func (g *Grid[T]) Dimensions() (width, height int) {
	return g.width, g.height
}

// index converts p into an index for the data slice, reporting whether p is
// in bounds.
func (g *Grid[T]) index(p Point) (int, bool) {
	if p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

func (g *Grid[T]) boundsError(p Point) string {
	return fmt.Sprintf("grid: index %v out of bounds for dimensions (%d, %d)", p, g.width, g.height)
}

// Get returns the element at p, reporting whether p is in bounds.
func (g *Grid[T]) Get(p Point) (T, bool) {
	i, ok := g.index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// At returns the element at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	i, ok := g.index(p)
	if !ok {
		panic(g.boundsError(p))
	}
	return g.data[i]
}

// Set replaces the element at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p Point, value T) {
	i, ok := g.index(p)
	if !ok {
		panic(g.boundsError(p))
	}
	g.data[i] = value
}

// ForEach calls fn for every cell of the grid in row-major order.
func (g *Grid[T]) ForEach(fn func(p Point, value T)) {
	for i, v := range g.data {
		fn(Point{X: i % g.width, Y: i / g.width}, v)
	}
}

// MapGrid returns a grid of the same dimensions with fn applied to every
// cell. It is a package function because methods cannot introduce type
// parameters.
func MapGrid[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	out := &Grid[U]{
		data:   make([]U, len(g.data)),
		width:  g.width,
		height: g.height,
	}
	for i, v := range g.data {
		out.data[i] = fn(v)
	}
	return out
}

// String renders the grid as a 2D array, one row per line. Grids with a
// width or height of 0 are special-cased to make their dimensions clear.
func (g *Grid[T]) String() string {
	if g.width == 0 || g.height == 0 {
		return fmt.Sprintf("<empty grid: (%d, %d)>", g.width, g.height)
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for y := 0; y < g.height; y++ {
		sb.WriteString("    [")
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", g.data[y*g.width+x])
		}
		sb.WriteString("],\n")
	}
	sb.WriteString("]")
	return sb.String()
}
