// Package rainfall identifies drainage basins in a rectangular region of
// land. The region is a grid of altitudes. Rain on a cell flows to the
// lowest of the cell and its orthogonal neighbors, repeating until it
// reaches a sink, a cell lower than every neighbor, where it collects. The
// cells draining into a common sink form that sink's basin.
//
// Regions must satisfy the unique lowest altitude requirement: a cell and
// its neighbors always have exactly one cell of lowest altitude. Regions
// that violate it are invalid.
package rainfall

import (
	"fmt"

	"github.com/shape-warrior-t/challenge-portfolio/grid"
)

// Basin identifies a basin by the sink its cells drain into.
type Basin struct {
	// Sink is the cell that all cells in the basin drain into. A sink
	// drains into itself.
	Sink grid.Point
}

func (b Basin) String() string {
	return b.Sink.String()
}

// AmbiguityError reports a violation of the unique lowest altitude
// requirement.
type AmbiguityError struct {
	// Cell is a cell whose neighborhood has more than one cell of lowest
	// altitude. An invalid region can have several such cells; Cell is the
	// one the scan found first.
	Cell grid.Point
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("rainfall: no unique lowest altitude in the neighborhood of %v", e.Cell)
}

// IdentifyBasins returns a grid mapping every cell of region to the basin
// the cell belongs to. It fails with an *AmbiguityError when the region is
// invalid.
//
// Basins are computed by walking downhill from each cell with the results
// memoized, so the whole identification is linear in the number of cells.
func IdentifyBasins(region *grid.Grid[int]) (*grid.Grid[Basin], error) {
	basins := grid.New[*Basin](region.Width(), region.Height())
	for y := 0; y < region.Height(); y++ {
		for x := 0; x < region.Width(); x++ {
			if err := identifyBasinAt(region, grid.Point{X: x, Y: y}, basins); err != nil {
				return nil, err
			}
		}
	}
	return grid.MapGrid(basins, func(b *Basin) Basin { return *b }), nil
}

// identifyBasinAt records the basin for cell in basins, if not already
// recorded, by following the downhill flow of rain.
func identifyBasinAt(region *grid.Grid[int], cell grid.Point, basins *grid.Grid[*Basin]) error {
	if basins.At(cell) != nil {
		return nil
	}
	lowest, err := locallyLowestCell(region, cell)
	if err != nil {
		return err
	}
	if lowest == cell {
		// The cell is lower than all of its neighbors: a sink.
		basins.Set(cell, &Basin{Sink: cell})
		return nil
	}
	if err := identifyBasinAt(region, lowest, basins); err != nil {
		return err
	}
	basins.Set(cell, basins.At(lowest))
	return nil
}

// locallyLowestCell returns the cell of lowest altitude among cell and its
// in-bounds orthogonal neighbors. It fails with an *AmbiguityError when the
// lowest altitude is shared by more than one of them.
func locallyLowestCell(region *grid.Grid[int], cell grid.Point) (grid.Point, error) {
	var (
		lowest    grid.Point
		lowestAlt int
		count     int
	)
	for _, neighbor := range Neighborhood(cell) {
		alt, inBounds := region.Get(neighbor)
		if !inBounds {
			continue
		}
		switch {
		case count == 0 || alt < lowestAlt:
			lowest, lowestAlt, count = neighbor, alt, 1
		case alt == lowestAlt:
			count++
		}
	}
	if count != 1 {
		return grid.Point{}, &AmbiguityError{Cell: cell}
	}
	return lowest, nil
}

// Neighborhood returns cell and its four orthogonal neighbors. Cells on the
// edge of a region get out-of-bounds coordinates, which callers are
// expected to filter.
func Neighborhood(cell grid.Point) [5]grid.Point {
	return [5]grid.Point{
		cell,
		{X: cell.X - 1, Y: cell.Y},
		{X: cell.X + 1, Y: cell.Y},
		{X: cell.X, Y: cell.Y - 1},
		{X: cell.X, Y: cell.Y + 1},
	}
}
