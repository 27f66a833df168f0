package bloxorz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shape-warrior-t/challenge-portfolio/bloxorz"
	"github.com/shape-warrior-t/challenge-portfolio/grid"
)

func pt(x, y int) grid.Point {
	return grid.Point{X: x, Y: y}
}

func mustParseBoard(t *testing.T, art string) *bloxorz.Board {
	t.Helper()
	board, err := bloxorz.ParseBoard(art)
	require.NoError(t, err)
	return board
}

func dumbbellBoard(t *testing.T) *bloxorz.Board {
	t.Helper()
	return mustParseBoard(t, `
		# # # . . . # # $
		# # # ! ! ! # # #
		# # # ! ! ! # # #
		# # # . . . # # $
	`)
}

func TestTileAt(t *testing.T) {
	board := dumbbellBoard(t)

	tests := []struct {
		name string
		p    grid.Point
		want bloxorz.Tile
	}{
		{"out of bounds left", pt(-5, 2), bloxorz.Empty},
		{"out of bounds down", pt(4, 4), bloxorz.Empty},
		{"regular", pt(0, 2), bloxorz.Regular},
		{"empty", pt(3, 3), bloxorz.Empty},
		{"fragile", pt(5, 1), bloxorz.Fragile},
		{"top goal", pt(8, 0), bloxorz.Goal},
		{"bottom goal", pt(8, 3), bloxorz.Goal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, board.TileAt(tt.p))
		})
	}
}

func TestParseBoard(t *testing.T) {
	board, err := bloxorz.ParseBoard("#!\n$.")
	require.NoError(t, err)
	require.Equal(t, bloxorz.Regular, board.TileAt(pt(0, 0)))
	require.Equal(t, bloxorz.Fragile, board.TileAt(pt(1, 0)))
	require.Equal(t, bloxorz.Goal, board.TileAt(pt(0, 1)))
	require.Equal(t, bloxorz.Empty, board.TileAt(pt(1, 1)))
}

func TestParseBoardErrors(t *testing.T) {
	_, err := bloxorz.ParseBoard("#x#")
	require.EqualError(t, err, `bloxorz: unexpected character 'x'`)

	_, err = bloxorz.ParseBoard("###\n##")
	require.EqualError(t, err, "grid: row 1 has 2 cells, want 3")
}

func TestParseBoardEmpty(t *testing.T) {
	// A stage with no tiles at all: everything is empty space.
	board, err := bloxorz.ParseBoard("")
	require.NoError(t, err)
	require.Equal(t, bloxorz.Empty, board.TileAt(pt(0, 0)))
}

func TestTileString(t *testing.T) {
	require.Equal(t, ".", bloxorz.Empty.String())
	require.Equal(t, "#", bloxorz.Regular.String())
	require.Equal(t, "!", bloxorz.Fragile.String())
	require.Equal(t, "$", bloxorz.Goal.String())
	require.Equal(t, "tile(7)", bloxorz.Tile(7).String())
}
