package bloxorz

import "strconv"

// Status is the outcome of a game so far.
type Status int

const (
	// Active means the game is ongoing and the player can still move.
	Active Status = iota
	// Win means the block fell through a goal.
	Win
	// Loss means the player entered a fail state.
	Loss
)

var statuses = [...]string{
	Active: "active",
	Win:    "win",
	Loss:   "loss",
}

func (s Status) String() string {
	str := ""
	if 0 <= int(s) && int(s) < len(statuses) {
		str = statuses[s]
	}
	if str == "" {
		str = "status(" + strconv.Itoa(int(s)) + ")"
	}
	return str
}

// Game is a game of Bloxorz in a specific state.
type Game struct {
	Board *Board
	Block Block
}

// Status evaluates the game state in accordance with the rules of Bloxorz:
// any part of the block over empty space is a loss, standing upright on a
// fragile tile is a loss, and standing upright on a goal is a win.
func (g Game) Status() Status {
	switch {
	case g.Block.Touches(Empty, g.Board):
		return Loss
	case g.Block.StandsOn(Fragile, g.Board):
		return Loss
	case g.Block.StandsOn(Goal, g.Board):
		return Win
	default:
		return Active
	}
}

// Move returns the result of moving the block once in the given direction.
// Moves are only meaningful while the game is active; finished games stay
// finished no matter how the block would keep rolling.
func (g Game) Move(d Direction) Game {
	return Game{Board: g.Board, Block: g.Block.Move(d)}
}
