package bloxorz

// step records the move that reached a block state and the state it was
// made from, so that a solution can be reconstructed backwards from a win.
type step struct {
	move Direction
	prev Block
}

// Solve returns the shortest list of moves that wins the given game, with
// ok reporting whether the game is winnable at all. When several shortest
// solutions exist, which one is returned is unspecified.
//
// The search is a breadth-first walk over block states, so the number of
// states explored is bounded by the stage area times the three
// orientations.
func Solve(g Game) (moves []Direction, ok bool) {
	queue := []Game{g}
	visited := map[Block]*step{g.Block: nil}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		switch curr.Status() {
		case Win:
			return traceMoves(visited, curr.Block), true
		case Loss:
		case Active:
			for _, d := range Directions {
				next := curr.Move(d)
				if _, seen := visited[next.Block]; seen {
					continue
				}
				visited[next.Block] = &step{move: d, prev: curr.Block}
				queue = append(queue, next)
			}
		}
	}
	return nil, false
}

// traceMoves reconstructs the moves leading to the state with the given
// block, based on the map of visited states.
func traceMoves(visited map[Block]*step, final Block) []Direction {
	var reversed []Direction
	for st := visited[final]; st != nil; st = visited[st.prev] {
		reversed = append(reversed, st.move)
	}
	moves := make([]Direction, len(reversed))
	for i, d := range reversed {
		moves[len(moves)-1-i] = d
	}
	return moves
}
