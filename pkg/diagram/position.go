package diagram

import "github.com/ha1tch/fsmviz/pkg/fsm"

// GridPosition is a discrete layout coordinate.
type GridPosition struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Grid maps state ids to grid positions. Only states reachable from
// state 0 have an entry.
type Grid map[int]GridPosition

// Assign places every state reachable from state 0 on the grid using a
// depth-first traversal.
//
// State 0 sits at (0,0). When a state at (col, row) is expanded its
// unvisited successors (symbols in lexicographic order with targets in
// list order, then epsilon targets) are stacked in column col+1 starting
// at row. The first path to reach a state fixes its position.
func Assign(a *fsm.Automaton) Grid {
	grid := make(Grid)
	if len(a.States) == 0 {
		return grid
	}

	grid[0] = GridPosition{}
	stack := []int{0}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos := grid[s]

		row := pos.Row
		for _, next := range successors(a, s) {
			if next < 0 || next >= len(a.States) {
				continue
			}
			if _, seen := grid[next]; seen {
				continue
			}
			grid[next] = GridPosition{Column: pos.Column + 1, Row: row}
			row++
			stack = append(stack, next)
		}
	}

	return grid
}

// successors lists the transition targets of a state in traversal order.
func successors(a *fsm.Automaton, s int) []int {
	state := a.States[s]
	var next []int
	for _, sym := range state.Symbols() {
		next = append(next, state.Branches[sym]...)
	}
	return append(next, state.EpsilonTransitions...)
}

// MaxExtent returns the largest column and row in the grid, 0 for an
// empty grid.
func (g Grid) MaxExtent() (maxCol, maxRow int) {
	for _, p := range g {
		maxCol = max(maxCol, p.Column)
		maxRow = max(maxRow, p.Row)
	}
	return maxCol, maxRow
}
