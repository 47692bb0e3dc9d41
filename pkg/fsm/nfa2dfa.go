package fsm

import (
	"sort"
	"strconv"
	"strings"
)

// ToDFA converts the automaton to an equivalent DFA using the powerset
// construction. DFA states are numbered in breadth-first discovery order
// starting from the epsilon closure of state 0; each branch has exactly
// one target and there are no epsilon transitions.
func (a *Automaton) ToDFA() *Automaton {
	dfa := &Automaton{}
	if len(a.States) == 0 {
		return dfa
	}

	// Helper to convert state set to canonical key
	setKey := func(set []int) string {
		parts := make([]string, len(set))
		for i, s := range set {
			parts[i] = strconv.Itoa(s)
		}
		return strings.Join(parts, ",")
	}

	// Helper to check if state set contains an accepting state
	accepts := func(set []int) bool {
		for _, s := range set {
			if a.States[s].Accepts {
				return true
			}
		}
		return false
	}

	initial := a.EpsilonClosure([]int{0})
	ids := map[string]int{setKey(initial): dfa.AddState()}
	dfa.States[0].Accepts = accepts(initial)

	queue := [][]int{initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		from := ids[setKey(current)]

		for _, sym := range a.symbolsOf(current) {
			// Compute target state set
			var targets []int
			for _, s := range current {
				targets = append(targets, a.States[s].Branches[sym]...)
			}
			targets = a.EpsilonClosure(targets)
			key := setKey(targets)

			to, seen := ids[key]
			if !seen {
				to = dfa.AddState()
				dfa.States[to].Accepts = accepts(targets)
				ids[key] = to
				queue = append(queue, targets)
			}
			dfa.AddBranch(from, sym, to)
		}
	}

	return dfa
}

// EpsilonClosure returns the sorted set of states reachable from the given
// states using only epsilon transitions, the states themselves included.
// Out-of-range ids are ignored.
func (a *Automaton) EpsilonClosure(states []int) []int {
	reachable := make(map[int]bool)
	stack := append([]int(nil), states...)

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s < 0 || s >= len(a.States) || reachable[s] {
			continue
		}
		reachable[s] = true
		stack = append(stack, a.States[s].EpsilonTransitions...)
	}

	closure := make([]int, 0, len(reachable))
	for s := range reachable {
		closure = append(closure, s)
	}
	sort.Ints(closure)
	return closure
}

// symbolsOf returns the sorted union of branch symbols of the given states.
func (a *Automaton) symbolsOf(states []int) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, s := range states {
		for sym := range a.States[s].Branches {
			if !seen[sym] {
				seen[sym] = true
				symbols = append(symbols, sym)
			}
		}
	}
	sort.Strings(symbols)
	return symbols
}
