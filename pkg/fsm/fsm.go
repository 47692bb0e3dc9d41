// Package fsm provides core finite automaton types and operations.
package fsm

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Kind distinguishes the automata produced by the compiler.
type Kind string

const (
	KindNFA Kind = "nfa"
	KindDFA Kind = "dfa"
)

// State is one row of an automaton's state table.
type State struct {
	Accepts            bool             `json:"accepts"`
	EpsilonTransitions []int            `json:"epsilon_transitions"`
	Branches           map[string][]int `json:"branches"` // symbol -> target ids
}

// Automaton is an indexed state table. State 0 is the initial state.
type Automaton struct {
	States []State `json:"states"`
}

// Machines holds both automata compiled from one pattern.
type Machines struct {
	NFA *Automaton
	DFA *Automaton
}

// Get returns the automaton of the given kind.
func (m *Machines) Get(k Kind) *Automaton {
	if k == KindDFA {
		return m.DFA
	}
	return m.NFA
}

// AddState appends an empty state and returns its id.
func (a *Automaton) AddState() int {
	a.States = append(a.States, State{
		EpsilonTransitions: []int{},
		Branches:           make(map[string][]int),
	})
	return len(a.States) - 1
}

// AddBranch adds a transition on symbol from one state to another.
func (a *Automaton) AddBranch(from int, symbol string, to int) {
	s := &a.States[from]
	if s.Branches == nil {
		s.Branches = make(map[string][]int)
	}
	s.Branches[symbol] = append(s.Branches[symbol], to)
}

// AddEpsilon adds an epsilon transition.
func (a *Automaton) AddEpsilon(from, to int) {
	a.States[from].EpsilonTransitions = append(a.States[from].EpsilonTransitions, to)
}

// Symbols returns the branch symbols of the state in lexicographic order.
func (s State) Symbols() []string {
	symbols := make([]string, 0, len(s.Branches))
	for sym := range s.Branches {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// Alphabet returns every symbol used by the automaton, sorted.
func (a *Automaton) Alphabet() []string {
	seen := make(map[string]bool)
	var alphabet []string
	for _, s := range a.States {
		for sym := range s.Branches {
			if !seen[sym] {
				seen[sym] = true
				alphabet = append(alphabet, sym)
			}
		}
	}
	sort.Strings(alphabet)
	return alphabet
}

// Accepting returns the ids of accepting states.
func (a *Automaton) Accepting() []int {
	var ids []int
	for i, s := range a.States {
		if s.Accepts {
			ids = append(ids, i)
		}
	}
	return ids
}

// TransitionCount returns the number of individual transitions, counting
// each target of a branch separately.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, s := range a.States {
		n += len(s.EpsilonTransitions)
		for _, targets := range s.Branches {
			n += len(targets)
		}
	}
	return n
}

// Validate checks that the automaton is well-formed.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		return fmt.Errorf("automaton has no states")
	}

	valid := func(id int) bool { return id >= 0 && id < len(a.States) }

	for i, s := range a.States {
		for _, to := range s.EpsilonTransitions {
			if !valid(to) {
				return fmt.Errorf("state %d: epsilon target %d out of range", i, to)
			}
		}
		for sym, targets := range s.Branches {
			if utf8.RuneCountInString(sym) != 1 {
				return fmt.Errorf("state %d: symbol %q is not a single character", i, sym)
			}
			for _, to := range targets {
				if !valid(to) {
					return fmt.Errorf("state %d: target %d on %q out of range", i, to, sym)
				}
			}
		}
	}

	return nil
}

// String returns a string representation of the automaton.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Automaton: %d states\n", len(a.States)))
	for i, s := range a.States {
		mark := " "
		if s.Accepts {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s%d:", mark, i))
		for _, sym := range s.Symbols() {
			sb.WriteString(fmt.Sprintf(" %s->%v", sym, s.Branches[sym]))
		}
		if len(s.EpsilonTransitions) > 0 {
			sb.WriteString(fmt.Sprintf(" ε->%v", s.EpsilonTransitions))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
