package fsm

// Compile parses a pattern and builds its NFA and the equivalent DFA.
func Compile(pattern string) (*Machines, error) {
	nfa, err := FromPattern(pattern)
	if err != nil {
		return nil, err
	}
	return &Machines{NFA: nfa, DFA: nfa.ToDFA()}, nil
}

// FromPattern builds an NFA with epsilon transitions from a pattern.
// State 0 is the initial state and exactly one state accepts.
func FromPattern(pattern string) (*Automaton, error) {
	root, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	a := &Automaton{}
	initial := a.AddState()
	final := a.insert(initial, root)
	a.States[final].Accepts = true
	return a, nil
}

// insert wires n into the automaton starting at state and returns the
// state reached after n has been matched.
func (a *Automaton) insert(state int, n Node) int {
	switch n := n.(type) {
	case Literal:
		next := a.AddState()
		a.AddBranch(state, string(n.Char), next)
		return next

	case Repeat:
		loop := a.AddState()
		a.AddEpsilon(state, loop)
		end := a.insert(loop, n.Sub)
		a.AddEpsilon(end, loop)
		return loop

	case Alternate:
		left := a.insert(state, n.Left)
		right := a.insert(state, n.Right)
		join := a.AddState()
		a.AddEpsilon(left, join)
		a.AddEpsilon(right, join)
		return join

	case Concat:
		return a.insert(a.insert(state, n.Left), n.Right)
	}

	panic("fsm: unknown pattern node")
}
