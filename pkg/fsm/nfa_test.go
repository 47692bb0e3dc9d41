package fsm

import (
	"reflect"
	"testing"
)

// state builds a state with an optional branch table and epsilon targets.
func state(accepts bool, branches map[string][]int, eps ...int) State {
	if branches == nil {
		branches = map[string][]int{}
	}
	return State{Accepts: accepts, Branches: branches, EpsilonTransitions: eps}
}

// TestNFARunnerMultipleTargets tests that the runner follows every target
func TestNFARunnerMultipleTargets(t *testing.T) {
	// on "a" state 0 can go to either 1 or 2
	a := &Automaton{States: []State{
		state(false, map[string][]int{"a": {1, 2}}),
		state(false, nil),
		state(true, nil),
	}}

	runner, err := NewRunner(a)
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	if states := runner.CurrentStates(); !reflect.DeepEqual(states, []int{0}) {
		t.Errorf("Expected initial state [0], got %v", states)
	}

	if err := runner.Step("a"); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if states := runner.CurrentStates(); len(states) != 2 {
		t.Errorf("Expected 2 states after NFA step, got %v", states)
	}
	if !runner.IsAccepting() {
		t.Error("Expected accepting state (2 is in current states)")
	}
	if runner.CurrentState() != "{1, 2}" {
		t.Errorf("Expected {1, 2}, got %s", runner.CurrentState())
	}
}

// TestNFAEpsilonClosure tests epsilon transitions
func TestNFAEpsilonClosure(t *testing.T) {
	// 0 --ε--> 1 --a--> 2
	a := &Automaton{States: []State{
		state(false, nil, 1),
		state(false, map[string][]int{"a": {2}}),
		state(true, nil),
	}}

	runner, err := NewRunner(a)
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	if states := runner.CurrentStates(); !reflect.DeepEqual(states, []int{0, 1}) {
		t.Errorf("Expected initial closure [0 1], got %v", states)
	}

	if err := runner.Step("a"); err != nil {
		t.Errorf("Expected 'a' to be valid (via epsilon closure): %v", err)
	}
	if !runner.IsAccepting() {
		t.Error("Expected accepting state after 'a'")
	}
}

func TestEpsilonClosureCycle(t *testing.T) {
	a := &Automaton{States: []State{
		state(false, nil, 1),
		state(false, nil, 0, 2),
		state(true, nil),
	}}

	if got := a.EpsilonClosure([]int{0}); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Expected [0 1 2], got %v", got)
	}
}

// TestNFAToDFA tests the powerset construction
func TestNFAToDFA(t *testing.T) {
	// 0 --a--> {1, 2}, 1 --b--> 3, 2 --b--> 3
	a := &Automaton{States: []State{
		state(false, map[string][]int{"a": {1, 2}}),
		state(false, map[string][]int{"b": {3}}),
		state(false, map[string][]int{"b": {3}}),
		state(true, nil),
	}}

	dfa := a.ToDFA()

	// {0}, {1,2}, {3}
	if len(dfa.States) != 3 {
		t.Fatalf("Expected 3 DFA states, got %d:\n%s", len(dfa.States), dfa)
	}
	for i, s := range dfa.States {
		if len(s.EpsilonTransitions) != 0 {
			t.Errorf("DFA state %d has epsilon transitions", i)
		}
		for sym, targets := range s.Branches {
			if len(targets) != 1 {
				t.Errorf("DFA state %d on %q has %d targets", i, sym, len(targets))
			}
		}
	}

	if !dfa.Match("ab") {
		t.Error("Expected DFA to accept 'ab'")
	}
	if dfa.Match("a") {
		t.Error("Expected DFA to reject 'a'")
	}
}

// TestNFAToDFAWithEpsilon tests NFA-to-DFA with epsilon transitions
func TestNFAToDFAWithEpsilon(t *testing.T) {
	// 0 --ε--> 1 --a--> 2
	a := &Automaton{States: []State{
		state(false, nil, 1),
		state(false, map[string][]int{"a": {2}}),
		state(true, nil),
	}}

	dfa := a.ToDFA()

	if len(dfa.States) != 2 {
		t.Errorf("Expected 2 DFA states, got %d", len(dfa.States))
	}
	if dfa.States[0].Accepts {
		t.Error("Initial DFA state should not accept")
	}
	if !dfa.Match("a") {
		t.Error("Expected DFA to accept 'a'")
	}
}

func TestToDFAAcceptingInitial(t *testing.T) {
	a := &Automaton{States: []State{
		state(false, nil, 1),
		state(true, nil),
	}}

	dfa := a.ToDFA()
	if len(dfa.States) != 1 || !dfa.States[0].Accepts {
		t.Errorf("Expected single accepting DFA state, got:\n%s", dfa)
	}
}

// TestNFARunnerAvailableInputs tests that available inputs come from all current states
func TestNFARunnerAvailableInputs(t *testing.T) {
	a := &Automaton{States: []State{
		state(false, map[string][]int{"a": {1, 2}}),
		state(false, map[string][]int{"b": {0}}),
		state(false, map[string][]int{"c": {0}}),
	}}

	runner, _ := NewRunner(a)
	runner.Step("a") // now in {1, 2}

	inputs := runner.AvailableInputs()
	if !reflect.DeepEqual(inputs, []string{"b", "c"}) {
		t.Errorf("Expected [b c] (b from 1, c from 2), got %v", inputs)
	}
}

func TestRunnerStepError(t *testing.T) {
	a := &Automaton{States: []State{
		state(false, map[string][]int{"a": {1}}),
		state(true, nil),
	}}

	runner, _ := NewRunner(a)
	if err := runner.Step("z"); err == nil {
		t.Error("Expected error for missing transition")
	}
	if !reflect.DeepEqual(runner.CurrentStates(), []int{0}) {
		t.Errorf("Failed step should not move the runner, got %v", runner.CurrentStates())
	}

	runner.Step("a")
	if len(runner.History()) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(runner.History()))
	}
	runner.Reset()
	if len(runner.History()) != 0 || runner.IsAccepting() {
		t.Error("Reset should clear history and return to state 0")
	}
}

func TestNewRunnerInvalid(t *testing.T) {
	if _, err := NewRunner(&Automaton{}); err == nil {
		t.Error("Expected error for empty automaton")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       *Automaton
		wantErr bool
	}{
		{"empty", &Automaton{}, true},
		{"single", &Automaton{States: []State{state(true, nil)}}, false},
		{"epsilon out of range", &Automaton{States: []State{state(false, nil, 3)}}, true},
		{"branch out of range", &Automaton{States: []State{state(false, map[string][]int{"a": {-1}})}}, true},
		{"multi-char symbol", &Automaton{States: []State{state(false, map[string][]int{"ab": {0}})}}, true},
		{"unicode symbol", &Automaton{States: []State{state(false, map[string][]int{"é": {0}})}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
