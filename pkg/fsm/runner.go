package fsm

import (
	"fmt"
	"strconv"
	"strings"
)

// Runner executes an automaton one symbol at a time.
// It tracks all possible current states simultaneously, so it works for
// NFAs and DFAs alike.
type Runner struct {
	automaton *Automaton
	current   []int // sorted, epsilon-closed
	history   []Step
}

// Step records one step of execution.
type Step struct {
	FromStates []int
	Symbol     string
	ToStates   []int
}

// NewRunner creates a runner for the given automaton.
func NewRunner(a *Automaton) (*Runner, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}

	r := &Runner{automaton: a}
	r.Reset()
	return r, nil
}

// CurrentStates returns the current states, sorted.
func (r *Runner) CurrentStates() []int {
	return append([]int(nil), r.current...)
}

// CurrentState returns the current state set as a string.
func (r *Runner) CurrentState() string {
	return formatStateSet(r.current)
}

// IsAccepting returns true if any current state is accepting.
func (r *Runner) IsAccepting() bool {
	for _, s := range r.current {
		if r.automaton.States[s].Accepts {
			return true
		}
	}
	return false
}

// AvailableInputs returns the symbols valid from any current state.
func (r *Runner) AvailableInputs() []string {
	return r.automaton.symbolsOf(r.current)
}

// Step consumes one symbol.
// Returns an error if no current state has a transition on the symbol;
// the runner is left unchanged in that case.
func (r *Runner) Step(symbol string) error {
	var next []int
	for _, s := range r.current {
		next = append(next, r.automaton.States[s].Branches[symbol]...)
	}

	if len(next) == 0 {
		return fmt.Errorf("no transition from state %s on input %q", r.CurrentState(), symbol)
	}

	next = r.automaton.EpsilonClosure(next)
	r.history = append(r.history, Step{
		FromStates: r.current,
		Symbol:     symbol,
		ToStates:   next,
	})
	r.current = next

	return nil
}

// RunString processes a sequence of single-character inputs.
func (r *Runner) RunString(input string) error {
	for _, c := range input {
		if err := r.Step(string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns the runner to the epsilon closure of state 0.
func (r *Runner) Reset() {
	r.current = r.automaton.EpsilonClosure([]int{0})
	r.history = nil
}

// History returns the execution history.
func (r *Runner) History() []Step {
	return r.history
}

// Match reports whether the automaton accepts the whole input.
func (a *Automaton) Match(input string) bool {
	r, err := NewRunner(a)
	if err != nil {
		return false
	}
	if err := r.RunString(input); err != nil {
		return false
	}
	return r.IsAccepting()
}

// formatStateSet formats a sorted slice of states as a string.
func formatStateSet(states []int) string {
	if len(states) == 1 {
		return strconv.Itoa(states[0])
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = strconv.Itoa(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
