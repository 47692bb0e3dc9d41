package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

func (c *CLI) matchCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "match [pattern] <input>...",
		Short: "Run the automaton on each input and report acceptance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, used, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			inputs := args[used:]
			if len(inputs) == 0 {
				return fmt.Errorf("no inputs to match")
			}

			rejected := 0
			for _, in := range inputs {
				if !runInput(cmd, a, in) {
					rejected++
				}
			}
			loggerFromContext(cmd.Context()).Debug("match done", "inputs", len(inputs), "rejected", rejected)
			return nil
		},
	}

	src.register(cmd)
	return cmd
}

// runInput steps a fresh runner through input and prints the outcome.
func runInput(cmd *cobra.Command, a *fsm.Automaton, input string) bool {
	w := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())

	r, err := fsm.NewRunner(a)
	if err != nil {
		printError(w, "%q: %v", input, err)
		return false
	}
	if err := r.RunString(input); err != nil {
		printError(w, "%q rejected: %v", input, err)
		if next := r.AvailableInputs(); len(next) > 0 {
			printDetail(w, "expected one of: %s", strings.Join(next, " "))
		}
		return false
	}
	for _, s := range r.History() {
		logger.Debug("step", "from", s.FromStates, "input", s.Symbol, "to", s.ToStates)
	}
	logger.Debug("input consumed", "input", input, "states", r.CurrentStates())
	if !r.IsAccepting() {
		printError(w, "%q rejected: ends in non-accepting %s", input, r.CurrentState())
		return false
	}
	printSuccess(w, "%q accepted in %s", input, r.CurrentState())
	return true
}
