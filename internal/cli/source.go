package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// sourceOpts selects the automaton a command works on.
type sourceOpts struct {
	dfa  bool   // use the DFA instead of the NFA
	file string // JSON automaton; replaces the pattern argument
}

func (o *sourceOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.dfa, "dfa", false, "use the DFA instead of the NFA")
	cmd.Flags().StringVar(&o.file, "file", "", "read a JSON automaton instead of compiling a pattern")
}

func (o *sourceOpts) kind() fsm.Kind {
	if o.dfa {
		return fsm.KindDFA
	}
	return fsm.KindNFA
}

// load returns the automaton named by the pattern argument or --file,
// together with the number of arguments it consumed.
func (o *sourceOpts) load(ctx context.Context, args []string) (*fsm.Automaton, int, error) {
	logger := loggerFromContext(ctx)

	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return nil, 0, fmt.Errorf("read automaton: %w", err)
		}
		a, err := fsm.ParseJSON(data)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", o.file, err)
		}
		logger.Debug("loaded automaton", "file", o.file, "states", len(a.States))
		if o.dfa {
			a = a.ToDFA()
		}
		return a, 0, nil
	}

	if len(args) == 0 {
		return nil, 0, errors.New("a pattern argument or --file is required")
	}

	m, err := fsm.Compile(args[0])
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("compiled pattern", "pattern", args[0],
		"nfa_states", len(m.NFA.States), "dfa_states", len(m.DFA.States))
	return m.Get(o.kind()), 1, nil
}

// buildDiagram lays out an automaton and logs anything left out.
func (c *CLI) buildDiagram(ctx context.Context, a *fsm.Automaton) *diagram.Diagram {
	logger := loggerFromContext(ctx)

	d := diagram.Build(a, c.config.Layout)
	if len(d.Omitted) > 0 {
		logger.Warn("unreachable states omitted", "states", d.Omitted)
	}
	for _, e := range d.Skipped {
		logger.Warn("edge not drawn", "from", e.From, "to", e.To, "label", e.Label)
	}
	logger.Debug("layout done", "markers", len(d.Markers), "edges", len(d.Edges),
		"width", d.Canvas.Width, "height", d.Canvas.Height)
	return d
}

// writeOutput sends the output of write to path, or to the command's
// stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	prog.done("Wrote " + path)
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
