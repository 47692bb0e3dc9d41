package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/fsm"
)

func (c *CLI) infoCommand() *cobra.Command {
	var src sourceOpts
	var table bool

	cmd := &cobra.Command{
		Use:   "info [pattern]",
		Short: "Summarize the automaton and its layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			d := c.buildDiagram(cmd.Context(), a)
			printSummary(cmd.OutOrStdout(), src.kind(), a, d)
			if table {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), a.String())
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&table, "table", false, "also print the state table")
	return cmd
}

// printSummary writes counts, marker positions and the canvas of a diagram.
func printSummary(w io.Writer, kind fsm.Kind, a *fsm.Automaton, d *diagram.Diagram) {
	fmt.Fprintln(w, StyleTitle.Render(strings.ToUpper(string(kind))))
	printKeyValue(w, "states", StyleNumber.Render(fmt.Sprint(len(a.States))))
	printKeyValue(w, "transitions", StyleNumber.Render(fmt.Sprint(a.TransitionCount())))
	printKeyValue(w, "alphabet", strings.Join(a.Alphabet(), " "))
	printKeyValue(w, "accepting", fmt.Sprint(a.Accepting()))
	printKeyValue(w, "canvas", fmt.Sprintf("%gx%g", d.Canvas.Width, d.Canvas.Height))

	fmt.Fprintln(w)
	for _, m := range d.Markers {
		printInfo(w, "state %d at column %d, row %d (%s)", m.ID, m.Grid.Column, m.Grid.Row, m.Kind)
	}
	for _, e := range d.Edges {
		printDetail(w, "%d %s %d  %s", e.From, iconArrow, e.To, edgeLabel(e.Edge))
	}

	if len(d.Omitted) > 0 {
		printWarning(w, "unreachable states not drawn: %v", d.Omitted)
	}
	for _, e := range d.Skipped {
		reason := "states share a grid cell"
		if _, ok := d.Marker(e.To); !ok {
			reason = fmt.Sprintf("state %d not placed", e.To)
		}
		printWarning(w, "edge %d %s %d (%s) not drawn: %s", e.From, iconArrow, e.To, edgeLabel(e), reason)
	}
}

func edgeLabel(e diagram.Edge) string {
	if e.IsEpsilon() {
		return "ε"
	}
	return e.Label
}
