package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/fsm"
	"github.com/ha1tch/fsmviz/pkg/render"
)

// renderFunc paints a diagram in one output format.
type renderFunc func(w io.Writer, d *diagram.Diagram, opts render.Options) error

// drawCommand builds the svg and png commands, which differ only in the
// backend.
func (c *CLI) drawCommand(use, short string, paint renderFunc) *cobra.Command {
	var src sourceOpts
	var output, title string

	cmd := &cobra.Command{
		Use:   use + " [pattern]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			d := c.buildDiagram(cmd.Context(), a)

			opts := c.config.Render
			if title != "" {
				opts.Title = title
			}
			return writeOutput(cmd, output, func(w io.Writer) error {
				return paint(w, d, opts)
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&title, "title", "", "diagram title (overrides [render] title)")
	return cmd
}

func (c *CLI) svgCommand() *cobra.Command {
	return c.drawCommand("svg", "Render the automaton diagram as SVG", render.WriteSVG)
}

func (c *CLI) pngCommand() *cobra.Command {
	return c.drawCommand("png", "Render the automaton diagram as PNG", render.WritePNG)
}

func (c *CLI) jsonCommand() *cobra.Command {
	var src sourceOpts
	var output string
	var automaton bool

	cmd := &cobra.Command{
		Use:   "json [pattern]",
		Short: "Print the draw instructions (or the automaton) as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			if automaton {
				data, err := fsm.ToJSON(a, true)
				if err != nil {
					return err
				}
				return writeOutput(cmd, output, func(w io.Writer) error {
					_, err := w.Write(append(data, '\n'))
					return err
				})
			}

			d := c.buildDiagram(cmd.Context(), a)
			return writeOutput(cmd, output, func(w io.Writer) error {
				return render.WriteJSON(w, d)
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&automaton, "automaton", false, "print the automaton state table instead of the diagram")
	return cmd
}

func (c *CLI) dotCommand() *cobra.Command {
	var src sourceOpts
	var output string
	var toSVG bool

	cmd := &cobra.Command{
		Use:   "dot [pattern]",
		Short: "Export the automaton as Graphviz DOT",
		Long:  `Export the automaton as Graphviz DOT. With --render the graph is laid out by Graphviz itself and written as SVG.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			dot := render.GenerateDOT(a, c.config.Render.Title)
			if !toSVG {
				return writeOutput(cmd, output, func(w io.Writer) error {
					_, err := io.WriteString(w, dot)
					return err
				})
			}

			loggerFromContext(cmd.Context()).Debug("rendering DOT with graphviz")
			svg, err := render.RenderDOT(cmd.Context(), dot)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, func(w io.Writer) error {
				_, err := w.Write(svg)
				return err
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&toSVG, "render", false, "render the DOT graph to SVG with Graphviz")
	return cmd
}
